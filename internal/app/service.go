// Package app contains the application layer orchestrating authentication,
// sessions, and the activity roster.
package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mergington/activities/internal/domain"
	"github.com/mergington/activities/internal/metrics"
)

// Service is the application layer — the only component that references
// multiple domain components. It orchestrates all use cases.
type Service struct {
	authn    domain.Authenticator
	sessions domain.SessionRepository
	roster   domain.Roster
}

// NewService creates the application layer service.
func NewService(authn domain.Authenticator, sessions domain.SessionRepository, roster domain.Roster) *Service {
	return &Service{
		authn:    authn,
		sessions: sessions,
		roster:   roster,
	}
}

// Login verifies credentials and creates a session, returning its token.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	if !s.authn.Authenticate(username, password) {
		metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.sessions.Create(ctx, username)
	if err != nil {
		return "", err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	slog.Info("Teacher logged in", "username", username)
	return token, nil
}

// Logout destroys the session for token. Idempotent: unknown tokens succeed.
func (s *Service) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.Destroy(ctx, token)
}

// Status resolves token to an auth status. Never errors on unknown tokens.
func (s *Service) Status(ctx context.Context, token string) (domain.AuthStatus, error) {
	if token == "" {
		return domain.AuthStatus{}, nil
	}

	username, err := s.sessions.Resolve(ctx, token)
	if errors.Is(err, domain.ErrSessionNotFound) {
		return domain.AuthStatus{}, nil
	}
	if err != nil {
		return domain.AuthStatus{}, err
	}

	return domain.AuthStatus{Authenticated: true, Username: &username}, nil
}

// ListActivities returns a snapshot of all activities keyed by name.
func (s *Service) ListActivities(_ context.Context) (map[string]domain.Activity, error) {
	return s.roster.List(), nil
}

// Signup adds email to the activity's participant list.
func (s *Service) Signup(_ context.Context, activityName, email string) error {
	err := s.roster.Signup(activityName, email)
	switch {
	case errors.Is(err, domain.ErrActivityNotFound):
		metrics.SignupsTotal.WithLabelValues("not_found").Inc()
	case errors.Is(err, domain.ErrAlreadySignedUp):
		metrics.SignupsTotal.WithLabelValues("duplicate").Inc()
	case err == nil:
		metrics.SignupsTotal.WithLabelValues("success").Inc()
		slog.Info("Student signed up", "activity", activityName, "email", email)
	}
	return err
}

// Unregister removes email from the activity's participant list.
func (s *Service) Unregister(_ context.Context, activityName, email string) error {
	err := s.roster.Unregister(activityName, email)
	switch {
	case errors.Is(err, domain.ErrActivityNotFound):
		metrics.UnregistersTotal.WithLabelValues("not_found").Inc()
	case errors.Is(err, domain.ErrNotSignedUp):
		metrics.UnregistersTotal.WithLabelValues("not_signed_up").Inc()
	case err == nil:
		metrics.UnregistersTotal.WithLabelValues("success").Inc()
		slog.Info("Student unregistered", "activity", activityName, "email", email)
	}
	return err
}
