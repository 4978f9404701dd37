package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/mergington/activities/internal/domain"
	"github.com/mergington/activities/internal/metrics"
	goredis "github.com/redis/go-redis/v9"
)

const (
	// Redis hash field names for session keys.
	fieldUsername  = "username"
	fieldCreatedAt = "created_at"
)

type SessionRepo struct {
	rdb   *goredis.Client
	clock clockwork.Clock
}

func NewSessionRepo(rdb *goredis.Client, clock clockwork.Clock) *SessionRepo {
	return &SessionRepo{rdb: rdb, clock: clock}
}

func sessionKey(token string) string {
	return "session:" + token
}

// Create records a fresh session for username and returns its token.
// The key is written without expiry: sessions have no TTL.
func (s *SessionRepo) Create(ctx context.Context, username string) (string, error) {
	token := uuid.NewString()
	sk := sessionKey(token)

	now := s.clock.Now()
	err := s.rdb.HSet(ctx, sk, map[string]any{
		fieldUsername:  username,
		fieldCreatedAt: strconv.FormatInt(now.UnixMilli(), 10),
	}).Err()
	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	metrics.ActiveSessions.Inc()
	return token, nil
}

// Resolve returns the username bound to token, or ErrSessionNotFound.
func (s *SessionRepo) Resolve(ctx context.Context, token string) (string, error) {
	sk := sessionKey(token)

	username, err := s.rdb.HGet(ctx, sk, fieldUsername).Result()
	if errors.Is(err, goredis.Nil) {
		return "", domain.ErrSessionNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to resolve session: %w", err)
	}
	return username, nil
}

// Destroy removes the session if present. Idempotent.
func (s *SessionRepo) Destroy(ctx context.Context, token string) error {
	sk := sessionKey(token)

	removed, err := s.rdb.Del(ctx, sk).Result()
	if err != nil {
		return fmt.Errorf("failed to destroy session: %w", err)
	}
	if removed > 0 {
		metrics.ActiveSessions.Dec()
	}
	return nil
}
