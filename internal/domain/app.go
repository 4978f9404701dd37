package domain

import "context"

// AuthStatus reports whether a request carries a valid teacher session.
type AuthStatus struct {
	Authenticated bool    `json:"authenticated"`
	Username      *string `json:"username"`
}

// AppService is the application layer contract consumed by the HTTP server.
type AppService interface {
	// Login verifies credentials and creates a session, returning its token.
	// Returns ErrInvalidCredentials on any mismatch.
	Login(ctx context.Context, username, password string) (string, error)

	// Logout destroys the session for token. Idempotent.
	Logout(ctx context.Context, token string) error

	// Status resolves token to an auth status. An empty or unknown token
	// yields an unauthenticated status, never an error.
	Status(ctx context.Context, token string) (AuthStatus, error)

	// ListActivities returns a snapshot of all activities keyed by name.
	ListActivities(ctx context.Context) (map[string]Activity, error)

	// Signup adds email to the activity's participant list.
	Signup(ctx context.Context, activityName, email string) error

	// Unregister removes email from the activity's participant list.
	Unregister(ctx context.Context, activityName, email string) error
}
