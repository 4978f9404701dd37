package domain

import (
	"context"
	"time"
)

// Session binds an opaque token to an authenticated teacher identity.
// Sessions have no TTL: they live until an explicit logout or process exit.
type Session struct {
	Token     string
	Username  string
	CreatedAt time.Time
}

// SessionRepository stores active sessions. Implementations exist for an
// in-process map and for Redis; both take a context so the Redis backend
// can honor request deadlines.
type SessionRepository interface {
	// Create records a fresh session for username and returns its token.
	Create(ctx context.Context, username string) (string, error)

	// Resolve returns the username bound to token, or ErrSessionNotFound.
	Resolve(ctx context.Context, token string) (string, error)

	// Destroy removes the session if present. Idempotent.
	Destroy(ctx context.Context, token string) error
}
