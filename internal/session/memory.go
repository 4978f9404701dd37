// Package session implements the in-process session store.
package session

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/mergington/activities/internal/domain"
	"github.com/mergington/activities/internal/metrics"
)

// MemoryStore maps opaque tokens to teacher sessions. Sessions never expire;
// they are removed only by Destroy or process exit.
type MemoryStore struct {
	clock clockwork.Clock

	mu       sync.RWMutex
	sessions map[string]domain.Session
}

func NewMemoryStore(clock clockwork.Clock) *MemoryStore {
	return &MemoryStore{
		clock:    clock,
		sessions: make(map[string]domain.Session),
	}
}

// Create records a fresh session for username and returns its token.
func (s *MemoryStore) Create(_ context.Context, username string) (string, error) {
	token := uuid.NewString()

	s.mu.Lock()
	s.sessions[token] = domain.Session{
		Token:     token,
		Username:  username,
		CreatedAt: s.clock.Now(),
	}
	metrics.ActiveSessions.Set(float64(len(s.sessions)))
	s.mu.Unlock()

	return token, nil
}

// Resolve returns the username bound to token, or ErrSessionNotFound.
func (s *MemoryStore) Resolve(_ context.Context, token string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[token]
	if !ok {
		return "", domain.ErrSessionNotFound
	}
	return sess.Username, nil
}

// Destroy removes the session if present. Idempotent.
func (s *MemoryStore) Destroy(_ context.Context, token string) error {
	s.mu.Lock()
	delete(s.sessions, token)
	metrics.ActiveSessions.Set(float64(len(s.sessions)))
	s.mu.Unlock()
	return nil
}
