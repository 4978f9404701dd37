// Package roster implements the in-memory activity store.
//
// The store owns all activity state behind a single RWMutex so that
// check-then-mutate sequences (duplicate lookup before append) are atomic
// with respect to concurrent requests.
package roster

import (
	"slices"
	"sync"

	"github.com/mergington/activities/internal/domain"
)

type Store struct {
	mu         sync.RWMutex
	activities map[string]*domain.Activity
}

// NewStore creates a store holding the given activities. The store takes
// ownership of the map and its values.
func NewStore(activities map[string]*domain.Activity) *Store {
	if activities == nil {
		activities = make(map[string]*domain.Activity)
	}
	return &Store{activities: activities}
}

// List returns a deep copy of all activities keyed by name.
func (s *Store) List() map[string]domain.Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make(map[string]domain.Activity, len(s.activities))
	for name, activity := range s.activities {
		copied := *activity
		copied.Participants = slices.Clone(activity.Participants)
		snapshot[name] = copied
	}
	return snapshot
}

// Signup appends email to the activity's participant list.
// MaxParticipants is advisory and not enforced here.
func (s *Store) Signup(activityName, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	activity, ok := s.activities[activityName]
	if !ok {
		return domain.ErrActivityNotFound
	}

	if slices.Contains(activity.Participants, email) {
		return domain.ErrAlreadySignedUp
	}

	activity.Participants = append(activity.Participants, email)
	return nil
}

// Unregister removes email from the activity's participant list.
func (s *Store) Unregister(activityName, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	activity, ok := s.activities[activityName]
	if !ok {
		return domain.ErrActivityNotFound
	}

	idx := slices.Index(activity.Participants, email)
	if idx < 0 {
		return domain.ErrNotSignedUp
	}

	activity.Participants = slices.Delete(activity.Participants, idx, idx+1)
	return nil
}
