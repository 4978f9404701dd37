package domain

// Activity is a named extracurricular offering with a participant roster.
// MaxParticipants is advisory: the roster does not reject signups beyond it.
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// Roster holds the fixed set of activities and mutates their participant lists.
// Activities are seeded at startup and never created or deleted at runtime.
type Roster interface {
	// List returns a snapshot of all activities keyed by name. Callers own
	// the returned value and may mutate it freely.
	List() map[string]Activity

	// Signup appends email to the activity's participants. Returns
	// ErrActivityNotFound for an unknown activity and ErrAlreadySignedUp
	// if email is already on the roster.
	Signup(activityName, email string) error

	// Unregister removes email from the activity's participants. Returns
	// ErrActivityNotFound for an unknown activity and ErrNotSignedUp if
	// email is not on the roster.
	Unregister(activityName, email string) error
}
