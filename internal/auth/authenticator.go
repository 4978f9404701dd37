package auth

import (
	"github.com/mergington/activities/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

// Authenticator verifies submitted credentials against the loaded teacher
// list. The list is read-only after construction, so no locking is needed.
type Authenticator struct {
	teachers []domain.Teacher
}

func NewAuthenticator(teachers []domain.Teacher) *Authenticator {
	return &Authenticator{teachers: teachers}
}

// Authenticate returns true iff a teacher with the given username exists and
// the password matches its bcrypt hash. An empty teacher list always fails.
func (a *Authenticator) Authenticate(username, password string) bool {
	for _, teacher := range a.teachers {
		if teacher.Username != username {
			continue
		}
		return bcrypt.CompareHashAndPassword([]byte(teacher.PasswordHash), []byte(password)) == nil
	}
	return false
}
