package auth

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func writeCredentials(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "teachers.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// --- LoadTeachers ---

func TestLoadTeachers_MissingFile(t *testing.T) {
	teachers, err := LoadTeachers(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Empty(t, teachers)
}

func TestLoadTeachers_PlaintextHashedAtLoad(t *testing.T) {
	path := writeCredentials(t, `{"teachers": [{"username": "mrodriguez", "password": "pass123"}]}`)

	teachers, err := LoadTeachers(path)
	require.NoError(t, err)
	require.Len(t, teachers, 1)

	assert.Equal(t, "mrodriguez", teachers[0].Username)
	assert.NotEqual(t, "pass123", teachers[0].PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(teachers[0].PasswordHash), []byte("pass123")))
}

func TestLoadTeachers_PrehashedRecord(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)

	// bcrypt hashes contain no JSON-special characters
	path := writeCredentials(t, `{"teachers": [{"username": "jsmith", "password_hash": "`+string(hash)+`"}]}`)

	teachers, err := LoadTeachers(path)
	require.NoError(t, err)
	require.Len(t, teachers, 1)
	assert.Equal(t, string(hash), teachers[0].PasswordHash)
}

func TestLoadTeachers_InvalidJSON(t *testing.T) {
	path := writeCredentials(t, `{"teachers": [`)

	_, err := LoadTeachers(path)
	assert.Error(t, err)
}

func TestLoadTeachers_MissingUsername(t *testing.T) {
	path := writeCredentials(t, `{"teachers": [{"password": "x"}]}`)

	_, err := LoadTeachers(path)
	assert.Error(t, err)
}

func TestLoadTeachers_NoPasswordOrHash(t *testing.T) {
	path := writeCredentials(t, `{"teachers": [{"username": "jsmith"}]}`)

	_, err := LoadTeachers(path)
	assert.Error(t, err)
}

// --- Authenticate ---

func TestAuthenticate(t *testing.T) {
	path := writeCredentials(t, `{"teachers": [
		{"username": "mrodriguez", "password": "pass123"},
		{"username": "jsmith", "password": "hunter2!"}
	]}`)
	teachers, err := LoadTeachers(path)
	require.NoError(t, err)
	authn := NewAuthenticator(teachers)

	tests := []struct {
		name     string
		username string
		password string
		want     bool
	}{
		{"valid first teacher", "mrodriguez", "pass123", true},
		{"valid second teacher", "jsmith", "hunter2!", true},
		{"wrong password", "mrodriguez", "wrong", false},
		{"unknown user", "nonexistent", "x", false},
		{"empty password", "mrodriguez", "", false},
		{"password of other teacher", "mrodriguez", "hunter2!", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, authn.Authenticate(tt.username, tt.password))
		})
	}
}

func TestAuthenticate_EmptyList(t *testing.T) {
	authn := NewAuthenticator(nil)
	assert.False(t, authn.Authenticate("mrodriguez", "pass123"))
}
