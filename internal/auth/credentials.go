// Package auth loads teacher credentials and verifies submitted passwords.
package auth

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mergington/activities/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

type credentialsFile struct {
	Teachers []teacherRecord `json:"teachers"`
}

type teacherRecord struct {
	Username     string `json:"username"`
	Password     string `json:"password,omitempty"`
	PasswordHash string `json:"password_hash,omitempty"`
}

// LoadTeachers reads the credential file at path. A missing file yields an
// empty list (all logins fail), matching the behavior of the legacy service.
//
// Records carry either a bcrypt password_hash or a legacy plaintext password.
// Legacy entries are hashed at load time so Authenticate only ever compares
// against bcrypt hashes.
func LoadTeachers(path string) ([]domain.Teacher, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read credentials file: %w", err)
	}

	var file credentialsFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse credentials file: %w", err)
	}

	teachers := make([]domain.Teacher, 0, len(file.Teachers))
	for _, record := range file.Teachers {
		if record.Username == "" {
			return nil, fmt.Errorf("credentials file: record without username")
		}

		hash := record.PasswordHash
		if hash == "" {
			if record.Password == "" {
				return nil, fmt.Errorf("credentials file: teacher %q has neither password nor password_hash", record.Username)
			}
			hashed, err := bcrypt.GenerateFromPassword([]byte(record.Password), bcrypt.DefaultCost)
			if err != nil {
				return nil, fmt.Errorf("hash password for teacher %q: %w", record.Username, err)
			}
			hash = string(hashed)
		}

		teachers = append(teachers, domain.Teacher{
			Username:     record.Username,
			PasswordHash: hash,
		})
	}

	return teachers, nil
}
