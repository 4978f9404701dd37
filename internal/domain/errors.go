package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrActivityNotFound   = errors.New("activity not found")
	ErrAlreadySignedUp    = errors.New("student is already signed up")
	ErrNotSignedUp        = errors.New("student is not signed up for this activity")
	ErrSessionNotFound    = errors.New("session not found")
)
