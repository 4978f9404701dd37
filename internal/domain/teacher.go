package domain

// Teacher is a privileged actor whose credentials gate roster mutation.
// PasswordHash is a bcrypt hash; plaintext passwords never leave the
// credential loader.
type Teacher struct {
	Username     string
	PasswordHash string
}

// Authenticator verifies a submitted secret against stored teacher credentials.
type Authenticator interface {
	Authenticate(username, password string) bool
}
