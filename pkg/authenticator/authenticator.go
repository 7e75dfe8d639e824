package authenticator

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrMissingCredentials is returned when the login form is submitted with an
// empty username or password. It is recovered at the login page, never
// surfaced as an HTTP error.
var ErrMissingCredentials = errors.New("both username and password are required")

// Gate decides whether a claimed credential pair authorizes the operator.
// The configured pair is injected at construction; there is no ambient state.
type Gate struct {
	username     string
	passwordHash []byte
}

// NewGate creates a Gate for the configured credential pair. passwordHash
// must be a bcrypt hash.
func NewGate(username, passwordHash string) *Gate {
	return &Gate{
		username:     username,
		passwordHash: []byte(passwordHash),
	}
}

// Authenticate verifies a claimed username/password pair.
//
// Empty fields return ErrMissingCredentials. A wrong pair returns
// (false, nil): it is an expected outcome, not an error. The password is
// verified with bcrypt, which is salted, one-way and compares in constant
// time; the plaintext is never reconstructed.
func (g *Gate) Authenticate(username, password string) (bool, error) {
	if username == "" || password == "" {
		return false, ErrMissingCredentials
	}

	if username != g.username {
		return false, nil
	}

	err := bcrypt.CompareHashAndPassword(g.passwordHash, []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}
