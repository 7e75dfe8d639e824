package authenticator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestGate(t *testing.T) *Gate {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)
	return NewGate("admin", string(hash))
}

func TestAuthenticate(t *testing.T) {
	gate := newTestGate(t)

	tests := []struct {
		name     string
		username string
		password string
		ok       bool
		err      error
	}{
		{
			name:     "correct pair",
			username: "admin",
			password: "secret",
			ok:       true,
		},
		{
			name:     "wrong password",
			username: "admin",
			password: "wrong",
			ok:       false,
		},
		{
			name:     "wrong username",
			username: "intruder",
			password: "secret",
			ok:       false,
		},
		{
			name:     "empty username",
			username: "",
			password: "secret",
			err:      ErrMissingCredentials,
		},
		{
			name:     "empty password",
			username: "admin",
			password: "",
			err:      ErrMissingCredentials,
		},
		{
			name:     "both empty",
			username: "",
			password: "",
			err:      ErrMissingCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := gate.Authenticate(tt.username, tt.password)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				assert.False(t, ok)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.ok, ok)
		})
	}
}
