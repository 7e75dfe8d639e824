package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"journal-in-go/pkg/identity"
	"journal-in-go/pkg/session"
)

func TestMiddlewareAttachesIdentity(t *testing.T) {
	sessions := session.NewManager("sessionsecret", "authsecret")

	login := httptest.NewRecorder()
	require.NoError(t, sessions.Establish(login, httptest.NewRequest("POST", "/login", nil), "admin"))

	var seen *identity.Identity
	handler := NewSessionIdentity(sessions).Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = identity.Get(r.Context())
	}))

	req := httptest.NewRequest("GET", "/", nil)
	for _, c := range login.Result().Cookies() {
		req.AddCookie(c)
	}
	handler.ServeHTTP(httptest.NewRecorder(), req)

	require.NotNil(t, seen)
	assert.Equal(t, "admin", seen.Username)
}

func TestMiddlewarePassesAnonymousThrough(t *testing.T) {
	sessions := session.NewManager("sessionsecret", "authsecret")

	called := false
	handler := NewSessionIdentity(sessions).Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		_, ok := identity.Get(r.Context())
		assert.False(t, ok)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))
	assert.True(t, called)
}
