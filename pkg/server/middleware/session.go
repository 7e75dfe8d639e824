package middleware

import (
	"net/http"

	"journal-in-go/pkg/identity"
	"journal-in-go/pkg/session"
)

// SessionIdentity resolves the session cookie to an identity in the request
// context. Requests without a valid session pass through anonymous; handlers
// decide whether an operation needs an identity.
type SessionIdentity struct {
	Sessions *session.Manager
}

// NewSessionIdentity creates the session middleware.
func NewSessionIdentity(sessions *session.Manager) *SessionIdentity {
	return &SessionIdentity{Sessions: sessions}
}

// Middleware returns an HTTP middleware that attaches the operator identity
// when the session validates.
func (s *SessionIdentity) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if username, ok := s.Sessions.Current(r); ok {
			ctx := identity.Set(r.Context(), &identity.Identity{Username: username})
			r = r.WithContext(ctx)
		}

		next.ServeHTTP(w, r)
	})
}
