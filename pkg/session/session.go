package session

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/sessions"
)

const (
	// Name is the session cookie name.
	Name = "journal"

	// ticketKey is where the signed identity ticket lives inside the session.
	ticketKey = "auth_tkt"
)

// Manager issues and validates the operator's session.
//
// Two layers of signing are involved, each with its own secret: the cookie
// itself is signed by the session store, and the identity ticket stored
// inside it is an HS512 JWT bound to the username. Either signature failing
// leaves the request anonymous.
type Manager struct {
	store      *sessions.CookieStore
	authSecret []byte
}

// NewManager creates a Manager. sessionSecret signs the cookie, authSecret
// signs the identity ticket.
func NewManager(sessionSecret, authSecret string) *Manager {
	store := sessions.NewCookieStore([]byte(sessionSecret))
	store.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	return &Manager{
		store:      store,
		authSecret: []byte(authSecret),
	}
}

// Establish issues an identity ticket for username and attaches the session
// cookie to the response. Call only after the credential check succeeded.
func (m *Manager) Establish(w http.ResponseWriter, r *http.Request, username string) error {
	ticket, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
		"sub": username,
		"iat": time.Now().Unix(),
	}).SignedString(m.authSecret)
	if err != nil {
		return err
	}

	// Get returns a fresh session when the inbound cookie is absent or
	// undecodable, so the error can be ignored here.
	s, _ := m.store.Get(r, Name)
	s.Values[ticketKey] = ticket
	return s.Save(r, w)
}

// Clear invalidates the session. It is idempotent: clearing an absent
// session still succeeds.
func (m *Manager) Clear(w http.ResponseWriter, r *http.Request) error {
	s, _ := m.store.Get(r, Name)
	delete(s.Values, ticketKey)
	s.Options = &sessions.Options{
		Path:   "/",
		MaxAge: -1,
	}
	return s.Save(r, w)
}

// Current validates the inbound session and returns the operator username.
// A missing, malformed or badly signed cookie or ticket yields ("", false);
// not being logged in is a normal outcome, not an error.
func (m *Manager) Current(r *http.Request) (string, bool) {
	s, err := m.store.Get(r, Name)
	if err != nil {
		return "", false
	}

	ticket, ok := s.Values[ticketKey].(string)
	if !ok || ticket == "" {
		return "", false
	}

	tok, err := jwt.Parse(ticket, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.authSecret, nil
	})
	if err != nil || !tok.Valid {
		return "", false
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", false
	}

	username, _ := claims["sub"].(string)
	if username == "" {
		return "", false
	}

	return username, true
}
