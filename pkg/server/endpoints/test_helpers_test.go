package endpoints

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"journal-in-go/pkg/authenticator"
	"journal-in-go/pkg/config"
	"journal-in-go/pkg/journal"
	"journal-in-go/pkg/render"
	"journal-in-go/pkg/server"
	"journal-in-go/pkg/server/store"
	"journal-in-go/pkg/session"
)

// memEntriesStore is an in-memory store.EntriesStore for endpoint tests.
type memEntriesStore struct {
	entries map[int]*store.Entry
	nextID  int
	now     time.Time
}

var _ store.EntriesStore = (*memEntriesStore)(nil)

func newMemEntriesStore() *memEntriesStore {
	return &memEntriesStore{
		entries: make(map[int]*store.Entry),
		nextID:  1,
		now:     time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
	}
}

func (m *memEntriesStore) Insert(title, text *string) (*store.Entry, error) {
	if title == nil || text == nil {
		return nil, errors.New(`null value violates not-null constraint`)
	}

	entry := &store.Entry{
		ID:      m.nextID,
		Title:   *title,
		Text:    *text,
		Created: m.now,
	}
	m.entries[entry.ID] = entry
	m.nextID++
	m.now = m.now.Add(time.Minute)

	clone := *entry
	return &clone, nil
}

func (m *memEntriesStore) FindByID(id int) (*store.Entry, error) {
	entry, ok := m.entries[id]
	if !ok {
		return nil, store.ErrEntryNotFound
	}
	clone := *entry
	return &clone, nil
}

func (m *memEntriesStore) ListNewestFirst() ([]*store.Entry, error) {
	entries := make([]*store.Entry, 0, len(m.entries))
	for _, e := range m.entries {
		clone := *e
		entries = append(entries, &clone)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Created.After(entries[j].Created)
	})
	return entries, nil
}

func (m *memEntriesStore) Update(id int, title, text *string) (*store.Entry, error) {
	entry, ok := m.entries[id]
	if !ok {
		return nil, store.ErrEntryNotFound
	}
	if title == nil || text == nil {
		return nil, errors.New(`null value violates not-null constraint`)
	}

	entry.Title = *title
	entry.Text = *text

	clone := *entry
	return &clone, nil
}

// newTestServer wires a full server over an in-memory store.
func newTestServer(t *testing.T) *server.Server {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := &config.Config{
		AuthUsername:  "admin",
		AuthPassword:  string(hash),
		SessionSecret: "test-session-secret",
		AuthSecret:    "test-auth-secret",
		BindAddress:   "127.0.0.1",
		Port:          0,
	}

	srv := server.NewServer(
		cfg,
		nil,
		journal.New(newMemEntriesStore(), render.New()),
		authenticator.NewGate(cfg.AuthUsername, cfg.AuthPassword),
		session.NewManager(cfg.SessionSecret, cfg.AuthSecret),
	)
	RegisterAll(srv)

	return srv
}

func postForm(srv *server.Server, path string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	srv.Router.ServeHTTP(w, req)
	return w
}

func get(srv *server.Server, path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	srv.Router.ServeHTTP(w, req)
	return w
}

// login authenticates as the test operator and returns the session cookies.
func login(t *testing.T, srv *server.Server) []*http.Cookie {
	t.Helper()

	w := postForm(srv, "/login", url.Values{
		"username": {"admin"},
		"password": {"secret"},
	}, nil)
	require.Equal(t, http.StatusFound, w.Code)

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	return cookies
}

// makeAnEntry posts the canonical test entry and returns its redirect
// response.
func makeAnEntry(t *testing.T, srv *server.Server, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	w := postForm(srv, "/add", url.Values{
		"title": {"Hello there"},
		"text":  {"##This is a post\n```python\n    def func(x):\n        return x\n```"},
	}, cookies)
	require.Equal(t, http.StatusFound, w.Code)
	return w
}
