package journal

import (
	"errors"
	"sort"
	"time"

	"journal-in-go/pkg/server/store"
)

// memEntriesStore is an in-memory store.EntriesStore for tests. It applies
// the same NOT NULL rule the entries table would.
type memEntriesStore struct {
	entries map[int]*store.Entry
	nextID  int
	now     time.Time

	insertErr error
	updateErr error
}

var _ store.EntriesStore = (*memEntriesStore)(nil)

func newMemEntriesStore() *memEntriesStore {
	return &memEntriesStore{
		entries: make(map[int]*store.Entry),
		nextID:  1,
		now:     time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
	}
}

// tick advances the fake clock so created timestamps are distinct.
func (m *memEntriesStore) tick() {
	m.now = m.now.Add(time.Minute)
}

func (m *memEntriesStore) Insert(title, text *string) (*store.Entry, error) {
	if m.insertErr != nil {
		return nil, m.insertErr
	}
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
	m.tick()

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
	if m.updateErr != nil {
		return nil, m.updateErr
	}

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
