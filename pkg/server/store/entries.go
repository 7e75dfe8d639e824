package store

import (
	"errors"
	"time"
)

// ErrEntryNotFound is returned when no entry has the requested id
var ErrEntryNotFound = errors.New("entry not found")

// Entry is a fully populated journal entry as the store hands it out.
// Created is assigned once at insert time and never changes.
type Entry struct {
	ID      int
	Title   string
	Text    string
	Created time.Time
}

// EntriesStore abstracts entry persistence.
//
// Insert and Update take pointers so a missing field travels to the database
// as NULL; the entries table's NOT NULL constraints are the validation layer
// for those writes.
type EntriesStore interface {
	// Insert persists a new entry, assigning its id and creation timestamp.
	Insert(title, text *string) (*Entry, error)

	// FindByID retrieves one entry.
	// Returns ErrEntryNotFound if no entry has that id.
	FindByID(id int) (*Entry, error)

	// ListNewestFirst returns all entries ordered by creation time
	// descending. The result is a snapshot, finite at any call.
	ListNewestFirst() ([]*Entry, error)

	// Update overwrites title and text in place, leaving the creation
	// timestamp untouched.
	// Returns ErrEntryNotFound if no entry has that id.
	Update(id int, title, text *string) (*Entry, error)
}
