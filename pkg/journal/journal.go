package journal

import (
	"journal-in-go/pkg/identity"
	"journal-in-go/pkg/render"
	"journal-in-go/pkg/server/store"
)

// createdLayout is the date format shown to readers.
const createdLayout = "Jan 02, 2006"

// Summary is the listing representation of an entry.
type Summary struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Created string `json:"created"`
}

// Detail is the reading representation: text rendered to HTML.
type Detail struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Created string `json:"created"`
	Text    string `json:"text"`
}

// EditForm is the editing representation: text kept as raw markup so the
// editor shows what the author typed, not HTML.
type EditForm struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Created string `json:"created"`
	Text    string `json:"text"`
}

// Journal enforces who may create, view and edit entries and shapes their
// representations. It owns no entry state; entries live in the store and are
// only referenced for the duration of one request.
type Journal struct {
	entries  store.EntriesStore
	renderer *render.Renderer
}

// New creates a Journal over the given store and renderer.
func New(entries store.EntriesStore, renderer *render.Renderer) *Journal {
	return &Journal{
		entries:  entries,
		renderer: renderer,
	}
}

// List returns summaries of all entries, newest first. No identity required.
func (j *Journal) List() ([]Summary, error) {
	entries, err := j.entries.ListNewestFirst()
	if err != nil {
		return nil, err
	}

	summaries := make([]Summary, 0, len(entries))
	for _, e := range entries {
		summaries = append(summaries, Summary{
			ID:      e.ID,
			Title:   e.Title,
			Created: e.Created.Format(createdLayout),
		})
	}
	return summaries, nil
}

// View returns the detail representation of one entry. No identity required.
// Returns store.ErrEntryNotFound for an unknown id.
func (j *Journal) View(id int) (*Detail, error) {
	entry, err := j.entries.FindByID(id)
	if err != nil {
		return nil, err
	}
	return j.detail(entry)
}

// Create persists a new entry and returns its detail representation.
// Requires a present identity. Title and text pass through unvalidated; the
// store's constraints decide, and their rejection surfaces as a
// PersistenceError.
func (j *Journal) Create(id *identity.Identity, title, text *string) (*Detail, error) {
	if id == nil {
		return nil, ErrNotAuthorized
	}

	entry, err := j.entries.Insert(title, text)
	if err != nil {
		return nil, &PersistenceError{Op: "create", Err: err}
	}
	return j.detail(entry)
}

// BeginEdit returns the edit representation of one entry, with raw markup.
// Requires a present identity. Returns store.ErrEntryNotFound for an unknown
// id.
func (j *Journal) BeginEdit(id *identity.Identity, entryID int) (*EditForm, error) {
	if id == nil {
		return nil, ErrNotAuthorized
	}

	entry, err := j.entries.FindByID(entryID)
	if err != nil {
		return nil, err
	}

	return &EditForm{
		ID:      entry.ID,
		Title:   entry.Title,
		Created: entry.Created.Format(createdLayout),
		Text:    entry.Text,
	}, nil
}

// ApplyEdit overwrites an entry's title and text and returns the new detail
// representation. The creation timestamp is untouched. Requires a present
// identity. Returns store.ErrEntryNotFound for an unknown id.
func (j *Journal) ApplyEdit(id *identity.Identity, entryID int, title, text *string) (*Detail, error) {
	if id == nil {
		return nil, ErrNotAuthorized
	}

	if _, err := j.entries.FindByID(entryID); err != nil {
		return nil, err
	}

	entry, err := j.entries.Update(entryID, title, text)
	if err != nil {
		if err == store.ErrEntryNotFound {
			return nil, err
		}
		return nil, &PersistenceError{Op: "edit", Err: err}
	}
	return j.detail(entry)
}

func (j *Journal) detail(e *store.Entry) (*Detail, error) {
	html, err := j.renderer.Render(e.Text)
	if err != nil {
		return nil, err
	}

	return &Detail{
		ID:      e.ID,
		Title:   e.Title,
		Created: e.Created.Format(createdLayout),
		Text:    html,
	}, nil
}
