package journal

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"journal-in-go/pkg/identity"
	"journal-in-go/pkg/render"
	"journal-in-go/pkg/server/store"
)

var admin = &identity.Identity{Username: "admin"}

func newTestJournal() (*Journal, *memEntriesStore) {
	entries := newMemEntriesStore()
	return New(entries, render.New()), entries
}

func strptr(s string) *string { return &s }

func TestCreateThenView(t *testing.T) {
	j, _ := newTestJournal()

	created, err := j.Create(admin, strptr("Hello there"), strptr("##This is a post"))
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)

	viewed, err := j.View(created.ID)
	require.NoError(t, err)

	assert.Equal(t, "Hello there", viewed.Title)
	assert.Contains(t, viewed.Text, "<h2>This is a post</h2>")
	// rendering is idempotent: the stored raw text renders the same twice
	assert.Equal(t, created.Text, viewed.Text)
}

func TestViewUnknownID(t *testing.T) {
	j, _ := newTestJournal()

	_, err := j.View(99)
	assert.ErrorIs(t, err, store.ErrEntryNotFound)
}

func TestListNewestFirst(t *testing.T) {
	j, _ := newTestJournal()

	_, err := j.Create(admin, strptr("first"), strptr("one"))
	require.NoError(t, err)
	_, err = j.Create(admin, strptr("second"), strptr("two"))
	require.NoError(t, err)

	summaries, err := j.List()
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	assert.Equal(t, "second", summaries[0].Title)
	assert.Equal(t, "first", summaries[1].Title)
}

func TestListEmpty(t *testing.T) {
	j, _ := newTestJournal()

	summaries, err := j.List()
	require.NoError(t, err)
	assert.Empty(t, summaries)
}

func TestPrivilegedOperationsRequireIdentity(t *testing.T) {
	j, _ := newTestJournal()

	_, err := j.Create(admin, strptr("seed"), strptr("text"))
	require.NoError(t, err)

	// authorization is checked before anything else, so even valid input
	// fails without an identity
	_, err = j.Create(nil, strptr("valid"), strptr("valid"))
	assert.ErrorIs(t, err, ErrNotAuthorized)

	_, err = j.BeginEdit(nil, 1)
	assert.ErrorIs(t, err, ErrNotAuthorized)

	_, err = j.ApplyEdit(nil, 1, strptr("valid"), strptr("valid"))
	assert.ErrorIs(t, err, ErrNotAuthorized)
}

func TestBeginEditReturnsRawText(t *testing.T) {
	j, _ := newTestJournal()

	_, err := j.Create(admin, strptr("Hello there"), strptr("##This is a post"))
	require.NoError(t, err)

	form, err := j.BeginEdit(admin, 1)
	require.NoError(t, err)

	assert.Equal(t, "##This is a post", form.Text)
	assert.NotContains(t, form.Text, "<h2>")
}

func TestBeginEditUnknownID(t *testing.T) {
	j, _ := newTestJournal()

	_, err := j.BeginEdit(admin, 7)
	assert.ErrorIs(t, err, store.ErrEntryNotFound)
}

func TestApplyEditKeepsCreated(t *testing.T) {
	j, entries := newTestJournal()

	created, err := j.Create(admin, strptr("Hello there"), strptr("original"))
	require.NoError(t, err)

	before, err := entries.FindByID(created.ID)
	require.NoError(t, err)

	for _, text := range []string{"first edit", "second edit", "third edit"} {
		_, err = j.ApplyEdit(admin, created.ID, strptr("Hello there"), strptr(text))
		require.NoError(t, err)
	}

	after, err := entries.FindByID(created.ID)
	require.NoError(t, err)

	assert.Equal(t, before.Created, after.Created)
	assert.Equal(t, "third edit", after.Text)
}

func TestApplyEditRendersDetail(t *testing.T) {
	j, _ := newTestJournal()

	_, err := j.Create(admin, strptr("Hello there"), strptr("plain"))
	require.NoError(t, err)

	detail, err := j.ApplyEdit(admin, 1, strptr("Hello there"), strptr("```python\nx = 1\n```"))
	require.NoError(t, err)

	assert.Contains(t, detail.Text, `class="codehilite"`)
}

func TestApplyEditUnknownID(t *testing.T) {
	j, _ := newTestJournal()

	_, err := j.ApplyEdit(admin, 7, strptr("title"), strptr("text"))
	assert.ErrorIs(t, err, store.ErrEntryNotFound)
}

func TestCreateStoreFailureIsPersistenceError(t *testing.T) {
	j, entries := newTestJournal()
	entries.insertErr = errors.New("connection refused")

	_, err := j.Create(admin, strptr("title"), strptr("text"))

	var perr *PersistenceError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "create", perr.Op)
}

func TestCreateMissingFieldIsPersistenceError(t *testing.T) {
	j, _ := newTestJournal()

	// the core does not pre-validate; the store's constraint rejects nil
	_, err := j.Create(admin, nil, strptr("text"))

	var perr *PersistenceError
	require.ErrorAs(t, err, &perr)
}
