package gorm

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"journal-in-go/pkg/model"
	"journal-in-go/pkg/server/store"
)

// Ensure EntriesStore implements store.EntriesStore
var _ store.EntriesStore = (*EntriesStore)(nil)

// EntriesStore implements store.EntriesStore using GORM
type EntriesStore struct {
	db *gorm.DB
}

// NewEntriesStore creates a new EntriesStore
func NewEntriesStore(db *gorm.DB) *EntriesStore {
	return &EntriesStore{db: db}
}

// Insert persists a new entry. The creation timestamp is fixed here; it never
// changes afterwards. A nil title or text reaches postgres as NULL and the
// NOT NULL constraint rejects the row.
func (s *EntriesStore) Insert(title, text *string) (*store.Entry, error) {
	row := model.Entry{
		Title:   title,
		Text:    text,
		Created: time.Now().UTC(),
	}

	if err := s.db.Create(&row).Error; err != nil {
		return nil, err
	}

	return toRecord(&row), nil
}

// FindByID retrieves one entry by id.
func (s *EntriesStore) FindByID(id int) (*store.Entry, error) {
	var row model.Entry
	tx := s.db.Where(&model.Entry{ID: id}).First(&row)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, store.ErrEntryNotFound
		}
		return nil, tx.Error
	}

	return toRecord(&row), nil
}

// ListNewestFirst returns all entries, newest created first.
func (s *EntriesStore) ListNewestFirst() ([]*store.Entry, error) {
	var rows []model.Entry
	tx := s.db.Order("created desc").Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	entries := make([]*store.Entry, 0, len(rows))
	for i := range rows {
		entries = append(entries, toRecord(&rows[i]))
	}
	return entries, nil
}

// Update overwrites title and text in place. Both columns are written even
// when nil, so a missing field still trips the NOT NULL constraint. The
// created column is never part of the update.
func (s *EntriesStore) Update(id int, title, text *string) (*store.Entry, error) {
	if _, err := s.FindByID(id); err != nil {
		return nil, err
	}

	tx := s.db.Model(&model.Entry{ID: id}).
		Select("title", "text").
		Updates(model.Entry{Title: title, Text: text})
	if tx.Error != nil {
		return nil, tx.Error
	}

	return s.FindByID(id)
}

func toRecord(row *model.Entry) *store.Entry {
	entry := &store.Entry{
		ID:      row.ID,
		Created: row.Created,
	}
	if row.Title != nil {
		entry.Title = *row.Title
	}
	if row.Text != nil {
		entry.Text = *row.Text
	}
	return entry
}
