package model

import "time"

// Entry is the row model for the entries table.
//
// Title and Text are pointers so that missing form input reaches postgres as
// NULL and trips the NOT NULL constraints there, rather than being masked as
// an empty string on the way in.
type Entry struct {
	ID      int `gorm:"primaryKey;autoIncrement"`
	Title   *string
	Text    *string
	Created time.Time
}

func (Entry) TableName() string {
	return "entries"
}
