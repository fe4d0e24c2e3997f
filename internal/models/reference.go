package models

import "time"

type Budget struct {
	ID     int64  `json:"id"`
	UserID int64  `json:"userId"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

type Category struct {
	ID     int64  `json:"id"`
	UserID int64  `json:"userId"`
	Name   string `json:"name"`
}

type PiggyBank struct {
	ID        int64  `json:"id"`
	AccountID int64  `json:"accountId"`
	Name      string `json:"name"`
}

type Tag struct {
	ID     int64  `json:"id"`
	UserID int64  `json:"userId"`
	Tag    string `json:"tag"`
}

// Noteable types a note can be attached to.
const (
	NoteableAccount            = "Account"
	NoteableTransactionJournal = "TransactionJournal"
	NoteableRecurrence         = "Recurrence"
)

type Note struct {
	ID           int64     `json:"id"`
	NoteableID   int64     `json:"noteableId"`
	NoteableType string    `json:"noteableType"`
	Text         string    `json:"text"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
