package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyEntry = errors.New("journal entry text cannot be empty")
)

type JournalEntry struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

func NewJournalEntry(text string, now time.Time) (*JournalEntry, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, ErrEmptyEntry
	}

	return &JournalEntry{
		ID:        uuid.NewString(),
		Text:      trimmed,
		CreatedAt: now,
	}, nil
}
