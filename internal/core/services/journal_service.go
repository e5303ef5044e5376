package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/enigma-wellbeing/enigma-engine/internal/core/domain"
)

const journalKey = "enigma:journal"

// JournalService stores free-text journal entries, newest first.
type JournalService struct {
	store domain.Store
	clock domain.Clock
}

func NewJournalService(store domain.Store, clock domain.Clock) *JournalService {
	return &JournalService{store: store, clock: clock}
}

// Add persists a new entry at the head of the journal and returns it.
func (s *JournalService) Add(ctx context.Context, text string) (*domain.JournalEntry, error) {
	entry, err := domain.NewJournalEntry(text, s.clock.Now())
	if err != nil {
		return nil, err
	}

	entries := append([]*domain.JournalEntry{entry}, s.load(ctx)...)
	if err := s.persist(ctx, entries); err != nil {
		return nil, err
	}
	return entry, nil
}

// Entries returns all entries, newest first.
func (s *JournalService) Entries(ctx context.Context) []*domain.JournalEntry {
	return s.load(ctx)
}

// Delete removes the entry with the given id; deleting an unknown id is
// not an error.
func (s *JournalService) Delete(ctx context.Context, id string) error {
	entries := s.load(ctx)
	kept := entries[:0]
	for _, e := range entries {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	return s.persist(ctx, kept)
}

// Clear removes every entry.
func (s *JournalService) Clear(ctx context.Context) error {
	if err := s.store.Remove(ctx, journalKey); err != nil {
		return fmt.Errorf("%w: clear journal: %v", domain.ErrStorageWrite, err)
	}
	return nil
}

func (s *JournalService) load(ctx context.Context) []*domain.JournalEntry {
	raw, err := s.store.Get(ctx, journalKey)
	if err != nil {
		if !errors.Is(err, domain.ErrKeyNotFound) {
			log.Printf("journal: read failed, treating as empty: %v", err)
		}
		return nil
	}

	var entries []*domain.JournalEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		log.Printf("journal: corrupted record, treating as empty")
		return nil
	}
	return entries
}

func (s *JournalService) persist(ctx context.Context, entries []*domain.JournalEntry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("%w: encode journal: %v", domain.ErrStorageWrite, err)
	}
	if err := s.store.Set(ctx, journalKey, string(data)); err != nil {
		return fmt.Errorf("%w: journal: %v", domain.ErrStorageWrite, err)
	}
	return nil
}
