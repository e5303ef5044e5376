package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/enigma-wellbeing/enigma-engine/internal/core/domain"
)

const savedQuotesKey = "enigma:quotes:saved"

// Searcher is the remote quote lookup port.
type Searcher interface {
	Search(ctx context.Context, query string) ([]domain.Quote, error)
}

// QuoteService manages the saved-quote set and quote search with a local
// fallback.
type QuoteService struct {
	store    domain.Store
	searcher Searcher
	fallback []domain.Quote
}

// NewQuoteService builds a quote service. The searcher may be nil (search
// then always answers from the fallback list); an empty fallback list uses
// the built-in one.
func NewQuoteService(store domain.Store, searcher Searcher, fallback []domain.Quote) *QuoteService {
	if len(fallback) == 0 {
		fallback = domain.DefaultQuotes()
	}
	return &QuoteService{store: store, searcher: searcher, fallback: fallback}
}

// Save adds q to the saved set. Saving an already-saved quote (same
// normalized identity) is a no-op.
func (s *QuoteService) Save(ctx context.Context, q domain.Quote) error {
	saved := s.loadSaved(ctx)
	for _, existing := range saved {
		if existing.Key() == q.Key() {
			return nil
		}
	}
	return s.persistSaved(ctx, append(saved, q))
}

// Toggle saves q when absent and removes it when present, returning
// whether the quote is saved afterwards.
func (s *QuoteService) Toggle(ctx context.Context, q domain.Quote) (bool, error) {
	saved := s.loadSaved(ctx)
	kept := saved[:0]
	removed := false
	for _, existing := range saved {
		if existing.Key() == q.Key() {
			removed = true
			continue
		}
		kept = append(kept, existing)
	}
	if !removed {
		kept = append(kept, q)
	}
	if err := s.persistSaved(ctx, kept); err != nil {
		return false, err
	}
	return !removed, nil
}

// Remove deletes q from the saved set; removing an absent quote is not an
// error.
func (s *QuoteService) Remove(ctx context.Context, q domain.Quote) error {
	saved := s.loadSaved(ctx)
	kept := saved[:0]
	for _, existing := range saved {
		if existing.Key() != q.Key() {
			kept = append(kept, existing)
		}
	}
	return s.persistSaved(ctx, kept)
}

// Contains reports whether q is in the saved set.
func (s *QuoteService) Contains(ctx context.Context, q domain.Quote) bool {
	for _, existing := range s.loadSaved(ctx) {
		if existing.Key() == q.Key() {
			return true
		}
	}
	return false
}

// Saved returns the saved quotes in insertion order.
func (s *QuoteService) Saved(ctx context.Context) []domain.Quote {
	return s.loadSaved(ctx)
}

// Clear empties the saved set.
func (s *QuoteService) Clear(ctx context.Context) error {
	if err := s.store.Remove(ctx, savedQuotesKey); err != nil {
		return fmt.Errorf("%w: clear saved quotes: %v", domain.ErrStorageWrite, err)
	}
	return nil
}

// SearchResult carries the quotes found and whether they came from the
// local fallback list rather than the remote service.
type SearchResult struct {
	Quotes       []domain.Quote
	FromFallback bool
}

// Search tries the remote searcher and answers from the local list when
// the remote call fails or returns nothing. Callers always get quotes.
func (s *QuoteService) Search(ctx context.Context, query string) SearchResult {
	if s.searcher != nil {
		quotes, err := s.searcher.Search(ctx, query)
		if err == nil && len(quotes) > 0 {
			return SearchResult{Quotes: quotes}
		}
		if err != nil {
			log.Printf("quote search: remote lookup failed, using local list: %v", err)
		}
	}

	var matched []domain.Quote
	for _, q := range s.fallback {
		if q.Matches(query) {
			matched = append(matched, q)
		}
	}
	return SearchResult{Quotes: matched, FromFallback: true}
}

func (s *QuoteService) loadSaved(ctx context.Context) []domain.Quote {
	raw, err := s.store.Get(ctx, savedQuotesKey)
	if err != nil {
		if !errors.Is(err, domain.ErrKeyNotFound) {
			log.Printf("saved quotes: read failed, treating as empty: %v", err)
		}
		return nil
	}

	var saved []domain.Quote
	if err := json.Unmarshal([]byte(raw), &saved); err != nil {
		log.Printf("saved quotes: corrupted record, treating as empty")
		return nil
	}
	return saved
}

func (s *QuoteService) persistSaved(ctx context.Context, saved []domain.Quote) error {
	data, err := json.Marshal(saved)
	if err != nil {
		return fmt.Errorf("%w: encode saved quotes: %v", domain.ErrStorageWrite, err)
	}
	if err := s.store.Set(ctx, savedQuotesKey, string(data)); err != nil {
		return fmt.Errorf("%w: saved quotes: %v", domain.ErrStorageWrite, err)
	}
	return nil
}
