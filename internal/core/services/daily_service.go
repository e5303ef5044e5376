package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/enigma-wellbeing/enigma-engine/internal/core/domain"
)

const markerKeyPrefix = "enigma:marker:"

// BreatheMarker is the day marker recorded when a breathing session is
// completed.
const BreatheMarker = "breathe"

// DailyService serves deterministic daily content: the word of the day, a
// per-day-stable question ordering, and named done-today markers.
type DailyService struct {
	store domain.Store
	words []domain.Word
}

// NewDailyService builds a daily content service over the given word list;
// an empty list falls back to the built-in one.
func NewDailyService(store domain.Store, words []domain.Word) *DailyService {
	if len(words) == 0 {
		words = domain.DefaultWords()
	}
	return &DailyService{store: store, words: words}
}

// WordOfDay returns the word every caller sees for the given day. No
// network, no stored state: the pick is derived from the day itself.
func (s *DailyService) WordOfDay(today domain.DayKey) (domain.Word, error) {
	return domain.PickOne(today.Seed(), s.words)
}

// QuestionOrder returns a shuffled ordering of n question indices that is
// stable for the whole day and changes the next day.
func (s *DailyService) QuestionOrder(today domain.DayKey, n int) ([]int, error) {
	return domain.ShuffledIndices(today.Seed(), n)
}

// SessionOrder reshuffles per call, for flows that should differ between
// visits on the same day.
func (s *DailyService) SessionOrder(n int) ([]int, error) {
	return domain.ShuffledIndices(domain.SessionSeed(), n)
}

// MarkDone records that the named daily ritual happened today.
func (s *DailyService) MarkDone(ctx context.Context, name string, today domain.DayKey) error {
	if err := s.store.Set(ctx, markerKeyPrefix+name, string(today)); err != nil {
		return fmt.Errorf("%w: marker %q: %v", domain.ErrStorageWrite, name, err)
	}
	return nil
}

// Done reports whether the named ritual was completed today. Markers from
// earlier days read as not done.
func (s *DailyService) Done(ctx context.Context, name string, today domain.DayKey) bool {
	raw, err := s.store.Get(ctx, markerKeyPrefix+name)
	if err != nil {
		if !errors.Is(err, domain.ErrKeyNotFound) {
			log.Printf("marker %q: read failed, treating as not done: %v", name, err)
		}
		return false
	}
	return raw == string(today)
}
