package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/enigma-wellbeing/enigma-engine/internal/core/domain"
)

const (
	counterKeyPrefix = "enigma:counter:"
	streakKeyPrefix  = "enigma:streak:"
)

// CounterService implements day-scoped counters and streaks over the
// storage port. Every operation is one read-modify-write unit; rollover is
// lazy (an old day's value is simply not today's value, nothing is rewritten
// on read).
type CounterService struct {
	store domain.Store
}

func NewCounterService(store domain.Store) *CounterService {
	return &CounterService{store: store}
}

func counterKey(name string) string { return counterKeyPrefix + name }
func streakKey(name string) string  { return streakKeyPrefix + name }

// Increment adds one to name's value for today and returns the new
// today-value.
func (s *CounterService) Increment(ctx context.Context, name string, today domain.DayKey) (int, error) {
	return s.Add(ctx, name, today, 1)
}

// Add folds delta into today's bucket for name and returns the new
// today-value. Negative deltas cannot push a day below zero.
func (s *CounterService) Add(ctx context.Context, name string, today domain.DayKey, delta int) (int, error) {
	rec := s.loadCounter(ctx, name)

	rec.Days[today] += delta
	if rec.Days[today] < 0 {
		rec.Days[today] = 0
	}

	if err := s.saveCounter(ctx, name, rec); err != nil {
		return 0, err
	}
	return rec.Days[today], nil
}

// ValueFor returns today's value without writing. A record last touched on
// another day reads as zero.
func (s *CounterService) ValueFor(ctx context.Context, name string, today domain.DayKey) int {
	return s.loadCounter(ctx, name).Days[today]
}

// LifetimeTotal sums every recorded day for name.
func (s *CounterService) LifetimeTotal(ctx context.Context, name string) int {
	return s.loadCounter(ctx, name).Total()
}

// RecordStreakEvent registers a qualifying event for today and returns the
// updated streak count. Re-recording the same day is idempotent; an event
// exactly one calendar day after the last one extends the streak; any
// larger gap resets it to 1.
func (s *CounterService) RecordStreakEvent(ctx context.Context, name string, today domain.DayKey) (int, error) {
	rec := s.loadStreak(ctx, name)

	if rec.LastDay == today {
		return rec.Count, nil
	}

	yesterday, err := today.Prev()
	if err != nil {
		return 0, err
	}

	if rec.LastDay == yesterday {
		rec.Count++
	} else {
		rec.Count = 1
	}
	rec.LastDay = today

	if err := s.saveStreak(ctx, name, rec); err != nil {
		return 0, err
	}
	return rec.Count, nil
}

// StreakFor reports the streak as seen from today without writing: once a
// day has been skipped the streak reads as zero, even before the next
// event persists the reset.
func (s *CounterService) StreakFor(ctx context.Context, name string, today domain.DayKey) int {
	rec := s.loadStreak(ctx, name)

	if rec.LastDay == today {
		return rec.Count
	}
	if yesterday, err := today.Prev(); err == nil && rec.LastDay == yesterday {
		return rec.Count
	}
	return 0
}

// Clear removes the counter and the streak stored under name. Clearing an
// absent name is not an error.
func (s *CounterService) Clear(ctx context.Context, name string) error {
	if err := s.store.Remove(ctx, counterKey(name)); err != nil {
		return fmt.Errorf("%w: clear counter %q: %v", domain.ErrStorageWrite, name, err)
	}
	if err := s.store.Remove(ctx, streakKey(name)); err != nil {
		return fmt.Errorf("%w: clear streak %q: %v", domain.ErrStorageWrite, name, err)
	}
	return nil
}

// loadCounter treats missing and corrupted records as empty. Corruption is
// logged: silently losing history is how the old app ate people's progress.
func (s *CounterService) loadCounter(ctx context.Context, name string) domain.CounterRecord {
	rec := domain.NewCounterRecord()

	raw, err := s.store.Get(ctx, counterKey(name))
	if err != nil {
		if !errors.Is(err, domain.ErrKeyNotFound) {
			log.Printf("counter %q: read failed, treating as empty: %v", name, err)
		}
		return rec
	}

	if err := json.Unmarshal([]byte(raw), &rec); err != nil || rec.Days == nil {
		log.Printf("counter %q: corrupted record, treating as empty", name)
		return domain.NewCounterRecord()
	}
	return rec
}

func (s *CounterService) saveCounter(ctx context.Context, name string, rec domain.CounterRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("%w: encode counter %q: %v", domain.ErrStorageWrite, name, err)
	}
	if err := s.store.Set(ctx, counterKey(name), string(data)); err != nil {
		return fmt.Errorf("%w: counter %q: %v", domain.ErrStorageWrite, name, err)
	}
	return nil
}

func (s *CounterService) loadStreak(ctx context.Context, name string) domain.StreakRecord {
	var rec domain.StreakRecord

	raw, err := s.store.Get(ctx, streakKey(name))
	if err != nil {
		if !errors.Is(err, domain.ErrKeyNotFound) {
			log.Printf("streak %q: read failed, treating as empty: %v", name, err)
		}
		return rec
	}

	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		log.Printf("streak %q: corrupted record, treating as empty", name)
		return domain.StreakRecord{}
	}
	return rec
}

func (s *CounterService) saveStreak(ctx context.Context, name string, rec domain.StreakRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("%w: encode streak %q: %v", domain.ErrStorageWrite, name, err)
	}
	if err := s.store.Set(ctx, streakKey(name), string(data)); err != nil {
		return fmt.Errorf("%w: streak %q: %v", domain.ErrStorageWrite, name, err)
	}
	return nil
}
