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
	checkinKey        = "enigma:checkin"
	checkinStreakName = "checkin"
)

// CheckinService handles the daily mood check-in and its streak.
type CheckinService struct {
	store    domain.Store
	counters *CounterService
	clock    domain.Clock
}

func NewCheckinService(store domain.Store, counters *CounterService, clock domain.Clock) *CheckinService {
	return &CheckinService{store: store, counters: counters, clock: clock}
}

type CheckinResult struct {
	Checkin *domain.Checkin
	Streak  int
}

// Save validates and persists today's check-in, then records the streak
// event. Callers must only confirm "saved" to the user when this returns
// nil: the old app showed an unconditional saved label and lied on quota
// failures.
func (s *CheckinService) Save(ctx context.Context, mood, note string) (*CheckinResult, error) {
	today := domain.Today(s.clock)

	checkin, err := domain.NewCheckin(today, mood, note)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(checkin)
	if err != nil {
		return nil, fmt.Errorf("%w: encode check-in: %v", domain.ErrStorageWrite, err)
	}
	if err := s.store.Set(ctx, checkinKey, string(data)); err != nil {
		return nil, fmt.Errorf("%w: check-in: %v", domain.ErrStorageWrite, err)
	}

	// Two writes, not one transaction. If the streak write fails the
	// check-in is already stored; retrying Save the same day rewrites the
	// check-in and records the streak event idempotently, so the pair
	// converges.
	streak, err := s.counters.RecordStreakEvent(ctx, checkinStreakName, today)
	if err != nil {
		return nil, err
	}

	return &CheckinResult{Checkin: checkin, Streak: streak}, nil
}

// Today returns today's check-in, or nil when there is none (including a
// stale check-in left over from an earlier day).
func (s *CheckinService) Today(ctx context.Context) *domain.Checkin {
	raw, err := s.store.Get(ctx, checkinKey)
	if err != nil {
		if !errors.Is(err, domain.ErrKeyNotFound) {
			log.Printf("check-in: read failed, treating as absent: %v", err)
		}
		return nil
	}

	var checkin domain.Checkin
	if err := json.Unmarshal([]byte(raw), &checkin); err != nil {
		log.Printf("check-in: corrupted record, treating as absent")
		return nil
	}

	if checkin.Day != domain.Today(s.clock) {
		return nil
	}
	return &checkin
}

// Streak reads the current check-in streak without recording an event.
func (s *CheckinService) Streak(ctx context.Context) int {
	return s.counters.StreakFor(ctx, checkinStreakName, domain.Today(s.clock))
}

// Recommendation suggests an activity based on today's mood.
func (s *CheckinService) Recommendation(ctx context.Context) string {
	mood := ""
	if checkin := s.Today(ctx); checkin != nil {
		mood = checkin.Mood
	}
	return domain.RecommendationFor(mood)
}
