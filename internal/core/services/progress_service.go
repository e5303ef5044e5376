package services

import (
	"context"

	"github.com/enigma-wellbeing/enigma-engine/internal/core/domain"
)

// ProgressService aggregates the other services into the read-only summary
// the progress page renders.
type ProgressService struct {
	checkins  *CheckinService
	quotes    *QuoteService
	daily     *DailyService
	listening *ListeningService
	clock     domain.Clock
}

func NewProgressService(checkins *CheckinService, quotes *QuoteService, daily *DailyService, listening *ListeningService, clock domain.Clock) *ProgressService {
	return &ProgressService{
		checkins:  checkins,
		quotes:    quotes,
		daily:     daily,
		listening: listening,
		clock:     clock,
	}
}

type ProgressSummary struct {
	Mood           string
	CheckinStreak  int
	Recommendation string
	SavedQuotes    int
	BreatheDone    bool
	TodayMinutes   int
	TotalMinutes   int
}

// Summary reads the current state of every tracked habit. It never writes.
func (s *ProgressService) Summary(ctx context.Context) ProgressSummary {
	today := domain.Today(s.clock)

	summary := ProgressSummary{
		CheckinStreak:  s.checkins.Streak(ctx),
		Recommendation: s.checkins.Recommendation(ctx),
		SavedQuotes:    len(s.quotes.Saved(ctx)),
		BreatheDone:    s.daily.Done(ctx, BreatheMarker, today),
		TodayMinutes:   s.listening.TodayMinutes(ctx),
		TotalMinutes:   s.listening.TotalMinutes(ctx),
	}
	if checkin := s.checkins.Today(ctx); checkin != nil {
		summary.Mood = checkin.Mood
	}
	return summary
}
