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
	listenSessionKey   = "enigma:session:listening"
	minutesCounterName = "minutes"
)

// ListeningService tracks listening sessions and rolls their minutes into
// the day-scoped minutes counter.
type ListeningService struct {
	store    domain.Store
	counters *CounterService
	clock    domain.Clock
	links    []domain.SoundLink
}

// NewListeningService builds a listening tracker; an empty link list falls
// back to the built-in directory.
func NewListeningService(store domain.Store, counters *CounterService, clock domain.Clock, links []domain.SoundLink) *ListeningService {
	if len(links) == 0 {
		links = domain.DefaultSoundLinks()
	}
	return &ListeningService{store: store, counters: counters, clock: clock, links: links}
}

// Start begins a listening session for the given link label, replacing any
// session that was never ended.
func (s *ListeningService) Start(ctx context.Context, label string) error {
	session := domain.ListenSession{Label: label, StartedAt: s.clock.Now()}

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("%w: encode session: %v", domain.ErrStorageWrite, err)
	}
	if err := s.store.Set(ctx, listenSessionKey, string(data)); err != nil {
		return fmt.Errorf("%w: session: %v", domain.ErrStorageWrite, err)
	}
	return nil
}

// Active returns the running session, or nil.
func (s *ListeningService) Active(ctx context.Context) *domain.ListenSession {
	raw, err := s.store.Get(ctx, listenSessionKey)
	if err != nil {
		if !errors.Is(err, domain.ErrKeyNotFound) {
			log.Printf("listening session: read failed, treating as absent: %v", err)
		}
		return nil
	}

	var session domain.ListenSession
	if err := json.Unmarshal([]byte(raw), &session); err != nil || session.StartedAt.IsZero() {
		log.Printf("listening session: corrupted record, treating as absent")
		return nil
	}
	return &session
}

// End closes the running session, credits its whole minutes to today's
// minutes counter, and returns the minutes credited (possibly zero for a
// very short session).
func (s *ListeningService) End(ctx context.Context) (int, error) {
	session := s.Active(ctx)
	if session == nil {
		return 0, domain.ErrNoActiveSession
	}

	minutes := session.Minutes(s.clock.Now())

	if err := s.store.Remove(ctx, listenSessionKey); err != nil {
		return 0, fmt.Errorf("%w: session: %v", domain.ErrStorageWrite, err)
	}

	if minutes > 0 {
		if _, err := s.counters.Add(ctx, minutesCounterName, domain.Today(s.clock), minutes); err != nil {
			return 0, err
		}
	}
	return minutes, nil
}

// TodayMinutes is today's listened-minutes projection.
func (s *ListeningService) TodayMinutes(ctx context.Context) int {
	return s.counters.ValueFor(ctx, minutesCounterName, domain.Today(s.clock))
}

// TotalMinutes is the lifetime listened-minutes projection, derived from
// the same day-keyed record as TodayMinutes.
func (s *ListeningService) TotalMinutes(ctx context.Context) int {
	return s.counters.LifetimeTotal(ctx, minutesCounterName)
}

// LinksFor returns the links suited to the given mood; "all" returns the
// whole directory.
func (s *ListeningService) LinksFor(mood string) []domain.SoundLink {
	var matched []domain.SoundLink
	for _, l := range s.links {
		if mood == "all" || l.HasMood(mood) || l.HasMood("all") {
			matched = append(matched, l)
		}
	}
	return matched
}
