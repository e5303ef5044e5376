package domain

import (
	"errors"
	"time"
)

var (
	ErrNoActiveSession = errors.New("no active listening session")
)

// CounterRecord is the persisted form of one named counter: a day-keyed
// map of values. "Today" and "lifetime total" are read-time projections of
// this single record, so the two can never drift apart.
type CounterRecord struct {
	Days map[DayKey]int `json:"days"`
}

func NewCounterRecord() CounterRecord {
	return CounterRecord{Days: make(map[DayKey]int)}
}

// Total sums every recorded day.
func (r CounterRecord) Total() int {
	total := 0
	for _, v := range r.Days {
		total += v
	}
	return total
}

// StreakRecord is the persisted form of one streak: how many consecutive
// qualifying days, and the last day that qualified.
type StreakRecord struct {
	Count   int    `json:"count"`
	LastDay DayKey `json:"last_day"`
}

// ListenSession is a running listening session, persisted so the session
// survives the user navigating away and coming back.
type ListenSession struct {
	Label     string    `json:"label"`
	StartedAt time.Time `json:"started_at"`
}

// Minutes reports the whole minutes elapsed at `now`, rounded, never
// negative.
func (s ListenSession) Minutes(now time.Time) int {
	d := now.Sub(s.StartedAt)
	if d < 0 {
		return 0
	}
	return int((d + 30*time.Second) / time.Minute)
}
