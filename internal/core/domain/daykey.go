package domain

import (
	"errors"
	"time"
)

var (
	ErrInvalidDayKey = errors.New("invalid day key (must be YYYY-MM-DD)")
)

const dayKeyLayout = "2006-01-02"

// Clock abstracts "now" so day boundaries can be frozen in tests.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by the local system time.
func SystemClock() Clock { return systemClock{} }

// DayKey identifies one calendar day, formatted YYYY-MM-DD. It is always
// derived from a clock or from calendar arithmetic, never stored on its own.
type DayKey string

// Today returns the DayKey for the clock's current local calendar day.
// The whole engine uses local time: a check-in is a human daily ritual, so
// the day must flip at the user's midnight, not UTC's.
func Today(clock Clock) DayKey {
	return DayKey(clock.Now().Format(dayKeyLayout))
}

// ParseDayKey validates a raw string as a canonical day key.
func ParseDayKey(s string) (DayKey, error) {
	t, err := time.Parse(dayKeyLayout, s)
	if err != nil || t.Format(dayKeyLayout) != s {
		return "", ErrInvalidDayKey
	}
	return DayKey(s), nil
}

func (d DayKey) Valid() bool {
	_, err := ParseDayKey(string(d))
	return err == nil
}

// Prev returns the calendar day before d, crossing month and year
// boundaries correctly.
func (d DayKey) Prev() (DayKey, error) {
	return d.shift(-1)
}

// Next returns the calendar day after d.
func (d DayKey) Next() (DayKey, error) {
	return d.shift(1)
}

func (d DayKey) shift(days int) (DayKey, error) {
	t, err := time.Parse(dayKeyLayout, string(d))
	if err != nil {
		return "", ErrInvalidDayKey
	}
	return DayKey(t.AddDate(0, 0, days).Format(dayKeyLayout)), nil
}

// Seed derives a stable PRNG seed from the key's digits: "2026-02-05"
// becomes 20260205. Same key, same seed, on every platform.
func (d DayKey) Seed() uint32 {
	var n uint32
	for _, r := range d {
		if r < '0' || r > '9' {
			continue
		}
		n = n*10 + uint32(r-'0')
	}
	return n
}
