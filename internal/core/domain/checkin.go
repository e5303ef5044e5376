package domain

import (
	"errors"
	"strings"
)

var (
	ErrInvalidMood = errors.New("invalid mood (must be calm, okay, low, or anxious)")
)

const (
	MoodCalm    = "calm"
	MoodOkay    = "okay"
	MoodLow     = "low"
	MoodAnxious = "anxious"
)

// Checkin is one day's mood check-in. At most one is kept; a check-in from
// an earlier day is treated as absent when read back.
type Checkin struct {
	Day  DayKey `json:"day"`
	Mood string `json:"mood"`
	Note string `json:"note,omitempty"`
}

func NewCheckin(day DayKey, mood, note string) (*Checkin, error) {
	switch mood {
	case MoodCalm, MoodOkay, MoodLow, MoodAnxious:
	default:
		return nil, ErrInvalidMood
	}

	return &Checkin{
		Day:  day,
		Mood: mood,
		Note: strings.TrimSpace(note),
	}, nil
}

// RecommendationFor maps today's mood to a gentle activity suggestion. An
// unknown or empty mood gets the not-checked-in-yet nudge.
func RecommendationFor(mood string) string {
	switch mood {
	case MoodCalm:
		return "Gentle yoga or a short walk could feel lovely today."
	case MoodOkay:
		return "Read a quote that resonates."
	case MoodLow:
		return "Try a slow breathing session."
	case MoodAnxious:
		return "Tap-to-colour can help ground you."
	default:
		return "Try a daily check-in to get gentle suggestions."
	}
}
