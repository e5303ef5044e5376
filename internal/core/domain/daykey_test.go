package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enigma-wellbeing/enigma-engine/internal/core/domain"
)

type frozenClock struct {
	now time.Time
}

func (c frozenClock) Now() time.Time { return c.now }

func TestToday(t *testing.T) {
	t.Run("Success: same local day yields the same key", func(t *testing.T) {
		morning := frozenClock{time.Date(2026, 2, 5, 8, 15, 0, 0, time.Local)}
		evening := frozenClock{time.Date(2026, 2, 5, 23, 59, 59, 0, time.Local)}

		assert.Equal(t, domain.Today(morning), domain.Today(evening))
		assert.Equal(t, domain.DayKey("2026-02-05"), domain.Today(morning))
	})

	t.Run("Edge: the key flips at local midnight, not UTC's", func(t *testing.T) {
		beforeMidnight := frozenClock{time.Date(2026, 2, 5, 23, 59, 59, 0, time.Local)}
		afterMidnight := frozenClock{time.Date(2026, 2, 6, 0, 0, 1, 0, time.Local)}

		before := domain.Today(beforeMidnight)
		after := domain.Today(afterMidnight)

		assert.NotEqual(t, before, after)
		assert.True(t, string(after) > string(before), "later day must sort strictly after")
	})
}

func TestParseDayKey(t *testing.T) {
	t.Run("Success: canonical form parses", func(t *testing.T) {
		d, err := domain.ParseDayKey("2026-02-05")
		require.NoError(t, err)
		assert.Equal(t, domain.DayKey("2026-02-05"), d)
	})

	t.Run("Error: rejects non-canonical forms", func(t *testing.T) {
		for _, raw := range []string{"", "2026-2-5", "05-02-2026", "2026-13-01", "20260205", "garbage"} {
			_, err := domain.ParseDayKey(raw)
			assert.ErrorIs(t, err, domain.ErrInvalidDayKey, "input %q", raw)
		}
	})
}

func TestDayKey_PrevNext(t *testing.T) {
	t.Run("Success: crosses month boundaries", func(t *testing.T) {
		prev, err := domain.DayKey("2026-02-01").Prev()
		require.NoError(t, err)
		assert.Equal(t, domain.DayKey("2026-01-31"), prev)

		next, err := domain.DayKey("2026-01-31").Next()
		require.NoError(t, err)
		assert.Equal(t, domain.DayKey("2026-02-01"), next)
	})

	t.Run("Success: crosses year boundaries", func(t *testing.T) {
		prev, err := domain.DayKey("2026-01-01").Prev()
		require.NoError(t, err)
		assert.Equal(t, domain.DayKey("2025-12-31"), prev)
	})

	t.Run("Success: handles leap day", func(t *testing.T) {
		next, err := domain.DayKey("2024-02-28").Next()
		require.NoError(t, err)
		assert.Equal(t, domain.DayKey("2024-02-29"), next)
	})

	t.Run("Error: invalid key", func(t *testing.T) {
		_, err := domain.DayKey("not-a-day").Prev()
		assert.ErrorIs(t, err, domain.ErrInvalidDayKey)
	})
}

func TestDayKey_Seed(t *testing.T) {
	t.Run("Success: digits become a stable integer", func(t *testing.T) {
		assert.Equal(t, uint32(20260205), domain.DayKey("2026-02-05").Seed())
		assert.Equal(t, domain.DayKey("2026-02-05").Seed(), domain.DayKey("2026-02-05").Seed())
	})

	t.Run("Success: consecutive days seed differently", func(t *testing.T) {
		assert.NotEqual(t, domain.DayKey("2026-02-05").Seed(), domain.DayKey("2026-02-06").Seed())
	})
}
