package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enigma-wellbeing/enigma-engine/internal/adapters/storage"
	"github.com/enigma-wellbeing/enigma-engine/internal/core/domain"
	"github.com/enigma-wellbeing/enigma-engine/internal/core/services"
)

func TestJournalService(t *testing.T) {
	ctx := context.Background()

	t.Run("Success: entries come back newest first", func(t *testing.T) {
		store := storage.NewMemoryStore()

		morning := services.NewJournalService(store, clockAt(2026, 2, 5, 8, 0))
		first, err := morning.Add(ctx, "slept well")
		require.NoError(t, err)

		evening := services.NewJournalService(store, clockAt(2026, 2, 5, 21, 0))
		second, err := evening.Add(ctx, "long day")
		require.NoError(t, err)

		entries := evening.Entries(ctx)
		require.Len(t, entries, 2)
		assert.Equal(t, second.ID, entries[0].ID)
		assert.Equal(t, first.ID, entries[1].ID)
	})

	t.Run("Success: delete removes only the matching entry", func(t *testing.T) {
		svc := services.NewJournalService(storage.NewMemoryStore(), clockAt(2026, 2, 5, 8, 0))

		keep, err := svc.Add(ctx, "keep me")
		require.NoError(t, err)
		drop, err := svc.Add(ctx, "drop me")
		require.NoError(t, err)

		require.NoError(t, svc.Delete(ctx, drop.ID))

		entries := svc.Entries(ctx)
		require.Len(t, entries, 1)
		assert.Equal(t, keep.ID, entries[0].ID)

		assert.NoError(t, svc.Delete(ctx, "no-such-id"), "unknown id is not an error")
	})

	t.Run("Success: clear empties the journal", func(t *testing.T) {
		svc := services.NewJournalService(storage.NewMemoryStore(), clockAt(2026, 2, 5, 8, 0))

		_, err := svc.Add(ctx, "something")
		require.NoError(t, err)

		require.NoError(t, svc.Clear(ctx))
		assert.Empty(t, svc.Entries(ctx))
	})

	t.Run("Error: rejects empty text", func(t *testing.T) {
		svc := services.NewJournalService(storage.NewMemoryStore(), clockAt(2026, 2, 5, 8, 0))

		_, err := svc.Add(ctx, "   ")
		assert.ErrorIs(t, err, domain.ErrEmptyEntry)
		assert.Empty(t, svc.Entries(ctx))
	})

	t.Run("Edge: corrupted journal reads as empty", func(t *testing.T) {
		store := storage.NewMemoryStore()
		require.NoError(t, store.Set(ctx, "enigma:journal", "<<>>"))

		svc := services.NewJournalService(store, clockAt(2026, 2, 5, 8, 0))
		assert.Empty(t, svc.Entries(ctx))
	})
}
