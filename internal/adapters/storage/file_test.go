package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enigma-wellbeing/enigma-engine/internal/core/domain"
)

func TestFileStore(t *testing.T) {
	ctx := context.Background()

	t.Run("Success: values survive a fresh store over the same file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "store.json")

		first := NewFileStore(path)
		require.NoError(t, first.Set(ctx, "enigma:streak:checkin", `{"count":3,"last_day":"2026-02-05"}`))

		second := NewFileStore(path)
		got, err := second.Get(ctx, "enigma:streak:checkin")
		require.NoError(t, err)
		assert.JSONEq(t, `{"count":3,"last_day":"2026-02-05"}`, got)
	})

	t.Run("Success: creates missing parent directories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "deep", "store.json")

		store := NewFileStore(path)
		require.NoError(t, store.Set(ctx, "k", "v"))

		got, err := store.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, "v", got)
	})

	t.Run("Error: missing key and missing file read the same way", func(t *testing.T) {
		store := NewFileStore(filepath.Join(t.TempDir(), "store.json"))

		_, err := store.Get(ctx, "nope")
		assert.ErrorIs(t, err, domain.ErrKeyNotFound)
	})

	t.Run("Success: remove deletes one key and keeps the rest", func(t *testing.T) {
		store := NewFileStore(filepath.Join(t.TempDir(), "store.json"))

		require.NoError(t, store.Set(ctx, "a", "1"))
		require.NoError(t, store.Set(ctx, "b", "2"))
		require.NoError(t, store.Remove(ctx, "a"))
		assert.NoError(t, store.Remove(ctx, "a"))

		_, err := store.Get(ctx, "a")
		assert.ErrorIs(t, err, domain.ErrKeyNotFound)

		got, err := store.Get(ctx, "b")
		require.NoError(t, err)
		assert.Equal(t, "2", got)
	})

	t.Run("Edge: a corrupted document fails reads but recovers on write", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "store.json")
		require.NoError(t, os.WriteFile(path, []byte("{broken"), 0600))

		store := NewFileStore(path)

		_, err := store.Get(ctx, "k")
		require.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrKeyNotFound, "corruption is not the same as absent")

		require.NoError(t, store.Set(ctx, "k", "v"))
		got, err := store.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, "v", got)
	})
}
