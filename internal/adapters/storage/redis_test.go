package storage

import (
	"context"
	"os"
	"testing"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enigma-wellbeing/enigma-engine/internal/core/domain"
)

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func TestRedisStore_Integration(t *testing.T) {
	_ = godotenv.Load("../../../.env")

	host := getEnv("REDIS_HOST", "localhost")
	port := getEnv("REDIS_PORT", "6379")
	pass := getEnv("REDIS_PASSWORD", "")

	client, err := NewRedisClient(host, port, pass, 1)
	if err != nil {
		t.Skipf("Skipping Redis integration test: %v", err)
	}
	defer client.Close()

	store := NewRedisStore(client)
	ctx := context.Background()

	key := "enigma:test:counter"
	defer store.Remove(ctx, key)

	t.Run("Success: set then get round-trips", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, key, `{"days":{"2026-02-05":3}}`))

		got, err := store.Get(ctx, key)
		require.NoError(t, err)
		assert.JSONEq(t, `{"days":{"2026-02-05":3}}`, got)
	})

	t.Run("Error: missing key", func(t *testing.T) {
		_, err := store.Get(ctx, "enigma:test:absent")
		assert.ErrorIs(t, err, domain.ErrKeyNotFound)
	})

	t.Run("Success: remove is idempotent", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, key, "v"))
		require.NoError(t, store.Remove(ctx, key))
		assert.NoError(t, store.Remove(ctx, key))

		_, err := store.Get(ctx, key)
		assert.ErrorIs(t, err, domain.ErrKeyNotFound)
	})
}
