package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/enigma-wellbeing/enigma-engine/internal/core/domain"
)

var _ domain.Store = (*PostgresStore)(nil)

// PostgresStore keeps the keyspace in a single enigma_kv table, for
// deployments where the engine's state should live next to other
// application data.
type PostgresStore struct {
	db *sqlx.DB
}

func NewPostgresStore(db *sqlx.DB) (*PostgresStore, error) {
	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS enigma_kv (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`); err != nil {
		return nil, fmt.Errorf("create enigma_kv table: %w", pgError(err))
	}
	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.GetContext(ctx, &value, `SELECT value FROM enigma_kv WHERE key = $1`, key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", domain.ErrKeyNotFound
		}
		return "", fmt.Errorf("postgres get %q: %w", key, pgError(err))
	}
	return value, nil
}

func (s *PostgresStore) Set(ctx context.Context, key string, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO enigma_kv (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value`, key, value)
	if err != nil {
		return fmt.Errorf("postgres set %q: %w", key, pgError(err))
	}
	return nil
}

func (s *PostgresStore) Remove(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM enigma_kv WHERE key = $1`, key); err != nil {
		return fmt.Errorf("postgres remove %q: %w", key, pgError(err))
	}
	return nil
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}

// pgError surfaces the server-side error name alongside the raw error,
// which is otherwise just a SQLSTATE code.
func pgError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return fmt.Errorf("%s: %w", pqErr.Code.Name(), err)
	}
	return err
}
