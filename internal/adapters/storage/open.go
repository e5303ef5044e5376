package storage

import (
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	"github.com/enigma-wellbeing/enigma-engine/internal/config"
	"github.com/enigma-wellbeing/enigma-engine/internal/core/domain"
)

// Open builds the Store selected by cfg. Stores holding external resources
// also implement io.Closer.
func Open(cfg config.Config) (domain.Store, error) {
	switch cfg.Backend {
	case config.BackendMemory:
		return NewMemoryStore(), nil

	case config.BackendFile:
		return NewFileStore(cfg.FilePath), nil

	case config.BackendSQLite:
		return NewSQLiteStore(cfg.SQLitePath)

	case config.BackendRedis:
		client, err := NewRedisClient(cfg.RedisHost, cfg.RedisPort, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, err
		}
		return NewRedisStore(client), nil

	case config.BackendPostgres:
		db, err := sqlx.Connect("pgx", cfg.PostgresDSN())
		if err != nil {
			return nil, fmt.Errorf("connect to postgres: %w", err)
		}
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(25)
		db.SetConnMaxLifetime(5 * time.Minute)
		return NewPostgresStore(db)

	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
