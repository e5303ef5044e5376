package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Storage backends selectable via STORAGE_BACKEND.
const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendSQLite   = "sqlite"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

type Config struct {
	Backend string

	FilePath   string
	SQLitePath string

	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	QuoteAPIBaseURL string
}

// Load reads configuration from the environment, honoring a .env file when
// present. Every setting has a default; memory is the zero-setup backend.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Backend: getenv("STORAGE_BACKEND", BackendMemory),

		FilePath:   getenv("STORAGE_FILE", defaultDataPath("store.json")),
		SQLitePath: getenv("STORAGE_SQLITE", defaultDataPath("store.db")),

		RedisHost:     getenv("REDIS_HOST", "localhost"),
		RedisPort:     getenv("REDIS_PORT", "6379"),
		RedisPassword: getenv("REDIS_PASSWORD", ""),
		RedisDB:       getenvInt("REDIS_DB", 0),

		DBUser:     getenv("DB_USER", "enigma_user"),
		DBPassword: getenv("DB_PASSWORD", ""),
		DBHost:     getenv("DB_HOST", "localhost"),
		DBPort:     getenv("DB_PORT", "5432"),
		DBName:     getenv("DB_NAME", "enigma_db"),

		QuoteAPIBaseURL: getenv("QUOTE_API_BASE_URL", ""),
	}
}

// PostgresDSN assembles the connection string for the postgres backend.
func (c Config) PostgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

func defaultDataPath(name string) string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return name
	}
	return filepath.Join(dir, "enigma", name)
}

func getenv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func getenvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
