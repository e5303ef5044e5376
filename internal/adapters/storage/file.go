package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/enigma-wellbeing/enigma-engine/internal/core/domain"
)

var _ domain.Store = (*FileStore)(nil)

// FileStore persists the whole keyspace as one JSON document on disk, the
// shape of a localStorage snapshot. Writes go through a temp file and
// rename so a crash never leaves a half-written document.
type FileStore struct {
	path string

	mu sync.Mutex
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Get(ctx context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return "", err
	}

	value, ok := data[key]
	if !ok {
		return "", domain.ErrKeyNotFound
	}
	return value, nil
}

func (s *FileStore) Set(ctx context.Context, key string, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		// A document we can no longer parse would otherwise block every
		// future write; start over rather than wedge the store.
		log.Printf("file store: unreadable document at %s, starting fresh: %v", s.path, err)
		data = make(map[string]string)
	}

	data[key] = value
	return s.save(data)
}

func (s *FileStore) Remove(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return nil
	}
	if _, ok := data[key]; !ok {
		return nil
	}

	delete(data, key)
	return s.save(data)
}

func (s *FileStore) load() (map[string]string, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string]string), nil
		}
		return nil, fmt.Errorf("read store file: %w", err)
	}

	data := make(map[string]string)
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse store file: %w", err)
	}
	return data, nil
}

func (s *FileStore) save(data map[string]string) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("encode store file: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("create store directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".enigma-store-*")
	if err != nil {
		return fmt.Errorf("create temp store file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write store file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close store file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replace store file: %w", err)
	}
	return nil
}
