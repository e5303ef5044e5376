package storage

import (
	"context"
	"sync"

	"github.com/enigma-wellbeing/enigma-engine/internal/core/domain"
)

var _ domain.Store = (*MemoryStore)(nil)

// MemoryStore is an in-process Store for tests and ephemeral use.
type MemoryStore struct {
	data map[string]string

	mu sync.RWMutex
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string]string),
	}
}

func (s *MemoryStore) Get(ctx context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.data[key]
	if !ok {
		return "", domain.ErrKeyNotFound
	}
	return value, nil
}

func (s *MemoryStore) Set(ctx context.Context, key string, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = value
	return nil
}

func (s *MemoryStore) Remove(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)
	return nil
}
