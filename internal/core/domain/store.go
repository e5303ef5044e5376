package domain

import (
	"context"
	"errors"
)

var (
	ErrKeyNotFound  = errors.New("key not found")
	ErrStorageWrite = errors.New("storage write failed")
)

// Store is the persistence port: a flat key-value space holding the
// engine's serialized records, the shape of the browser storage the
// original app wrote to.
//
// Each logical engine operation performs a single read-modify-write unit
// against the store. Reconciling concurrent writers (multiple tabs or
// processes) is explicitly out of scope.
type Store interface {
	// Get returns the raw value for key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) (string, error)

	// Set persists value under key, overwriting any previous value.
	Set(ctx context.Context, key string, value string) error

	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
}
