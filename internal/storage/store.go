// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/splitbill/internal/models"
)

var (
	// ErrNotFound is returned by a Backend when the key holds no value.
	ErrNotFound = errors.New("key not found")

	// ErrPersistence wraps every failure to read, write or decode history.
	ErrPersistence = errors.New("persistence failure")
)

// Backend is an opaque key-value store.
// Implementations must make Set and Remove atomic for a single key: after a
// failed call the previous value is still readable.
type Backend interface {
	// Get returns the bytes stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error

	// Close releases any resources held by the backend.
	Close() error
}

// History defines the bill history operations.
// This abstraction lets the ledger save bills without knowing the backend.
type History interface {
	// Persist appends bill to the history.
	Persist(ctx context.Context, bill *models.Bill) error

	// Load returns every saved bill in append order.
	Load(ctx context.Context) ([]models.Bill, error)

	// Clear removes all history.
	Clear(ctx context.Context) error
}
