// Package memory provides an in-process implementation of storage.Backend.
// Values do not survive the process.
package memory

import (
	"context"
	"sync"

	"github.com/mmynk/splitbill/internal/storage"
)

// Ensure Store implements storage.Backend
var _ storage.Backend = (*Store)(nil)

// Store is a map-backed storage.Backend.
type Store struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// New creates an empty Store.
func New() *Store {
	return &Store{values: make(map[string][]byte)}
}

// Get returns a copy of the value stored under key.
func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

// Set stores a copy of value under key.
func (s *Store) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = append([]byte(nil), value...)
	return nil
}

// Remove deletes key.
func (s *Store) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, key)
	return nil
}

// Close is a no-op.
func (s *Store) Close() error {
	return nil
}
