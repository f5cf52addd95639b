// Package redis provides a Redis-backed implementation of the storage.Backend interface.
package redis

import (
	"context"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/mmynk/splitbill/internal/storage"
)

// Ensure Store implements storage.Backend
var _ storage.Backend = (*Store)(nil)

// Options configures the Redis connection.
type Options struct {
	Addr     string
	Password string
	DB       int

	// Prefix is prepended to every key so several deployments can share a database.
	Prefix string
}

// Store implements storage.Backend on top of Redis strings.
type Store struct {
	client *goredis.Client
	prefix string
}

// New connects to Redis and verifies the connection with PING.
func New(ctx context.Context, opts Options) (*Store, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", opts.Addr, err)
	}

	return &Store{client: client, prefix: opts.Prefix}, nil
}

// Get returns the value stored under key.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get key %q: %w", key, err)
	}
	return value, nil
}

// Set stores value under key with no expiry. A single SET is atomic.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set key %q: %w", key, err)
	}
	return nil
}

// Remove deletes key.
func (s *Store) Remove(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil {
		return fmt.Errorf("failed to remove key %q: %w", key, err)
	}
	return nil
}

// Close closes the client.
func (s *Store) Close() error {
	return s.client.Close()
}
