// Package app wires configuration to concrete storage backends.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mmynk/splitbill/internal/config"
	"github.com/mmynk/splitbill/internal/storage"
	"github.com/mmynk/splitbill/internal/storage/memory"
	"github.com/mmynk/splitbill/internal/storage/redis"
	"github.com/mmynk/splitbill/internal/storage/sqlite"
)

// OpenBackend opens the key-value backend selected by cfg.StorageBackend.
// The caller owns the returned backend and must Close it.
func OpenBackend(ctx context.Context, cfg config.Config) (storage.Backend, error) {
	switch cfg.StorageBackend {
	case config.BackendSQLite, "":
		store, err := sqlite.New(cfg.DBPath)
		if err != nil {
			return nil, err
		}
		slog.Info("Storage initialized", "backend", config.BackendSQLite, "database", cfg.DBPath)
		return store, nil
	case config.BackendRedis:
		store, err := redis.New(ctx, redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return nil, err
		}
		slog.Info("Storage initialized", "backend", config.BackendRedis, "addr", cfg.RedisAddr, "db", cfg.RedisDB)
		return store, nil
	case config.BackendMemory:
		slog.Warn("Using in-memory storage, history will not survive restarts")
		return memory.New(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}

// OpenHistory opens the configured backend and wraps it in a BillStore.
func OpenHistory(ctx context.Context, cfg config.Config) (*storage.BillStore, storage.Backend, error) {
	backend, err := OpenBackend(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return storage.NewBillStore(backend, cfg.HistoryKey), backend, nil
}
