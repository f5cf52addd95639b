package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/mmynk/splitbill/internal/metrics"
	"github.com/mmynk/splitbill/internal/models"
)

// DefaultHistoryKey is the key history is stored under when none is configured.
const DefaultHistoryKey = "logs"

// Ensure BillStore implements History
var _ History = (*BillStore)(nil)

// BillStore keeps the bill history as one JSON array under a single key.
// Operations are serialized so a Persist never interleaves with another
// Persist or Clear.
type BillStore struct {
	mu      sync.Mutex
	backend Backend
	key     string
}

// NewBillStore creates a BillStore on top of backend. An empty key selects
// DefaultHistoryKey.
func NewBillStore(backend Backend, key string) *BillStore {
	if key == "" {
		key = DefaultHistoryKey
	}
	return &BillStore{backend: backend, key: key}
}

// Persist appends bill to the stored history. The whole updated history is
// written with a single Set, so on failure the stored history is unchanged.
func (s *BillStore) Persist(ctx context.Context, bill *models.Bill) (err error) {
	if bill == nil {
		return fmt.Errorf("%w: nil bill", ErrPersistence)
	}
	defer observe("persist", time.Now(), &err)

	s.mu.Lock()
	defer s.mu.Unlock()

	bills, err := s.load(ctx)
	if err != nil {
		return err
	}

	stored := *bill
	stored.People = models.ClonePeople(bill.People)
	bills = append(bills, stored)

	data, err := json.Marshal(bills)
	if err != nil {
		return fmt.Errorf("%w: failed to encode history: %w", ErrPersistence, err)
	}
	if err := s.backend.Set(ctx, s.key, data); err != nil {
		return fmt.Errorf("%w: failed to write history: %w", ErrPersistence, err)
	}

	slog.Debug("Bill persisted", "bill_id", bill.ID, "history_len", len(bills))
	return nil
}

// Load returns the stored history in append order. An empty history is
// returned as an empty, non-nil slice.
func (s *BillStore) Load(ctx context.Context) (bills []models.Bill, err error) {
	defer observe("load", time.Now(), &err)

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load(ctx)
}

// Clear removes the stored history.
func (s *BillStore) Clear(ctx context.Context) (err error) {
	defer observe("clear", time.Now(), &err)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.backend.Remove(ctx, s.key); err != nil {
		return fmt.Errorf("%w: failed to clear history: %w", ErrPersistence, err)
	}
	return nil
}

func (s *BillStore) load(ctx context.Context) ([]models.Bill, error) {
	data, err := s.backend.Get(ctx, s.key)
	if errors.Is(err, ErrNotFound) {
		return []models.Bill{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read history: %w", ErrPersistence, err)
	}

	bills := []models.Bill{}
	if len(data) == 0 {
		return bills, nil
	}
	if err := json.Unmarshal(data, &bills); err != nil {
		return nil, fmt.Errorf("%w: failed to decode history: %w", ErrPersistence, err)
	}
	if bills == nil {
		bills = []models.Bill{}
	}
	return bills, nil
}

func observe(op string, start time.Time, err *error) {
	result := "ok"
	if *err != nil {
		result = "error"
		slog.Error("History operation failed", "op", op, "error", *err)
	}
	metrics.HistoryOperations.WithLabelValues(op, result).Inc()
	metrics.HistoryDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}
