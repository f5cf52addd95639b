package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/mmynk/splitbill/internal/models"
	"github.com/mmynk/splitbill/internal/storage"
)

func newTestStore(t *testing.T) (*SQLiteStore, string) {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "nested", "test.db")
	store, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store, dbPath
}

func TestSQLiteStore(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	t.Run("Get returns ErrNotFound for missing key", func(t *testing.T) {
		_, err := store.Get(ctx, "missing")
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})

	t.Run("Set then Get round-trips bytes", func(t *testing.T) {
		if err := store.Set(ctx, "k", []byte(`[1,2,3]`)); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		got, err := store.Get(ctx, "k")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if string(got) != `[1,2,3]` {
			t.Errorf("Get = %q, want %q", got, `[1,2,3]`)
		}
	})

	t.Run("Set overwrites existing value", func(t *testing.T) {
		if err := store.Set(ctx, "k", []byte(`[4]`)); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		got, err := store.Get(ctx, "k")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if string(got) != `[4]` {
			t.Errorf("Get = %q, want %q", got, `[4]`)
		}
	})

	t.Run("Remove deletes key and tolerates absence", func(t *testing.T) {
		if err := store.Remove(ctx, "k"); err != nil {
			t.Fatalf("Remove failed: %v", err)
		}
		if err := store.Remove(ctx, "k"); err != nil {
			t.Errorf("Remove of absent key failed: %v", err)
		}
		if _, err := store.Get(ctx, "k"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound after Remove, got %v", err)
		}
	})

	t.Run("Set fails on canceled context", func(t *testing.T) {
		canceled, cancel := context.WithCancel(ctx)
		cancel()
		if err := store.Set(canceled, "k", []byte("x")); err == nil {
			t.Error("Expected error for canceled context, got nil")
		}
		if _, err := store.Get(ctx, "k"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected key to stay absent, got %v", err)
		}
	})
}

func TestHistorySurvivesReopen(t *testing.T) {
	store, dbPath := newTestStore(t)
	ctx := context.Background()

	bill := &models.Bill{
		ID:       "0190b3c2-0000-7000-8000-000000000001",
		BillName: "Test Dinner",
		Total:    55.5,
		People: []models.Person{
			{Name: "Charlie", Value: 30, IsFixed: true},
			{Name: "Diana", Value: 25.5},
		},
		CreatedAt: 1700000000000,
	}

	if err := storage.NewBillStore(store, "").Persist(ctx, bill); err != nil {
		t.Fatalf("Persist failed: %v", err)
	}
	store.Close()

	reopened, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to reopen store: %v", err)
	}
	defer reopened.Close()

	bills, err := storage.NewBillStore(reopened, "").Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(bills) != 1 {
		t.Fatalf("Expected 1 bill, got %d", len(bills))
	}
	if !reflect.DeepEqual(bills[0], *bill) {
		t.Errorf("Loaded bill = %+v, want %+v", bills[0], *bill)
	}
}
