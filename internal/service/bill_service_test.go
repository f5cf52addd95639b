package service

import (
	"context"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"connectrpc.com/connect"

	"github.com/mmynk/splitbill/internal/middleware"
	"github.com/mmynk/splitbill/internal/models"
	"github.com/mmynk/splitbill/internal/storage"
	"github.com/mmynk/splitbill/internal/storage/memory"
	"github.com/mmynk/splitbill/internal/storage/sqlite"
)

// setupTestServer creates a test server backed by a temp SQLite database.
func setupTestServer(t *testing.T) *BillServiceClient {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	return setupTestServerWithBackend(t, store)
}

func setupTestServerWithBackend(t *testing.T, backend storage.Backend) *BillServiceClient {
	t.Helper()

	svc := NewBillService(storage.NewBillStore(backend, ""))
	path, handler := NewBillServiceHandler(svc, connect.WithInterceptors(middleware.LoggingInterceptor()))

	mux := http.NewServeMux()
	mux.Handle(path, handler)
	server := httptest.NewServer(mux)

	t.Cleanup(func() {
		server.Close()
		backend.Close()
	})

	return NewBillServiceClient(http.DefaultClient, server.URL)
}

// brokenBackend fails every write.
type brokenBackend struct {
	*memory.Store
}

func (brokenBackend) Set(context.Context, string, []byte) error {
	return errors.New("disk full")
}

func participants(names ...string) []Participant {
	out := make([]Participant, len(names))
	for i, n := range names {
		out[i] = Participant{Name: n}
	}
	return out
}

func TestCalculateSplit_EqualSplit(t *testing.T) {
	client := setupTestServer(t)

	resp, err := client.CalculateSplit(context.Background(), connect.NewRequest(&CalculateSplitRequest{
		Total:        "100",
		Participants: participants("Alice", "Bob", "Charlie"),
	}))
	if err != nil {
		t.Fatalf("CalculateSplit failed: %v", err)
	}

	if len(resp.Msg.People) != 3 {
		t.Fatalf("expected 3 people, got %d", len(resp.Msg.People))
	}
	for _, p := range resp.Msg.People {
		if math.Abs(p.Value-100.0/3) > 1e-9 {
			t.Errorf("expected %s value to be 33.33, got %f", p.Name, p.Value)
		}
		if p.IsFixed {
			t.Errorf("expected %s to be unfixed", p.Name)
		}
	}
}

func TestCalculateSplit_WithExplicitAmount(t *testing.T) {
	client := setupTestServer(t)

	resp, err := client.CalculateSplit(context.Background(), connect.NewRequest(&CalculateSplitRequest{
		Total: "100",
		Participants: []Participant{
			{Name: "Alice", Amount: "40"},
			{Name: "Bob"},
			{Name: "Charlie"},
		},
	}))
	if err != nil {
		t.Fatalf("CalculateSplit failed: %v", err)
	}

	want := []models.Person{
		{Name: "Alice", Value: 40, IsFixed: true},
		{Name: "Bob", Value: 30},
		{Name: "Charlie", Value: 30},
	}
	for i, p := range resp.Msg.People {
		if p != want[i] {
			t.Errorf("person %d = %+v, want %+v", i, p, want[i])
		}
	}
}

func TestCalculateSplit_InvalidInput(t *testing.T) {
	client := setupTestServer(t)

	tests := []struct {
		name string
		req  *CalculateSplitRequest
	}{
		{name: "missing total", req: &CalculateSplitRequest{Participants: participants("Alice")}},
		{name: "no participants", req: &CalculateSplitRequest{Total: "10"}},
		{name: "bad total", req: &CalculateSplitRequest{Total: "ten", Participants: participants("Alice")}},
		{name: "empty name", req: &CalculateSplitRequest{Total: "10", Participants: participants("Alice", " ")}},
		{name: "bad amount", req: &CalculateSplitRequest{Total: "10", Participants: []Participant{{Name: "Alice", Amount: "x"}}}},
		{name: "everyone fixed", req: &CalculateSplitRequest{Total: "10", Participants: []Participant{
			{Name: "Alice", Amount: "4"}, {Name: "Bob", Amount: "5"},
		}}},
		{name: "pin without total", req: &CalculateSplitRequest{Participants: []Participant{{Name: "Alice", Amount: "5"}, {Name: "Bob"}}}},
		{name: "total out of range", req: &CalculateSplitRequest{Total: "1e400", Participants: participants("Alice")}},
		{name: "pins overflow", req: &CalculateSplitRequest{Total: "0", Participants: []Participant{
			{Name: "Alice", Amount: "1e308"}, {Name: "Bob", Amount: "1e308"}, {Name: "Charlie"},
		}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := client.CalculateSplit(context.Background(), connect.NewRequest(tt.req))
			if connect.CodeOf(err) != connect.CodeInvalidArgument {
				t.Errorf("expected InvalidArgument, got %v", err)
			}
		})
	}
}

func TestSaveAndListBills(t *testing.T) {
	client := setupTestServer(t)
	ctx := context.Background()

	saved, err := client.SaveBill(ctx, connect.NewRequest(&SaveBillRequest{
		BillName: "Dinner",
		Total:    "100",
		Participants: []Participant{
			{Name: "Alice", Amount: "40"},
			{Name: "Bob"},
			{Name: "Charlie"},
		},
	}))
	if err != nil {
		t.Fatalf("SaveBill failed: %v", err)
	}
	if saved.Msg.Bill.ID == "" {
		t.Error("expected bill ID to be generated")
	}

	second, err := client.SaveBill(ctx, connect.NewRequest(&SaveBillRequest{
		Total:        "20",
		Participants: participants("Eve", "Frank"),
	}))
	if err != nil {
		t.Fatalf("SaveBill failed: %v", err)
	}
	if second.Msg.Bill.BillName != "Split with Eve, Frank" {
		t.Errorf("expected generated title, got %q", second.Msg.Bill.BillName)
	}

	list, err := client.ListBills(ctx, connect.NewRequest(&ListBillsRequest{}))
	if err != nil {
		t.Fatalf("ListBills failed: %v", err)
	}
	if len(list.Msg.Bills) != 2 {
		t.Fatalf("expected 2 bills, got %d", len(list.Msg.Bills))
	}
	if list.Msg.Bills[0].ID != saved.Msg.Bill.ID || list.Msg.Bills[1].ID != second.Msg.Bill.ID {
		t.Errorf("bills out of order: %+v", list.Msg.Bills)
	}
	if list.Msg.Bills[0].People[1].Value != 30 {
		t.Errorf("expected Bob's stored share to be 30, got %f", list.Msg.Bills[0].People[1].Value)
	}

	if _, err := client.ClearHistory(ctx, connect.NewRequest(&ClearHistoryRequest{})); err != nil {
		t.Fatalf("ClearHistory failed: %v", err)
	}
	list, err = client.ListBills(ctx, connect.NewRequest(&ListBillsRequest{}))
	if err != nil {
		t.Fatalf("ListBills failed: %v", err)
	}
	if len(list.Msg.Bills) != 0 {
		t.Errorf("expected empty history after clear, got %d bills", len(list.Msg.Bills))
	}
}

func TestSaveBill_AllAmountsExplicit(t *testing.T) {
	client := setupTestServer(t)

	resp, err := client.SaveBill(context.Background(), connect.NewRequest(&SaveBillRequest{
		BillName: "Groceries",
		Total:    "50",
		Participants: []Participant{
			{Name: "Alice", Amount: "20"},
			{Name: "Bob", Amount: "30"},
		},
	}))
	if err != nil {
		t.Fatalf("SaveBill failed: %v", err)
	}
	for _, p := range resp.Msg.Bill.People {
		if !p.IsFixed {
			t.Errorf("expected %s to be fixed", p.Name)
		}
	}
}

func TestSaveBill_MissingTotal(t *testing.T) {
	client := setupTestServer(t)
	ctx := context.Background()

	_, err := client.SaveBill(ctx, connect.NewRequest(&SaveBillRequest{
		BillName:     "Lunch",
		Participants: participants("Alice"),
	}))
	if connect.CodeOf(err) != connect.CodeInvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}

	list, err := client.ListBills(ctx, connect.NewRequest(&ListBillsRequest{}))
	if err != nil {
		t.Fatalf("ListBills failed: %v", err)
	}
	if len(list.Msg.Bills) != 0 {
		t.Errorf("expected no bills, got %d", len(list.Msg.Bills))
	}
}

func TestSaveBill_PersistenceFailure(t *testing.T) {
	client := setupTestServerWithBackend(t, brokenBackend{Store: memory.New()})

	_, err := client.SaveBill(context.Background(), connect.NewRequest(&SaveBillRequest{
		BillName:     "Lunch",
		Total:        "10",
		Participants: participants("Alice"),
	}))
	if connect.CodeOf(err) != connect.CodeUnavailable {
		t.Errorf("expected Unavailable, got %v", err)
	}
}

func TestConnectError(t *testing.T) {
	tests := []struct {
		err  error
		want connect.Code
	}{
		{storage.ErrPersistence, connect.CodeUnavailable},
		{errors.New("boom"), connect.CodeInternal},
	}
	for _, tt := range tests {
		if got := connect.CodeOf(connectError(tt.err)); got != tt.want {
			t.Errorf("connectError(%v) code = %v, want %v", tt.err, got, tt.want)
		}
	}
}
