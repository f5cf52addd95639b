// Package service exposes bill splitting and history over Connect RPC.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/splitbill/internal/calculator"
	"github.com/mmynk/splitbill/internal/ledger"
	"github.com/mmynk/splitbill/internal/storage"
)

// BillService implements the BillService RPCs on top of a bill history.
// Each request builds its own ledger, so no editing state is shared between
// callers.
type BillService struct {
	history storage.History
}

// NewBillService creates a new BillService with the given history store.
func NewBillService(history storage.History) *BillService {
	return &BillService{history: history}
}

// CalculateSplit computes shares for a proposed bill without saving it.
func (s *BillService) CalculateSplit(ctx context.Context, req *connect.Request[CalculateSplitRequest]) (*connect.Response[CalculateSplitResponse], error) {
	l, err := buildLedger("", req.Msg.Total, req.Msg.Participants)
	if err != nil {
		slog.Warn("CalculateSplit rejected input", "error", err)
		return nil, connectError(err)
	}

	if err := l.Recalculate(); err != nil {
		slog.Warn("CalculateSplit failed", "error", err)
		return nil, connectError(err)
	}

	people := l.People()
	for _, p := range people {
		slog.Debug("Person split", "person", p.Name, "value", p.Value, "fixed", p.IsFixed)
	}
	return connect.NewResponse(&CalculateSplitResponse{People: people}), nil
}

// SaveBill splits the bill and appends it to history. When every participant
// has an explicit amount, the amounts are saved as given.
func (s *BillService) SaveBill(ctx context.Context, req *connect.Request[SaveBillRequest]) (*connect.Response[SaveBillResponse], error) {
	l, err := buildLedger(req.Msg.BillName, req.Msg.Total, req.Msg.Participants)
	if err != nil {
		slog.Warn("SaveBill rejected input", "error", err)
		return nil, connectError(err)
	}
	if l.State().BillName == "" {
		l.SetBillName(ledger.DefaultTitle(l.People()))
	}

	if err := l.Recalculate(); err != nil && !errors.Is(err, calculator.ErrInvalidSplit) {
		slog.Warn("SaveBill split failed", "error", err)
		return nil, connectError(err)
	}

	bill, err := l.Save(ctx, s.history)
	if err != nil {
		slog.Error("SaveBill failed", "error", err)
		return nil, connectError(err)
	}

	return connect.NewResponse(&SaveBillResponse{Bill: *bill}), nil
}

// ListBills returns the whole history.
func (s *BillService) ListBills(ctx context.Context, _ *connect.Request[ListBillsRequest]) (*connect.Response[ListBillsResponse], error) {
	bills, err := s.history.Load(ctx)
	if err != nil {
		slog.Error("ListBills failed", "error", err)
		return nil, connectError(err)
	}
	return connect.NewResponse(&ListBillsResponse{Bills: bills}), nil
}

// ClearHistory removes every saved bill.
func (s *BillService) ClearHistory(ctx context.Context, _ *connect.Request[ClearHistoryRequest]) (*connect.Response[ClearHistoryResponse], error) {
	if err := s.history.Clear(ctx); err != nil {
		slog.Error("ClearHistory failed", "error", err)
		return nil, connectError(err)
	}
	slog.Info("History cleared")
	return connect.NewResponse(&ClearHistoryResponse{}), nil
}

// buildLedger replays user input into a fresh ledger: name, total, people,
// then explicit amounts in participant order.
func buildLedger(name, total string, participants []Participant) (*ledger.Ledger, error) {
	l := ledger.New()
	l.SetBillName(name)
	if err := l.SetTotal(total); err != nil {
		return nil, fmt.Errorf("total: %w", err)
	}

	for _, p := range participants {
		if err := l.AddPerson(p.Name); err != nil {
			return nil, err
		}
	}
	for i, p := range participants {
		if p.Amount == "" {
			continue
		}
		// the split itself is reported by the caller's Recalculate
		err := l.SetExplicitValue(i, p.Amount)
		if err != nil && !errors.Is(err, calculator.ErrInvalidSplit) && !errors.Is(err, calculator.ErrMissingInput) {
			return nil, fmt.Errorf("participant %q: %w", p.Name, err)
		}
	}
	return l, nil
}

// connectError maps domain errors to Connect codes.
func connectError(err error) error {
	switch {
	case errors.Is(err, ledger.ErrEmptyName),
		errors.Is(err, ledger.ErrIndexOutOfRange),
		errors.Is(err, ledger.ErrInvalidNumber),
		errors.Is(err, calculator.ErrMissingInput),
		errors.Is(err, calculator.ErrInvalidSplit),
		errors.Is(err, calculator.ErrOutOfRange):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, storage.ErrPersistence):
		return connect.NewError(connect.CodeUnavailable, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}
