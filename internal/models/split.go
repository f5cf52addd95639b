package models

import (
	"time"

	"github.com/google/uuid"
)

// Person represents one participant's share of a bill.
type Person struct {
	// Name identifies the participant. Never empty.
	Name string `json:"name"`

	// Value is the participant's share. It is authoritative once computed
	// by a recalculation or set explicitly.
	Value float64 `json:"value"`

	// IsFixed excludes the participant from redistribution.
	IsFixed bool `json:"isFixed"`
}

// Bill is a completed split as stored in history.
type Bill struct {
	// ID is unique and ordered by creation time (UUIDv7).
	ID string `json:"id"`

	// BillName is the human-readable name of the bill.
	BillName string `json:"billName"`

	// People is the participant snapshot taken at save time.
	People []Person `json:"people"`

	// Total is the bill amount.
	Total float64 `json:"total"`

	// CreatedAt is the Unix timestamp in milliseconds when the bill was saved.
	// Zero for records written before the field existed.
	CreatedAt int64 `json:"createdAt,omitempty"`
}

// LedgerState is the bill under construction.
type LedgerState struct {
	BillName string

	// Total is nil until the user enters one.
	Total *float64

	People []Person
}

// Clone returns a deep copy of the state.
func (s LedgerState) Clone() LedgerState {
	out := LedgerState{
		BillName: s.BillName,
		People:   ClonePeople(s.People),
	}
	if s.Total != nil {
		total := *s.Total
		out.Total = &total
	}
	return out
}

// ClonePeople returns an independently owned copy of people.
// A nil input yields nil.
func ClonePeople(people []Person) []Person {
	if people == nil {
		return nil
	}
	out := make([]Person, len(people))
	copy(out, people)
	return out
}

// NewBillID returns a fresh bill identifier. IDs generated by one process
// sort in creation order.
func NewBillID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// NewBill builds a Bill from a ledger snapshot. The people slice is copied.
func NewBill(name string, total float64, people []Person, now time.Time) (*Bill, error) {
	id, err := NewBillID()
	if err != nil {
		return nil, err
	}
	return &Bill{
		ID:        id,
		BillName:  name,
		People:    ClonePeople(people),
		Total:     total,
		CreatedAt: now.UnixMilli(),
	}, nil
}
