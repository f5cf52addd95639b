// Package ledger holds the bill being edited: its name, total and
// participants, and the fixed/unfixed state of each participant.
//
// Every mutator validates its input against a copy of the current state and
// only replaces the state when the whole operation succeeds, so a failed call
// leaves the ledger exactly as it was.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/mmynk/splitbill/internal/calculator"
	"github.com/mmynk/splitbill/internal/metrics"
	"github.com/mmynk/splitbill/internal/models"
	"github.com/mmynk/splitbill/internal/storage"
)

var (
	// ErrEmptyName is returned when adding a participant without a name.
	ErrEmptyName = errors.New("participant name cannot be empty")

	// ErrIndexOutOfRange is returned when an index does not name a participant.
	ErrIndexOutOfRange = errors.New("participant index out of range")

	// ErrInvalidNumber is returned when user text is not a valid amount.
	ErrInvalidNumber = errors.New("invalid number")
)

// Ledger is the single editing session for one bill.
// It is not safe for concurrent use.
type Ledger struct {
	state models.LedgerState
	now   func() time.Time
}

// New creates an empty ledger.
func New() *Ledger {
	return &Ledger{now: time.Now}
}

// State returns a copy of the current ledger state.
func (l *Ledger) State() models.LedgerState {
	return l.state.Clone()
}

// People returns a copy of the participant list.
func (l *Ledger) People() []models.Person {
	return models.ClonePeople(l.state.People)
}

// SetBillName sets the bill name.
func (l *Ledger) SetBillName(name string) {
	l.state.BillName = strings.TrimSpace(name)
}

// SetTotal parses raw as the bill total. An empty raw clears the total.
// Changing the total unpins every fixed participant, since their values were
// chosen against the old total.
func (l *Ledger) SetTotal(raw string) error {
	next := l.state.Clone()

	if strings.TrimSpace(raw) == "" {
		next.Total = nil
	} else {
		total, err := ParseAmount(raw)
		if err != nil {
			return err
		}
		next.Total = &total
	}

	if !sameTotal(l.state.Total, next.Total) {
		for i := range next.People {
			next.People[i].IsFixed = false
		}
	}

	l.state = next
	return nil
}

// AddPerson appends a new unfixed participant with a zero share.
func (l *Ledger) AddPerson(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}

	next := l.state.Clone()
	next.People = append(next.People, models.Person{Name: name})
	l.state = next
	return nil
}

// ToggleFixed flips the fixed flag of the participant at index. The value is
// left unchanged.
func (l *Ledger) ToggleFixed(index int) error {
	if err := l.checkIndex(index); err != nil {
		return err
	}

	next := l.state.Clone()
	next.People[index].IsFixed = !next.People[index].IsFixed
	l.state = next
	return nil
}

// SetExplicitValue pins the participant at index to the amount in raw and
// redistributes the rest of the total.
//
// The pin is kept even when redistribution is impossible: with no total yet
// the MissingInput error is returned; with every participant fixed the
// InvalidSplit error is returned so the caller can report the unassigned
// remainder.
func (l *Ledger) SetExplicitValue(index int, raw string) error {
	if err := l.checkIndex(index); err != nil {
		return err
	}
	value, err := ParseAmount(raw)
	if err != nil {
		return err
	}

	next := l.state.Clone()
	next.People[index].Value = value
	next.People[index].IsFixed = true
	l.state = next

	if l.state.Total == nil {
		return fmt.Errorf("cannot redistribute: %w", calculator.ErrMissingInput)
	}
	return l.Recalculate()
}

// Recalculate redistributes the total among the unfixed participants.
func (l *Ledger) Recalculate() error {
	people, err := calculator.Recalculate(l.state.Total, l.state.People)
	if err != nil {
		metrics.SplitsCalculated.WithLabelValues("error").Inc()
		return err
	}
	metrics.SplitsCalculated.WithLabelValues("ok").Inc()

	l.state.People = people
	return nil
}

// Reset clears the bill name, total and participants.
func (l *Ledger) Reset() {
	l.state = models.LedgerState{}
}

// Save snapshots the ledger into a Bill, appends it to history and resets the
// ledger. The bill name is required; callers that want a default should set
// DefaultTitle first. On any failure the ledger is left untouched so the save
// can be retried.
func (l *Ledger) Save(ctx context.Context, history storage.History) (*models.Bill, error) {
	if l.state.Total == nil || len(l.state.People) == 0 {
		return nil, fmt.Errorf("cannot save bill: %w", calculator.ErrMissingInput)
	}
	if l.state.BillName == "" {
		return nil, fmt.Errorf("cannot save bill: bill name %w", calculator.ErrMissingInput)
	}
	name := l.state.BillName

	bill, err := models.NewBill(name, *l.state.Total, l.state.People, l.now())
	if err != nil {
		return nil, fmt.Errorf("failed to create bill: %w", err)
	}

	if err := history.Persist(ctx, bill); err != nil {
		slog.Warn("Save failed, ledger kept", "bill_name", name, "error", err)
		return nil, err
	}

	slog.Info("Bill saved", "bill_id", bill.ID, "bill_name", bill.BillName, "participants", len(bill.People))
	l.Reset()
	return bill, nil
}

func (l *Ledger) checkIndex(index int) error {
	if index < 0 || index >= len(l.state.People) {
		return fmt.Errorf("%w: %d (have %d participants)", ErrIndexOutOfRange, index, len(l.state.People))
	}
	return nil
}

func sameTotal(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
