// Package calculator computes bill splits.
package calculator

import (
	"errors"
	"math"

	"github.com/mmynk/splitbill/internal/models"
)

var (
	// ErrMissingInput is returned when the total or the participant list is absent.
	ErrMissingInput = errors.New("total and at least one participant are required")

	// ErrInvalidSplit is returned when every participant is fixed, leaving
	// nobody to absorb the remaining amount.
	ErrInvalidSplit = errors.New("no unfixed participants left to absorb the remaining amount")

	// ErrOutOfRange is returned when the amounts are too large to split
	// without overflowing.
	ErrOutOfRange = errors.New("amounts too large to split")
)

// Recalculate divides whatever the fixed participants do not cover evenly
// among the unfixed ones:
//
//	share = (total - sum(fixed values)) / count(unfixed)
//
// Fixed participants keep their values. The input slice is not modified; a
// new slice in the same order is returned. No rounding is applied.
func Recalculate(total *float64, people []models.Person) ([]models.Person, error) {
	if total == nil || len(people) == 0 {
		return nil, ErrMissingInput
	}

	remaining := Remaining(*total, people)
	if !finite(remaining) {
		return nil, ErrOutOfRange
	}
	unfixed := 0
	for _, p := range people {
		if !p.IsFixed {
			unfixed++
		}
	}
	if unfixed == 0 {
		return nil, &UnassignedError{Remaining: remaining}
	}

	share := remaining / float64(unfixed)
	if !finite(share) {
		return nil, ErrOutOfRange
	}

	updated := models.ClonePeople(people)
	for i := range updated {
		if !updated[i].IsFixed {
			updated[i].Value = share
		}
	}
	return updated, nil
}

// Remaining returns the part of total not covered by fixed participants.
func Remaining(total float64, people []models.Person) float64 {
	for _, p := range people {
		if p.IsFixed {
			total -= p.Value
		}
	}
	return total
}

func finite(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}
