package calculator

import "fmt"

// UnassignedError reports the amount left over when no participant can absorb it.
// It matches ErrInvalidSplit under errors.Is.
type UnassignedError struct {
	Remaining float64
}

func (e *UnassignedError) Error() string {
	return fmt.Sprintf("%s (%.2f unassigned)", ErrInvalidSplit, e.Remaining)
}

func (e *UnassignedError) Unwrap() error {
	return ErrInvalidSplit
}
