package ledger

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses user-entered text as a non-negative amount.
// Surrounding whitespace is ignored and a lone decimal comma is accepted
// ("12,50"). Anything else that is not a plain decimal number fails with
// ErrInvalidNumber.
func ParseAmount(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	if s == "" {
		return 0, fmt.Errorf("%w: empty value", ErrInvalidNumber)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, raw)
	}
	if d.IsNegative() {
		return 0, fmt.Errorf("%w: %q is negative", ErrInvalidNumber, raw)
	}
	f := d.InexactFloat64()
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, fmt.Errorf("%w: %q is out of range", ErrInvalidNumber, raw)
	}
	return f, nil
}
