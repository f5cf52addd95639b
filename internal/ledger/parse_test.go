package ledger

import (
	"errors"
	"testing"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		raw     string
		want    float64
		wantErr bool
	}{
		{raw: "0", want: 0},
		{raw: "33.333", want: 33.333},
		{raw: "  7 ", want: 7},
		{raw: "12,5", want: 12.5},
		{raw: "1e2", want: 100},
		{raw: "1,234.50", wantErr: true},
		{raw: "1,2,3", wantErr: true},
		{raw: "", wantErr: true},
		{raw: "abc", wantErr: true},
		{raw: "Infinity", wantErr: true},
		{raw: "1e400", wantErr: true},
		{raw: "-1e400", wantErr: true},
		{raw: "1e308", want: 1e308},
		{raw: "-0.01", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseAmount(tt.raw)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidNumber) {
					t.Errorf("ParseAmount(%q) error = %v, want ErrInvalidNumber", tt.raw, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAmount(%q) failed: %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("ParseAmount(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}
