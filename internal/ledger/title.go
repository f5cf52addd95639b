package ledger

import (
	"fmt"
	"strings"

	"github.com/mmynk/splitbill/internal/models"
)

// DefaultTitle creates a bill name from its participants, for callers that
// let the user leave the name blank.
func DefaultTitle(people []models.Person) string {
	names := make([]string, len(people))
	for i, p := range people {
		names[i] = p.Name
	}
	if len(names) <= 3 {
		return fmt.Sprintf("Split with %s", strings.Join(names, ", "))
	}
	return fmt.Sprintf("Split with %s and %d others",
		strings.Join(names[:2], ", "),
		len(names)-2,
	)
}
