package preprocessing

import (
	"fmt"

	domainerrors "github.com/Nebiyou-x/Fraud-detection/internal/domain/errors"
	"github.com/Nebiyou-x/Fraud-detection/internal/domain/schema"
)

// Verify checks that no column of t contains a missing value.
// On failure it returns a *errors.VerificationError listing the offending columns.
func Verify(t *schema.Table) error {
	if t == nil {
		return fmt.Errorf("verify: nil table: %w", domainerrors.ErrInvalidInput)
	}

	remaining := make(map[string]int)
	for name, n := range t.NullCounts() {
		if n > 0 {
			remaining[name] = n
		}
	}
	if len(remaining) == 0 {
		return nil
	}

	var rows []int
	for _, row := range t.Rows() {
		if row.HasNull() {
			rows = append(rows, row.Index)
		}
	}
	return &domainerrors.VerificationError{
		Table:     t.Name,
		Remaining: remaining,
		Rows:      rows,
	}
}
