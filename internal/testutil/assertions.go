package testutil

import (
	"testing"

	"github.com/Nebiyou-x/Fraud-detection/internal/domain/data"
	"github.com/Nebiyou-x/Fraud-detection/internal/domain/schema"
)

// AssertNoNulls checks that no column of the table has a missing value
func AssertNoNulls(t *testing.T, table *schema.Table, context string) {
	t.Helper()
	if total := table.TotalNulls(); total != 0 {
		t.Errorf("%s: expected 0 missing values, got %d (%v)", context, total, table.NullCounts())
	}
}

// AssertColumnValues checks a column's cells against the expected values
func AssertColumnValues(t *testing.T, table *schema.Table, column string, expected []data.Value, context string) {
	t.Helper()
	col, err := table.Column(column)
	if err != nil {
		t.Fatalf("%s: %v", context, err)
	}
	if len(col.Values) != len(expected) {
		t.Fatalf("%s: expected %d values in %s, got %d", context, len(expected), column, len(col.Values))
	}
	for i := range expected {
		if !col.Values[i].Equal(expected[i]) {
			t.Errorf("%s: %s[%d] expected %v, got %v", context, column, i, expected[i], col.Values[i])
		}
	}
}
