package testutil

import (
	"testing"

	"github.com/Nebiyou-x/Fraud-detection/internal/domain/data"
	"github.com/Nebiyou-x/Fraud-detection/internal/domain/schema"
)

// MustTable builds a table or fails the test
func MustTable(t *testing.T, name string, cols ...*schema.Column) *schema.Table {
	t.Helper()
	table, err := schema.NewTable(name, cols...)
	if err != nil {
		t.Fatalf("failed to build table %s: %v", name, err)
	}
	return table
}

// CreateAllMissingTable creates a table whose "score" column has no values
func CreateAllMissingTable(t *testing.T) *schema.Table {
	t.Helper()
	return MustTable(t, "all_missing",
		schema.NewColumn("score", data.Null(), data.Null(), data.Null()),
		schema.NewColumn("amount", data.Floats(1, 2, 3)...),
	)
}

// CreateEvenTable creates a table whose "amount" column has an even count of values
func CreateEvenTable(t *testing.T) *schema.Table {
	t.Helper()
	return MustTable(t, "even",
		schema.NewColumn("amount", data.Float(10), data.Null(), data.Float(4), data.Float(8), data.Null(), data.Float(2)),
		schema.NewColumn("flag", data.Floats(0, 1, 0, 1, 0, 1)...),
	)
}
