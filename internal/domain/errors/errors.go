package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Error kinds. Callers classify with errors.Is.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrVerification = errors.New("verification failed")
)

// ColumnNotFoundError is returned when a named column does not exist
type ColumnNotFoundError struct {
	TableName  string
	ColumnName string
}

func (e *ColumnNotFoundError) Error() string {
	return fmt.Sprintf("column %q not found in table %q", e.ColumnName, e.TableName)
}

func (e *ColumnNotFoundError) Unwrap() error { return ErrInvalidInput }

// EmptyColumnError is returned when a column has no non-missing values,
// so its median is undefined
type EmptyColumnError struct {
	TableName  string
	ColumnName string
}

func (e *EmptyColumnError) Error() string {
	return fmt.Sprintf("column %s.%s has no non-missing values", e.TableName, e.ColumnName)
}

func (e *EmptyColumnError) Unwrap() error { return ErrInvalidInput }

// NonFiniteMedianError is returned when a column's median is infinite or NaN,
// which happens when the present values include infinities
type NonFiniteMedianError struct {
	TableName  string
	ColumnName string
	Median     float64
}

func (e *NonFiniteMedianError) Error() string {
	return fmt.Sprintf("column %s.%s has non-finite median %v", e.TableName, e.ColumnName, e.Median)
}

func (e *NonFiniteMedianError) Unwrap() error { return ErrInvalidInput }

// ConstraintError represents a violation of a table construction rule
// ("duplicate_column", "ragged_column", "empty_name")
type ConstraintError struct {
	Table      string // table name
	Column     string // column name (empty if table-level constraint)
	Constraint string
	Reason     string // human-readable explanation (optional)
}

func (e *ConstraintError) Error() string {
	var parts []string

	parts = append(parts, fmt.Sprintf("constraint violation in %s.%s", e.Table, e.Column))

	if e.Constraint != "" {
		parts = append(parts, fmt.Sprintf("(%s)", e.Constraint))
	}

	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}

	return strings.Join(parts, " - ")
}

func (e *ConstraintError) Unwrap() error { return ErrInvalidInput }

// NewDuplicateColumn reports a column name used twice in one table
func NewDuplicateColumn(table, column string) *ConstraintError {
	return &ConstraintError{
		Table:      table,
		Column:     column,
		Constraint: "duplicate_column",
		Reason:     "column name already used",
	}
}

// NewRaggedColumn reports a column whose length differs from the table's row count
func NewRaggedColumn(table, column string, got, want int) *ConstraintError {
	return &ConstraintError{
		Table:      table,
		Column:     column,
		Constraint: "ragged_column",
		Reason:     fmt.Sprintf("has %d values, expected %d", got, want),
	}
}

// VerificationError is returned when missing values remain after cleaning
type VerificationError struct {
	Table     string
	Remaining map[string]int // column name -> missing count, non-zero entries only
	Rows      []int          // positions of rows still holding a missing cell
}

func (e *VerificationError) Error() string {
	names := make([]string, 0, len(e.Remaining))
	total := 0
	for name, n := range e.Remaining {
		names = append(names, name)
		total += n
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s=%d", name, e.Remaining[name])
	}
	return fmt.Sprintf("table %q still has %d missing values (%s)", e.Table, total, strings.Join(parts, ", "))
}

func (e *VerificationError) Unwrap() error { return ErrVerification }
