package schema

import (
	"sync"

	"github.com/Nebiyou-x/Fraud-detection/internal/domain/data"
	"github.com/Nebiyou-x/Fraud-detection/internal/domain/errors"
)

// Table is an ordered collection of named columns of equal length.
// Row order is insertion order and never changes.
type Table struct {
	mu      sync.RWMutex
	Name    string
	columns []*Column
	byName  map[string]int
	rows    int
}

// NewTable builds a table from columns, copying their values.
// Column names must be unique and non-empty and all columns must have the same length.
func NewTable(name string, cols ...*Column) (*Table, error) {
	t := &Table{
		Name:    name,
		columns: make([]*Column, 0, len(cols)),
		byName:  make(map[string]int, len(cols)),
	}

	for i, col := range cols {
		if col == nil || col.Name == "" {
			return nil, &errors.ConstraintError{
				Table:      name,
				Constraint: "empty_name",
				Reason:     "column name required",
			}
		}
		if _, exists := t.byName[col.Name]; exists {
			return nil, errors.NewDuplicateColumn(name, col.Name)
		}
		if i == 0 {
			t.rows = col.Len()
		} else if col.Len() != t.rows {
			return nil, errors.NewRaggedColumn(name, col.Name, col.Len(), t.rows)
		}

		t.byName[col.Name] = len(t.columns)
		t.columns = append(t.columns, col.Copy())
	}

	return t, nil
}

// Lock acquires an exclusive lock on the table for write operations
func (t *Table) Lock() {
	t.mu.Lock()
}

// Unlock releases the exclusive lock
func (t *Table) Unlock() {
	t.mu.Unlock()
}

// RLock acquires a read lock on the table for read operations
func (t *Table) RLock() {
	t.mu.RLock()
}

// RUnlock releases the read lock
func (t *Table) RUnlock() {
	t.mu.RUnlock()
}

// RowCount returns the number of rows
func (t *Table) RowCount() int {
	t.RLock()
	defer t.RUnlock()
	return t.rows
}

// ColumnNames returns the column names in insertion order
func (t *Table) ColumnNames() []string {
	t.RLock()
	defer t.RUnlock()

	names := make([]string, len(t.columns))
	for i, col := range t.columns {
		names[i] = col.Name
	}
	return names
}

// Column returns a copy of the named column
func (t *Table) Column(name string) (*Column, error) {
	t.RLock()
	defer t.RUnlock()

	col, err := t.columnUnsafe(name)
	if err != nil {
		return nil, err
	}
	return col.Copy(), nil
}

// UpdateColumn gives fn exclusive, in-place access to one column's storage.
// fn may overwrite cells but must not change the column's length; a renamed
// column is restored to its original name. If fn fails or resizes the
// column, the column's cells are rolled back and the table is unchanged.
func (t *Table) UpdateColumn(name string, fn func(col *Column) error) error {
	t.Lock()
	defer t.Unlock()

	col, err := t.columnUnsafe(name)
	if err != nil {
		return err
	}

	rows := col.Len()
	saved := make([]data.Value, rows)
	copy(saved, col.Values)
	rollback := func() {
		col.Name = name
		col.Values = saved
	}

	if err := fn(col); err != nil {
		rollback()
		return err
	}
	if col.Len() != rows {
		got := col.Len()
		rollback()
		return errors.NewRaggedColumn(t.Name, name, got, rows)
	}
	col.Name = name
	return nil
}

// NullCounts returns the number of missing cells per column
func (t *Table) NullCounts() map[string]int {
	t.RLock()
	defer t.RUnlock()

	counts := make(map[string]int, len(t.columns))
	for _, col := range t.columns {
		counts[col.Name] = col.NullCount()
	}
	return counts
}

// TotalNulls returns the number of missing cells across all columns
func (t *Table) TotalNulls() int {
	total := 0
	for _, n := range t.NullCounts() {
		total += n
	}
	return total
}

// Row returns a view of the row at position i
func (t *Table) Row(i int) (data.Row, bool) {
	t.RLock()
	defer t.RUnlock()

	if i < 0 || i >= t.rows {
		return data.Row{}, false
	}
	return t.rowUnsafe(i), true
}

// Rows returns views of all rows in insertion order
func (t *Table) Rows() []data.Row {
	t.RLock()
	defer t.RUnlock()

	rows := make([]data.Row, t.rows)
	for i := range rows {
		rows[i] = t.rowUnsafe(i)
	}
	return rows
}

// Clone returns a deep copy of the table
func (t *Table) Clone() *Table {
	t.RLock()
	defer t.RUnlock()

	clone := &Table{
		Name:    t.Name,
		columns: make([]*Column, len(t.columns)),
		byName:  make(map[string]int, len(t.byName)),
		rows:    t.rows,
	}
	for i, col := range t.columns {
		clone.columns[i] = col.Copy()
		clone.byName[col.Name] = i
	}
	return clone
}

// columnUnsafe looks up a column by name
// IMPORTANT: Must be called while holding a lock!
func (t *Table) columnUnsafe(name string) (*Column, error) {
	idx, ok := t.byName[name]
	if !ok {
		return nil, &errors.ColumnNotFoundError{
			TableName:  t.Name,
			ColumnName: name,
		}
	}
	return t.columns[idx], nil
}

// rowUnsafe builds the row view at position i
// IMPORTANT: Must be called while holding a lock!
func (t *Table) rowUnsafe(i int) data.Row {
	cells := make(map[string]data.Value, len(t.columns))
	for _, col := range t.columns {
		cells[col.Name] = col.Values[i]
	}
	return data.NewRow(i, cells)
}
