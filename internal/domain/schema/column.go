package schema

import "github.com/Nebiyou-x/Fraud-detection/internal/domain/data"

// Column is a named, ordered sequence of nullable numeric cells
type Column struct {
	Name   string       `json:"name"`
	Values []data.Value `json:"values"`
}

// NewColumn creates a column holding the given values
func NewColumn(name string, values ...data.Value) *Column {
	vals := make([]data.Value, len(values))
	copy(vals, values)
	return &Column{Name: name, Values: vals}
}

// Len returns the number of cells in the column
func (c *Column) Len() int {
	return len(c.Values)
}

// NullCount returns how many cells are missing
func (c *Column) NullCount() int {
	n := 0
	for _, v := range c.Values {
		if v.IsNull() {
			n++
		}
	}
	return n
}

// NonNull returns the present numbers in row order, skipping missing cells
func (c *Column) NonNull() []float64 {
	out := make([]float64, 0, len(c.Values))
	for _, v := range c.Values {
		if v.Valid {
			out = append(out, v.Float)
		}
	}
	return out
}

// Copy creates a deep copy of the column to prevent mutation
func (c *Column) Copy() *Column {
	return NewColumn(c.Name, c.Values...)
}

// Equal reports whether both columns have the same name and cells
func (c *Column) Equal(other *Column) bool {
	if c.Name != other.Name || len(c.Values) != len(other.Values) {
		return false
	}
	for i := range c.Values {
		if !c.Values[i].Equal(other.Values[i]) {
			return false
		}
	}
	return true
}
