package data

import "encoding/json"

// Row is a read-only view of one table row
// Key = column name, Value = cell value
type Row struct {
	Index int
	Data  map[string]Value
}

// NewRow creates a new Row with the given data
func NewRow(index int, data map[string]Value) Row {
	return Row{
		Index: index,
		Data:  data,
	}
}

// HasNull reports whether any cell in the row is missing
func (r Row) HasNull() bool {
	for _, v := range r.Data {
		if v.IsNull() {
			return true
		}
	}
	return false
}

// MarshalJSON implements json.Marshaler interface
// This allows Row to be logged as a plain map
func (r Row) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Data)
}
