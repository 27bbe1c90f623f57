package data

import (
	"encoding/json"
	"math"
	"strconv"
)

// Value is a single numeric cell that may be missing.
// The zero Value is missing.
type Value struct {
	Float float64
	Valid bool // false means the cell holds no data
}

// Null returns the missing-value sentinel
func Null() Value {
	return Value{}
}

// Float wraps a number. NaN is never a valid value and becomes Null.
func Float(f float64) Value {
	if math.IsNaN(f) {
		return Null()
	}
	return Value{Float: f, Valid: true}
}

// Floats converts numbers to values, handy for building columns
func Floats(fs ...float64) []Value {
	out := make([]Value, len(fs))
	for i, f := range fs {
		out[i] = Float(f)
	}
	return out
}

// IsNull reports whether the cell is missing
func (v Value) IsNull() bool {
	return !v.Valid
}

// Equal reports whether two cells hold the same data.
// Two missing cells are equal.
func (v Value) Equal(other Value) bool {
	if v.Valid != other.Valid {
		return false
	}
	return !v.Valid || v.Float == other.Float
}

func (v Value) String() string {
	if !v.Valid {
		return "NULL"
	}
	return strconv.FormatFloat(v.Float, 'g', -1, 64)
}

// MarshalJSON encodes a missing cell as null and infinities as the
// strings "+Inf" and "-Inf", which JSON numbers cannot represent
func (v Value) MarshalJSON() ([]byte, error) {
	if !v.Valid {
		return []byte("null"), nil
	}
	if math.IsInf(v.Float, 0) {
		return json.Marshal(v.String())
	}
	return json.Marshal(v.Float)
}
