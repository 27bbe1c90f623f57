package data

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNullIsDistinctFromZero(t *testing.T) {
	assert.True(t, Null().IsNull())
	assert.False(t, Float(0).IsNull())
	assert.False(t, Null().Equal(Float(0)))
	assert.True(t, Null().Equal(Value{}))
}

func TestFloatNaNIsNull(t *testing.T) {
	assert.True(t, Float(math.NaN()).IsNull())
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "NULL", Null().String())
	assert.Equal(t, "32.5", Float(32.5).String())
}

func TestValueJSON(t *testing.T) {
	out, err := json.Marshal([]Value{Float(25), Null(), Float(40)})
	require.NoError(t, err)
	assert.JSONEq(t, `[25, null, 40]`, string(out))

	out, err = json.Marshal([]Value{Float(math.Inf(1)), Float(math.Inf(-1))})
	require.NoError(t, err)
	assert.JSONEq(t, `["+Inf", "-Inf"]`, string(out))
}

func TestRowHasNullAndJSON(t *testing.T) {
	row := NewRow(1, map[string]Value{"age": Null(), "purchase_value": Float(200)})
	assert.True(t, row.HasNull())

	out, err := json.Marshal(row)
	require.NoError(t, err)
	assert.JSONEq(t, `{"age": null, "purchase_value": 200}`, string(out))

	filled := NewRow(1, map[string]Value{"age": Float(32.5), "purchase_value": Float(200)})
	assert.False(t, filled.HasNull())
}
