package transaction

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nebiyou-x/Fraud-detection/internal/domain/data"
)

func TestNewRun(t *testing.T) {
	a := NewRun()
	b := NewRun()

	_, err := uuid.Parse(a.ID)
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Greater(t, b.Seq, a.Seq)
	assert.True(t, a.Active)
	assert.Empty(t, a.Changes)
}

func TestRunRecordAndClose(t *testing.T) {
	run := NewRun()
	run.Record(Change{Type: ChangeTypeImpute, Table: "t", Column: "age", RowIndex: 1, OldValue: data.Null(), NewValue: data.Float(32.5)})
	require.Len(t, run.Changes, 1)

	run.Close()
	assert.False(t, run.Active)
	end := run.EndTime
	assert.False(t, end.IsZero())
	assert.GreaterOrEqual(t, run.Duration().Nanoseconds(), int64(0))

	run.Close()
	assert.Equal(t, end, run.EndTime, "second Close must not move the end time")
}
