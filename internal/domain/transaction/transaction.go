package transaction

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/Nebiyou-x/Fraud-detection/internal/domain/data"
)

// runSeq is an atomic counter for ordering runs within a process
var runSeq uint64

// ChangeType represents the type of modification
type ChangeType string

const (
	ChangeTypeImpute ChangeType = "IMPUTE"
)

// Change represents a single cell rewritten during a run
type Change struct {
	Type     ChangeType
	Table    string
	Column   string
	RowIndex int
	OldValue data.Value
	NewValue data.Value
}

// Run is the context of one cleaning operation on a table
type Run struct {
	ID        string    // Unique run identifier, carried by lifecycle events
	Seq       uint64    // Process-local ordering
	Active    bool      // Whether the run is still open
	StartTime time.Time // When the run began
	EndTime   time.Time // Zero while active
	Changes   []Change  // Cells modified
}

// NewRun creates a new run with a unique ID
func NewRun() *Run {
	return &Run{
		ID:        uuid.New().String(),
		Seq:       atomic.AddUint64(&runSeq, 1),
		Active:    true,
		StartTime: time.Now(),
		Changes:   make([]Change, 0),
	}
}

// Record appends a change to the run
func (r *Run) Record(c Change) {
	r.Changes = append(r.Changes, c)
}

// Close marks the run as inactive
func (r *Run) Close() {
	if !r.Active {
		return
	}
	r.Active = false
	r.EndTime = time.Now()
}

// Duration returns how long the run took, or has taken so far
func (r *Run) Duration() time.Duration {
	if r.Active {
		return time.Since(r.StartTime)
	}
	return r.EndTime.Sub(r.StartTime)
}
