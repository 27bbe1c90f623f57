package preprocessing

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/Nebiyou-x/Fraud-detection/internal/domain/data"
	domainerrors "github.com/Nebiyou-x/Fraud-detection/internal/domain/errors"
	"github.com/Nebiyou-x/Fraud-detection/internal/domain/schema"
	"github.com/Nebiyou-x/Fraud-detection/internal/domain/transaction"
	"github.com/Nebiyou-x/Fraud-detection/internal/stats"
)

// FillResult describes one median fill
type FillResult struct {
	RunID   string
	Table   string
	Column  string
	Median  float64
	Filled  int                  // number of cells that were missing and now hold Median
	Changes []transaction.Change // one entry per filled cell, in row order
}

// Imputer fills missing values and reports each phase to its observers
type Imputer struct {
	logger    *slog.Logger
	observers []Observer
}

// New creates a new Imputer. A nil logger falls back to slog.Default().
func New(logger *slog.Logger) *Imputer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Imputer{
		logger:    logger,
		observers: make([]Observer, 0),
	}
}

// AddObserver registers an observer to receive lifecycle events
func (im *Imputer) AddObserver(observer Observer) {
	im.observers = append(im.observers, observer)
}

// RemoveObserver unregisters an observer
func (im *Imputer) RemoveObserver(observer Observer) {
	for i, o := range im.observers {
		if o == observer {
			im.observers = append(im.observers[:i], im.observers[i+1:]...)
			return
		}
	}
}

// notify sends an event to all registered observers
func (im *Imputer) notify(event Event) {
	event.Timestamp = time.Now()
	for _, observer := range im.observers {
		observer.OnEvent(event)
	}
}

// FillMedian replaces every missing cell of column with the median of the
// column's current non-missing values, in place. Other columns are untouched.
//
// The median is recomputed from the column's state on every call, so a
// second call on a filled column finds nothing to fill and changes nothing.
// An unknown column, a column with no values, or a column whose median is
// not finite leaves the table unchanged and returns an error of kind
// errors.ErrInvalidInput.
func (im *Imputer) FillMedian(t *schema.Table, column string) (*FillResult, error) {
	if t == nil {
		return nil, fmt.Errorf("fill median: nil table: %w", domainerrors.ErrInvalidInput)
	}

	run := transaction.NewRun()
	defer run.Close()

	im.notify(Event{Type: EventFillStart, RunID: run.ID, Table: t.Name, Column: column})

	result := &FillResult{
		RunID:  run.ID,
		Table:  t.Name,
		Column: column,
	}

	err := t.UpdateColumn(column, func(col *schema.Column) error {
		median, err := stats.Median(col.NonNull())
		if errors.Is(err, stats.ErrEmptyInput) {
			return &domainerrors.EmptyColumnError{TableName: t.Name, ColumnName: column}
		}
		if err != nil {
			return err
		}
		if math.IsNaN(median) || math.IsInf(median, 0) {
			return &domainerrors.NonFiniteMedianError{TableName: t.Name, ColumnName: column, Median: median}
		}
		result.Median = median

		fill := data.Float(median)
		for i, v := range col.Values {
			if !v.IsNull() {
				continue
			}
			col.Values[i] = fill
			run.Record(transaction.Change{
				Type:     transaction.ChangeTypeImpute,
				Table:    t.Name,
				Column:   column,
				RowIndex: i,
				OldValue: v,
				NewValue: fill,
			})
		}
		return nil
	})
	if err != nil {
		im.notify(Event{Type: EventFillError, RunID: run.ID, Table: t.Name, Column: column, Data: err.Error()})
		return nil, fmt.Errorf("fill median %s.%s: %w", t.Name, column, err)
	}

	result.Changes = run.Changes
	result.Filled = len(run.Changes)

	// observers run outside the table lock so they may inspect the table
	im.notify(Event{Type: EventFillEnd, RunID: run.ID, Table: t.Name, Column: column, Data: map[string]interface{}{
		"median": result.Median,
		"filled": result.Filled,
	}})
	im.logger.Debug("median fill applied",
		slog.String("table", t.Name),
		slog.String("column", column),
		slog.Float64("median", result.Median),
		slog.Int("filled", result.Filled),
		slog.Duration("elapsed", run.Duration()),
	)

	return result, nil
}

// FillAndVerify fills column with its median and then checks that the
// whole table has no missing values left
func (im *Imputer) FillAndVerify(t *schema.Table, column string) (*FillResult, error) {
	result, err := im.FillMedian(t, column)
	if err != nil {
		return nil, err
	}

	err = Verify(t)
	im.notify(Event{Type: EventVerifyEnd, RunID: result.RunID, Table: t.Name, Data: map[string]interface{}{
		"passed":      err == nil,
		"null_counts": t.NullCounts(),
	}})
	return result, err
}
