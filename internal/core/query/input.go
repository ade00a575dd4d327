package query

import "fmt"

// Input is a catalog query request: the selected columns, the predicate
// clauses, the page size, and the continuation state the executor updates
// between round trips.
//
// An Input is created per logical operation, mutated only by AddConds and
// by the executor's continuation update, and released exactly once with
// Close. The clause list is strictly append-only and bounded by the
// maximum conditional count shared with the catalog protocol.
type Input struct {
	Columns []Column
	Conds   []Cond

	// MaxRows is the number of rows fetched per round trip.
	MaxRows int

	// ContinueIndex is the continuation token: zero means first page, a
	// positive value is whatever the backend returned with the previous
	// chunk.
	ContinueIndex int

	maxConds int
	sealed   bool
	closed   bool
}

// NewInput allocates a query request selecting the given columns. The
// column slice is copied; clause storage is pre-sized to maxConds.
func NewInput(maxRows int, columns []Column, maxConds int) *Input {
	cols := make([]Column, len(columns))
	copy(cols, columns)

	return &Input{
		Columns:  cols,
		Conds:    make([]Cond, 0, maxConds),
		MaxRows:  maxRows,
		maxConds: maxConds,
	}
}

// AddConds appends predicate clauses in the given order. It fails with
// ErrCapacityExceeded if the resulting count would exceed the shared
// maximum, with ErrSealed once execution has begun, and with ErrClosed
// after release.
func (in *Input) AddConds(conds ...Cond) error {
	if in.closed {
		return ErrClosed
	}
	if in.sealed {
		return ErrSealed
	}
	if len(in.Conds)+len(conds) > in.maxConds {
		return fmt.Errorf("%d conditions with %d pending exceeds maximum %d: %w",
			len(in.Conds), len(conds), in.maxConds, ErrCapacityExceeded)
	}

	in.Conds = append(in.Conds, conds...)
	return nil
}

// seal marks the input as executing. No clause may be appended afterward.
func (in *Input) seal() {
	in.sealed = true
}

// Closed reports whether the input has been released.
func (in *Input) Closed() bool {
	return in.closed
}

// Close releases the input. It must be called exactly once: a second Close
// returns ErrClosed, as does any later AddConds or Execute.
func (in *Input) Close() error {
	if in.closed {
		return ErrClosed
	}

	in.closed = true
	in.Columns = nil
	in.Conds = nil
	return nil
}
