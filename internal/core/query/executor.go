package query

import (
	"context"
	"errors"
	"fmt"
)

// Querier is the catalog round-trip capability the executor drives. A call
// returns one chunk of rows and the continuation token for the next page;
// a query matching nothing returns ErrNoRows.
type Querier interface {
	GenQuery(ctx context.Context, in *Input) (*Chunk, int, error)
}

// Sink receives diagnostic output from query execution.
type Sink interface {
	Debugf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopSink discards all diagnostics.
type NopSink struct{}

func (NopSink) Debugf(string, ...any) {}
func (NopSink) Errorf(string, ...any) {}

// Executor drives a query input through repeated catalog round trips until
// the backend reports exhaustion, aggregating the per-chunk fragments.
//
// Execution is sequential and blocking: chunk N's continuation token is
// applied to the input before chunk N+1 is issued, and fragments are
// appended in chunk-arrival order. There is no retry at this layer.
type Executor struct {
	sink Sink
}

// NewExecutor creates an executor reporting diagnostics to the given sink.
func NewExecutor(sink Sink) *Executor {
	if sink == nil {
		sink = NopSink{}
	}
	return &Executor{sink: sink}
}

// Continue reports whether another round trip is required: execution keeps
// going while this is the first iteration or the previous chunk's
// continuation token was strictly positive.
func Continue(first bool, token int) bool {
	return first || token > 0
}

// Execute runs the input to completion and returns the concatenated record
// set. A first-page "no rows" response yields an empty set, not an error.
// Any other backend failure discards the accumulated records and surfaces
// the remote status, logging the remote diagnostic stack when present.
//
// The first Execute call seals the input: no clause may be appended
// afterward.
func (e *Executor) Execute(ctx context.Context, q Querier, in *Input, labels []string) (RecordSet, error) {
	if in.Closed() {
		return nil, ErrClosed
	}
	in.seal()

	results := RecordSet{}
	first := true
	chunkNum := 0

	for Continue(first, in.ContinueIndex) {
		first = false

		chunk, token, err := q.GenQuery(ctx, in)
		if errors.Is(err, ErrNoRows) {
			e.sink.Debugf("query returned no results")
			break
		}
		if err != nil {
			var remote *RemoteError
			if errors.As(err, &remote) {
				e.sink.Errorf("failed to get query result in chunk %d: status %d %s",
					chunkNum, remote.Status, remote.Name)
				for _, entry := range remote.Stack {
					e.sink.Errorf("level %d: %s", entry.Index, entry.Message)
				}
			}
			return nil, fmt.Errorf("chunk %d: %w", chunkNum, err)
		}

		in.ContinueIndex = token

		fragment, err := DecodeChunk(chunk, labels)
		if err != nil {
			return nil, fmt.Errorf("chunk %d: %w", chunkNum, err)
		}

		e.sink.Debugf("fetched chunk %d of %d results", chunkNum, len(fragment))
		chunkNum++

		results = append(results, fragment...)
	}

	return results, nil
}
