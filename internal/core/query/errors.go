package query

import (
	"errors"
	"fmt"
)

var (
	// ErrNoRows is returned by a Querier when a query matches no rows.
	// It is not a failure: the executor turns it into an empty result set.
	ErrNoRows = errors.New("no matching rows")

	// ErrCapacityExceeded is returned when appending conditions would
	// exceed the maximum conditional count shared with the catalog
	// protocol. Hitting it indicates a caller bug, not a runtime state.
	ErrCapacityExceeded = errors.New("too many query conditions")

	// ErrClauseTooLong is returned when a rendered condition clause would
	// exceed the protocol's clause-length limit.
	ErrClauseTooLong = errors.New("condition clause exceeds protocol limit")

	// ErrSealed is returned when conditions are appended to an input that
	// has already begun executing.
	ErrSealed = errors.New("query input is already executing")

	// ErrClosed is returned on any use of an input after Close, including
	// a second Close.
	ErrClosed = errors.New("query input already released")
)

// StackEntry is one line of a remote diagnostic stack, in the order the
// backend reported it.
type StackEntry struct {
	Index   int
	Message string
}

// RemoteError describes a failed catalog round trip. It carries the remote
// status code, the remote error name when the backend provides one, and
// the diagnostic stack in original order.
type RemoteError struct {
	Op     string // "query" or "mutate"
	Status int
	Name   string
	Stack  []StackEntry
}

func (e *RemoteError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("remote %s failed: status %d %s", e.Op, e.Status, e.Name)
	}
	return fmt.Sprintf("remote %s failed: status %d", e.Op, e.Status)
}

// DecodeError describes a malformed result chunk. Decoding aborts at the
// first bad cell; no partial fragment is returned.
type DecodeError struct {
	Row    int
	Col    int
	Reason string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode chunk at row %d column %d: %s", e.Row, e.Col, e.Reason)
}
