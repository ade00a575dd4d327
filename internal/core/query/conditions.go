package query

import (
	"fmt"
	"strings"
)

// maxClauseLen is the catalog protocol's limit on a single rendered
// condition clause, including the operator, quoting and terminator.
const maxClauseLen = 2048

// Cond is an immutable predicate clause: a catalog column, a comparison
// operator, and the value it is compared against. Expr holds the rendered
// clause text sent to the backend. All strings are owned by the Cond
// itself; NewCond copies its arguments so the clause's lifetime is
// independent of the caller's after construction.
type Cond struct {
	Column Column
	Op     string
	Value  string
	Expr   string
}

// NewCond builds a predicate clause, rendering the operator and value into
// the wire form `<op> '<value>'`. Returns ErrClauseTooLong if the rendered
// clause would exceed the protocol limit.
func NewCond(column Column, op, value string) (Cond, error) {
	// Rendered size: value + op + space + two quotes + terminator.
	if len(value)+len(op)+4 > maxClauseLen {
		return Cond{}, fmt.Errorf("condition on column %d: %w", column, ErrClauseTooLong)
	}

	return Cond{
		Column: column,
		Op:     strings.Clone(op),
		Value:  strings.Clone(value),
		Expr:   fmt.Sprintf("%s '%s'", op, value),
	}, nil
}
