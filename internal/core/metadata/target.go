// Package metadata contains the pure business logic for catalog metadata
// operations: selecting columns and predicates for a classified target,
// and mapping mutation operations onto the backend's positional argument
// list. This is part of the Functional Core - no I/O, only pure functions.
package metadata

import (
	"errors"
	"path"
)

// Kind classifies a catalog target.
type Kind int

const (
	// KindLeaf is a terminal, file-like catalog entry (data object).
	KindLeaf Kind = iota
	// KindContainer is a directory-like entry that may hold children.
	KindContainer
	// KindNotFound means the target does not exist or is not accessible.
	KindNotFound
	// KindOther is an entry that is neither leaf nor container.
	KindOther
)

// String returns the kind name for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindLeaf:
		return "leaf"
	case KindContainer:
		return "container"
	case KindNotFound:
		return "not found"
	default:
		return "other"
	}
}

// Target is a classified catalog target: its kind and its canonicalized
// path as resolved by the classification collaborator.
type Target struct {
	Kind Kind
	Path string
}

// ErrUnclassifiedTarget is returned when an operation is refused because
// the target is neither a leaf nor a container. No query is built in that
// case.
var ErrUnclassifiedTarget = errors.New("target is neither a data object nor a collection")

// SplitPath splits a leaf path at its final separator into the parent
// container and the leaf name. A path with no separator yields parent "."
// and the whole input as the leaf name, so recomposing parent/leaf always
// reconstructs the original.
func SplitPath(p string) (parent, leaf string) {
	return path.Dir(p), path.Base(p)
}
