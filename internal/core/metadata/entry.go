package metadata

import (
	"fmt"

	"github.com/example/catq/internal/core/query"
)

// Entry is the structured form of a catalog entry: the collection it
// lives in, its data object name for leaves, and its attached metadata.
type Entry struct {
	Collection string          `json:"collection"`
	DataObject string          `json:"data_object,omitempty"`
	AVUs       query.RecordSet `json:"avus"`
}

// EntryForTarget builds the structured form of a classified target. A
// leaf splits into its parent collection and data object name; a
// container is the collection path alone. AVUs are left for the caller
// to populate.
func EntryForTarget(t Target) (*Entry, error) {
	switch t.Kind {
	case KindLeaf:
		parent, leaf := SplitPath(t.Path)
		return &Entry{Collection: parent, DataObject: leaf}, nil
	case KindContainer:
		return &Entry{Collection: t.Path}, nil
	default:
		return nil, fmt.Errorf("failed to convert '%s' to structured form: %w", t.Path, ErrUnclassifiedTarget)
	}
}
