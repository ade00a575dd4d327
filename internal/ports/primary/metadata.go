// Package primary defines the primary ports (driving interfaces) for the
// application. These are the interfaces through which the CLI and other
// entry points drive the application services.
package primary

import (
	"context"

	"github.com/example/catq/internal/core/metadata"
	"github.com/example/catq/internal/core/query"
)

// MetadataService defines the primary port for catalog metadata
// operations.
type MetadataService interface {
	// ListMetadata lists the attribute/value/units triples attached to a
	// target entry. An empty attrFilter lists everything; a non-empty
	// filter restricts the listing to that attribute name.
	ListMetadata(ctx context.Context, target, attrFilter string) (query.RecordSet, error)

	// SearchMetadata finds entries carrying the given attribute and value
	// in both the collection and data object attribute spaces, collection
	// matches first.
	SearchMetadata(ctx context.Context, attrName, attrValue string) (query.RecordSet, error)

	// ModifyMetadata applies a mutation operation to the target entry's
	// metadata.
	ModifyMetadata(ctx context.Context, target string, op metadata.Op, attrName, attrValue, attrUnits string) error

	// GetEntry returns the structured form of a target entry with its
	// metadata populated.
	GetEntry(ctx context.Context, target string) (*metadata.Entry, error)

	// Ping reports whether the catalog backend is reachable.
	Ping(ctx context.Context) error
}
