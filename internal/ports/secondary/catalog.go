// Package secondary defines the secondary ports (driven adapters) for the
// application. These are the interfaces through which the application
// drives external systems.
package secondary

import (
	"context"

	"github.com/example/catq/internal/core/metadata"
	"github.com/example/catq/internal/core/query"
)

// Catalog defines the secondary port for the remote metadata catalog.
//
// A Catalog is not safe for concurrent use: it is owned by exactly one
// logical operation at a time, and concurrent operations require
// independent instances. There is no retry at this boundary.
type Catalog interface {
	// GenQuery issues one query round trip, returning the chunk of rows
	// and the continuation token for the next page. A query matching no
	// rows returns query.ErrNoRows; other failures return a
	// *query.RemoteError carrying the status and diagnostic stack.
	GenQuery(ctx context.Context, in *query.Input) (*query.Chunk, int, error)

	// ModMetadata issues a single metadata mutation call.
	ModMetadata(ctx context.Context, args metadata.ModArgs) error

	// Classify resolves a target string to its canonical path and kind.
	Classify(ctx context.Context, target string) (metadata.Target, error)

	// Ping reports whether the backend is reachable.
	Ping(ctx context.Context) error
}
