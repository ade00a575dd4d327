package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/example/catq/internal/core/metadata"
	"github.com/example/catq/internal/core/query"
	"github.com/example/catq/internal/ports/primary"
	"github.com/example/catq/internal/ports/secondary"
)

// MetadataServiceImpl implements the MetadataService interface.
type MetadataServiceImpl struct {
	catalog  secondary.Catalog
	sink     secondary.DiagnosticSink
	selector *metadata.Selector
	executor *query.Executor
}

// NewMetadataService creates a new MetadataService with injected
// dependencies. pageSize is the number of rows fetched per round trip;
// maxConds is the hard cap on predicate clauses per request.
func NewMetadataService(catalog secondary.Catalog, sink secondary.DiagnosticSink, pageSize, maxConds int) *MetadataServiceImpl {
	return &MetadataServiceImpl{
		catalog:  catalog,
		sink:     sink,
		selector: metadata.NewSelector(pageSize, maxConds, sink),
		executor: query.NewExecutor(sink),
	}
}

// ListMetadata lists the metadata attached to a target entry.
func (s *MetadataServiceImpl) ListMetadata(ctx context.Context, target, attrFilter string) (query.RecordSet, error) {
	t, err := s.classify(ctx, target)
	if err != nil {
		return nil, err
	}
	return s.listByTarget(ctx, t, attrFilter)
}

// listByTarget runs a listing query for an already classified target.
func (s *MetadataServiceImpl) listByTarget(ctx context.Context, t metadata.Target, attrFilter string) (query.RecordSet, error) {
	in, err := s.selector.List(t, attrFilter)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	results, err := s.executor.Execute(ctx, s.catalog, in, metadata.ListLabels)
	if err != nil {
		return nil, fmt.Errorf("failed to list metadata on '%s': %w", t.Path, err)
	}
	return results, nil
}

// SearchMetadata finds entries carrying the given attribute and value.
// Both attribute spaces are queried; collection matches precede data
// object matches in the combined result.
func (s *MetadataServiceImpl) SearchMetadata(ctx context.Context, attrName, attrValue string) (query.RecordSet, error) {
	results := query.RecordSet{}

	collIn, err := s.selector.ContainerSearch(attrName, attrValue)
	if err != nil {
		return nil, err
	}
	defer collIn.Close()

	collections, err := s.executor.Execute(ctx, s.catalog, collIn, metadata.SearchLabels)
	if err != nil {
		return nil, fmt.Errorf("failed to search collection metadata: %w", err)
	}
	results = append(results, collections...)

	objIn, err := s.selector.LeafSearch(attrName, attrValue)
	if err != nil {
		return nil, err
	}
	defer objIn.Close()

	objects, err := s.executor.Execute(ctx, s.catalog, objIn, metadata.SearchLabels)
	if err != nil {
		return nil, fmt.Errorf("failed to search data object metadata: %w", err)
	}
	results = append(results, objects...)

	return results, nil
}

// ModifyMetadata applies a mutation operation to the target's metadata.
func (s *MetadataServiceImpl) ModifyMetadata(ctx context.Context, target string, op metadata.Op, attrName, attrValue, attrUnits string) error {
	t, err := s.classify(ctx, target)
	if err != nil {
		return err
	}

	args, err := metadata.MapModArgs(op, t, attrName, attrValue, attrUnits)
	if err != nil {
		return err
	}

	if err := s.catalog.ModMetadata(ctx, args); err != nil {
		var remote *query.RemoteError
		if errors.As(err, &remote) {
			s.sink.Errorf("failed to modify metadata '%s' -> '%s' on '%s': status %d %s",
				attrName, attrValue, t.Path, remote.Status, remote.Name)
			for _, entry := range remote.Stack {
				s.sink.Errorf("level %d: %s", entry.Index, entry.Message)
			}
		}
		return fmt.Errorf("failed to modify metadata on '%s': %w", t.Path, err)
	}
	return nil
}

// GetEntry returns the structured form of a target with its metadata
// populated by an unfiltered listing.
func (s *MetadataServiceImpl) GetEntry(ctx context.Context, target string) (*metadata.Entry, error) {
	t, err := s.classify(ctx, target)
	if err != nil {
		return nil, err
	}

	entry, err := metadata.EntryForTarget(t)
	if err != nil {
		return nil, err
	}

	avus, err := s.listByTarget(ctx, t, "")
	if err != nil {
		return nil, err
	}
	if avus == nil {
		avus = query.RecordSet{}
	}
	entry.AVUs = avus

	return entry, nil
}

// Ping reports whether the catalog backend is reachable.
func (s *MetadataServiceImpl) Ping(ctx context.Context) error {
	return s.catalog.Ping(ctx)
}

// classify resolves and validates a target, refusing anything that is
// neither a leaf nor a container before any query is built.
func (s *MetadataServiceImpl) classify(ctx context.Context, target string) (metadata.Target, error) {
	t, err := s.catalog.Classify(ctx, target)
	if err != nil {
		return metadata.Target{}, fmt.Errorf("failed to resolve path '%s': %w", target, err)
	}

	switch t.Kind {
	case metadata.KindLeaf, metadata.KindContainer:
		return t, nil
	case metadata.KindNotFound:
		return metadata.Target{}, fmt.Errorf("path '%s' does not exist (or lacks access permission): %w",
			t.Path, metadata.ErrUnclassifiedTarget)
	default:
		return metadata.Target{}, fmt.Errorf("path '%s': %w", t.Path, metadata.ErrUnclassifiedTarget)
	}
}

// Ensure MetadataServiceImpl implements the interface.
var _ primary.MetadataService = (*MetadataServiceImpl)(nil)
