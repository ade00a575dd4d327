// Package cli provides thin CLI adapters that translate between CLI
// concerns and application services. Adapters handle output formatting
// but delegate all catalog logic to services.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/example/catq/internal/core/metadata"
	"github.com/example/catq/internal/ports/primary"
)

// MetadataAdapter is a thin adapter that translates CLI operations to
// MetadataService calls and renders results as JSON.
type MetadataAdapter struct {
	service primary.MetadataService
	out     io.Writer
}

// NewMetadataAdapter creates a new MetadataAdapter with the given service.
func NewMetadataAdapter(service primary.MetadataService, out io.Writer) *MetadataAdapter {
	return &MetadataAdapter{
		service: service,
		out:     out,
	}
}

// List prints the metadata attached to a target as a JSON array.
func (a *MetadataAdapter) List(ctx context.Context, target, attrFilter string) error {
	results, err := a.service.ListMetadata(ctx, target, attrFilter)
	if err != nil {
		return err
	}
	return printJSON(a.out, results)
}

// Search prints the entries matching an attribute and value as a JSON
// array.
func (a *MetadataAdapter) Search(ctx context.Context, attrName, attrValue string) error {
	results, err := a.service.SearchMetadata(ctx, attrName, attrValue)
	if err != nil {
		return err
	}
	return printJSON(a.out, results)
}

// Modify applies a named mutation operation to a target's metadata.
func (a *MetadataAdapter) Modify(ctx context.Context, target, opName, attrName, attrValue, attrUnits string) error {
	op, err := ParseOp(opName)
	if err != nil {
		return err
	}

	if err := a.service.ModifyMetadata(ctx, target, op, attrName, attrValue, attrUnits); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Applied %s of '%s' -> '%s' on %s\n", opName, attrName, attrValue, target)
	return nil
}

// Show prints the structured form of a target entry with its metadata.
func (a *MetadataAdapter) Show(ctx context.Context, target string) error {
	entry, err := a.service.GetEntry(ctx, target)
	if err != nil {
		return err
	}
	return printJSON(a.out, entry)
}

// ParseOp maps a CLI operation name to a metadata operation.
func ParseOp(name string) (metadata.Op, error) {
	switch name {
	case "add":
		return metadata.OpAdd, nil
	case "rm", "remove":
		return metadata.OpRemove, nil
	default:
		return 0, fmt.Errorf("operation '%s': %w", name, metadata.ErrUnknownOp)
	}
}

func printJSON(out io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", " ")
	if err != nil {
		return fmt.Errorf("failed to encode result as JSON: %w", err)
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}
