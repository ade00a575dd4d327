package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/catq/internal/wire"
)

var searchCmd = &cobra.Command{
	Use:   "search [attribute] [value]",
	Short: "Find catalog entries by attribute and value",
	Long: `Search both the collection and data object attribute spaces for
entries carrying the given attribute and value, printing matches as a
JSON array with collection matches first.

Examples:
  catq search species human`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		if err := wire.MetadataAdapter().Search(ctx, args[0], args[1]); err != nil {
			return fmt.Errorf("failed to search metadata: %w", err)
		}
		return nil
	},
}

// SearchCmd returns the search command.
func SearchCmd() *cobra.Command {
	return searchCmd
}
