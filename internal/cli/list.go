package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/catq/internal/wire"
)

var listCmd = &cobra.Command{
	Use:   "list [path]",
	Short: "List the metadata attached to a catalog entry",
	Long: `List the attribute/value/units triples attached to a data object or
collection, as a JSON array.

Examples:
  catq list /archive/run1/sample.bam
  catq list /archive/run1 --attr species`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		attrFilter, _ := cmd.Flags().GetString("attr")

		if err := wire.MetadataAdapter().List(ctx, args[0], attrFilter); err != nil {
			return fmt.Errorf("failed to list metadata: %w", err)
		}
		return nil
	},
}

func init() {
	listCmd.Flags().StringP("attr", "a", "", "Restrict the listing to this attribute name")
}

// ListCmd returns the list command.
func ListCmd() *cobra.Command {
	return listCmd
}
