package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/catq/internal/wire"
)

var showCmd = &cobra.Command{
	Use:   "show [path]",
	Short: "Show a catalog entry in structured form",
	Long: `Print the structured form of a catalog entry: its collection, its
data object name for leaves, and all attached metadata under "avus".

Examples:
  catq show /archive/run1/sample.bam`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		if err := wire.MetadataAdapter().Show(ctx, args[0]); err != nil {
			return fmt.Errorf("failed to show entry: %w", err)
		}
		return nil
	},
}

// ShowCmd returns the show command.
func ShowCmd() *cobra.Command {
	return showCmd
}
