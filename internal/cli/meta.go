package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/catq/internal/wire"
)

var metaCmd = &cobra.Command{
	Use:   "meta",
	Short: "Mutate the metadata attached to a catalog entry",
	Long:  "Add or remove attribute/value/units triples on data objects and collections",
}

var metaAddCmd = &cobra.Command{
	Use:   "add [path] [attribute] [value] [units]",
	Short: "Attach an attribute/value/units triple to an entry",
	Args:  cobra.RangeArgs(3, 4),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMeta(args, "add")
	},
}

var metaRemoveCmd = &cobra.Command{
	Use:   "rm [path] [attribute] [value] [units]",
	Short: "Detach an attribute/value/units triple from an entry",
	Args:  cobra.RangeArgs(3, 4),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMeta(args, "rm")
	},
}

func runMeta(args []string, opName string) error {
	ctx := context.Background()
	units := ""
	if len(args) == 4 {
		units = args[3]
	}

	if err := wire.MetadataAdapter().Modify(ctx, args[0], opName, args[1], args[2], units); err != nil {
		return fmt.Errorf("failed to modify metadata: %w", err)
	}
	return nil
}

func init() {
	metaCmd.AddCommand(metaAddCmd)
	metaCmd.AddCommand(metaRemoveCmd)
}

// MetaCmd returns the meta command.
func MetaCmd() *cobra.Command {
	return metaCmd
}
