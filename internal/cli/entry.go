package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/catq/internal/wire"
)

var entryCmd = &cobra.Command{
	Use:   "entry",
	Short: "Manage entries in the local catalog",
	Long:  "Create data objects and collections in the local catalog store",
}

var entryAddCmd = &cobra.Command{
	Use:   "add [path]",
	Short: "Create a catalog entry, creating missing parent collections",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		kind, _ := cmd.Flags().GetString("kind")

		if err := wire.Catalog().AddEntry(ctx, args[0], kind); err != nil {
			return fmt.Errorf("failed to add entry: %w", err)
		}

		fmt.Printf("✓ Created %s %s\n", kind, args[0])
		return nil
	},
}

func init() {
	entryAddCmd.Flags().StringP("kind", "k", "leaf", "Entry kind: leaf or container")
	entryCmd.AddCommand(entryAddCmd)
}

// EntryCmd returns the entry command.
func EntryCmd() *cobra.Command {
	return entryCmd
}
