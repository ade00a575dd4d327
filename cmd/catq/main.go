package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/catq/internal/cli"
	"github.com/example/catq/internal/version"
	"github.com/example/catq/internal/wire"
)

func main() {
	var (
		verbose  bool
		pageSize int
	)

	rootCmd := &cobra.Command{
		Use:     "catq",
		Short:   "catq - query and mutate catalog metadata",
		Version: version.String(),
		Long: `catq is a CLI tool for listing, searching, and mutating the
attribute/value/units metadata attached to data objects and collections
in a hierarchical catalog.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			wire.SetVerbose(verbose)
			wire.SetPageSize(pageSize)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print debug diagnostics to stderr")
	rootCmd.PersistentFlags().IntVar(&pageSize, "page-size", 0, "Rows fetched per query round trip (overrides config)")

	// Query commands
	rootCmd.AddCommand(cli.ListCmd())
	rootCmd.AddCommand(cli.SearchCmd())
	rootCmd.AddCommand(cli.ShowCmd())

	// Mutation commands
	rootCmd.AddCommand(cli.MetaCmd())
	rootCmd.AddCommand(cli.EntryCmd())

	// Environment commands
	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.DoctorCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
