package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/catq/internal/config"
	"github.com/example/catq/internal/db"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the catq configuration and local catalog store",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}
		if err := config.SaveConfig(cfg); err != nil {
			return err
		}

		database, err := db.Open(cfg.DBPath)
		if err != nil {
			return err
		}
		defer database.Close()

		dir, err := config.ConfigDir()
		if err != nil {
			return err
		}

		fmt.Printf("✓ Initialized catq in %s\n", dir)
		fmt.Printf("  Page size: %d rows per round trip\n", cfg.PageSize)
		fmt.Printf("  Max conditions: %d clauses per request\n", cfg.MaxConditions)
		return nil
	},
}

// InitCmd returns the init command.
func InitCmd() *cobra.Command {
	return initCmd
}
