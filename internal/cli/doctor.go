package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/catq/internal/config"
	"github.com/example/catq/internal/wire"
)

// CheckResult represents the outcome of a single check.
type CheckResult struct {
	Name    string
	Status  string // "✓" or "✗"
	Details string // Only shown if Status != "✓"
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Validate the catq environment and catalog availability",
	RunE: func(cmd *cobra.Command, args []string) error {
		results := []CheckResult{
			checkConfig(),
			checkCatalog(),
		}

		hasErrors := false
		for _, r := range results {
			mark := color.New(color.FgGreen).Sprint(r.Status)
			if r.Status != "✓" {
				mark = color.New(color.FgRed).Sprint(r.Status)
				hasErrors = true
			}
			fmt.Printf("%s %s\n", mark, r.Name)
			if r.Details != "" && r.Status != "✓" {
				fmt.Printf("  %s\n", r.Details)
			}
		}

		if hasErrors {
			os.Exit(1)
		}
		return nil
	},
}

func checkConfig() CheckResult {
	cfg, err := config.LoadConfig()
	if err != nil {
		return CheckResult{Name: "Configuration", Status: "✗", Details: err.Error()}
	}
	return CheckResult{
		Name: fmt.Sprintf("Configuration (page size %d, max conditions %d)", cfg.PageSize, cfg.MaxConditions),
		Status: "✓",
	}
}

func checkCatalog() CheckResult {
	if err := wire.MetadataService().Ping(context.Background()); err != nil {
		return CheckResult{Name: "Catalog backend", Status: "✗", Details: err.Error()}
	}
	return CheckResult{Name: "Catalog backend", Status: "✓"}
}

// DoctorCmd returns the doctor command for environment validation.
func DoctorCmd() *cobra.Command {
	return doctorCmd
}
