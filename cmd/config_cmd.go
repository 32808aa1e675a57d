// Package cmd implements the fsreport CLI commands.
package cmd

import (
	"fmt"

	"github.com/mohamedfarazalam/city-of-toronto-2024fs/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Data directory: %s\n", cfg.General.DataDir)
	fmt.Println()

	fmt.Println("  [Forecast]")
	fmt.Printf("    Horizon:    %d years\n", cfg.Forecast.HorizonYears)
	fmt.Printf("    Confidence: %.0f%%\n", cfg.Forecast.Confidence*100)
	fmt.Println()

	fmt.Println("  [Charts]")
	fmt.Printf("    Output directory: %s\n", cfg.Charts.OutputDir)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  Run `fsreport setup` to reconfigure.")
	return nil
}
