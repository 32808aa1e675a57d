package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/mohamedfarazalam/city-of-toronto-2024fs/internal/config"
	"github.com/mohamedfarazalam/city-of-toronto-2024fs/internal/statement"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	// Load existing config or defaults
	cfg, _ := config.Load()

	fmt.Println()
	fmt.Println("  Welcome to fsreport!")
	fmt.Println()
	if scan, err := statement.ScanDir(flagDataDir); err == nil {
		fmt.Printf("  Found %d of %d statement tables in %s\n\n",
			len(scan.Found), len(statement.TableFiles), flagDataDir)
	}

	// 1. Data directory
	fmt.Println("  1. Data directory")
	fmt.Println("     Where the transcribed statement CSVs live.")
	fmt.Printf("     Current: %s\n", cfg.General.DataDir)
	fmt.Print("     > ")
	dataDir, _ := reader.ReadString('\n')
	dataDir = strings.TrimSpace(dataDir)
	if dataDir != "" {
		cfg.General.DataDir = dataDir
	}
	fmt.Println()

	// 2. Projection horizon
	fmt.Println("  2. Projection horizon")
	fmt.Println("     (1) 3 years [default]")
	fmt.Println("     (2) 5 years")
	fmt.Println("     (3) 10 years")
	fmt.Print("     > ")
	choice, _ := reader.ReadString('\n')
	choice = strings.TrimSpace(choice)
	switch choice {
	case "2":
		cfg.Forecast.HorizonYears = 5
	case "3":
		cfg.Forecast.HorizonYears = 10
	default:
		cfg.Forecast.HorizonYears = 3
	}
	fmt.Println()

	// 3. Prediction interval confidence
	fmt.Println("  3. Prediction interval confidence")
	fmt.Println("     (1) 90%")
	fmt.Println("     (2) 95% [default]")
	fmt.Println("     (3) 99%")
	fmt.Print("     > ")
	confChoice, _ := reader.ReadString('\n')
	confChoice = strings.TrimSpace(confChoice)
	switch confChoice {
	case "1":
		cfg.Forecast.Confidence = 0.90
	case "3":
		cfg.Forecast.Confidence = 0.99
	default:
		cfg.Forecast.Confidence = 0.95
	}
	fmt.Println()

	// 4. Theme
	fmt.Println("  4. Color theme")
	fmt.Println("     (1) Statement Navy [default]")
	fmt.Println("     (2) Slate")
	fmt.Println("     (3) Terminal (ANSI 16)")
	fmt.Print("     > ")
	themeChoice, _ := reader.ReadString('\n')
	themeChoice = strings.TrimSpace(themeChoice)
	switch themeChoice {
	case "2":
		cfg.Appearance.Theme = "slate"
	case "3":
		cfg.Appearance.Theme = "terminal"
	default:
		cfg.Appearance.Theme = "statement-navy"
	}

	// Save
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `fsreport setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}
