package cmd

import (
	"fmt"
	"os"

	"github.com/mohamedfarazalam/city-of-toronto-2024fs/internal/config"
	"github.com/mohamedfarazalam/city-of-toronto-2024fs/internal/model"
	"github.com/mohamedfarazalam/city-of-toronto-2024fs/internal/report"
	"github.com/mohamedfarazalam/city-of-toronto-2024fs/internal/statement"

	"github.com/spf13/cobra"
)

var (
	flagDataDir    string
	flagHorizon    int
	flagConfidence float64
	flagChartsDir  string
	flagQuiet      bool
)

var rootCmd = &cobra.Command{
	Use:   "fsreport",
	Short: "City of Toronto 2024 financial statement analyzer",
	Long:  "Analyze the transcribed 2024 consolidated financial statements: summaries, trends, and projections.",
	RunE:  runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cfg, _ := config.Load()

	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", cfg.General.DataDir, "Directory holding the statement CSV tables")
	rootCmd.PersistentFlags().IntVar(&flagHorizon, "horizon", cfg.Forecast.HorizonYears, "Projection horizon in years")
	rootCmd.PersistentFlags().Float64Var(&flagConfidence, "confidence", cfg.Forecast.Confidence, "Prediction interval confidence, in (0, 1)")
	rootCmd.PersistentFlags().StringVar(&flagChartsDir, "charts-dir", cfg.Charts.OutputDir, "Output directory for rendered charts")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
}

// loadData is the shared loading path used by all commands.
func loadData() (*statement.LoadResult, error) {
	progressFn := func(table string, current, total int) {
		if flagQuiet {
			return
		}
		fmt.Fprintf(os.Stderr, "\r  Reading tables [%d/%d] %-28s", current, total, table)
	}

	result, err := statement.Load(flagDataDir, progressFn)
	if err != nil {
		return nil, err
	}

	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "\r  Read %d statement tables from %s%-12s\n",
			result.TablesRead, flagDataDir, "")
	}

	return result, nil
}

// loadHistory loads the dataset and extracts the per-metric year series.
func loadHistory() (*statement.LoadResult, map[model.Metric][]model.YearValue, error) {
	result, err := loadData()
	if err != nil {
		return nil, nil, err
	}
	return result, report.MetricHistory(result.Dataset), nil
}

// warnMissing lists tables absent from the data directory.
func warnMissing(result *statement.LoadResult) {
	if flagQuiet {
		return
	}
	for _, name := range result.Missing {
		fmt.Fprintf(os.Stderr, "  Missing table: %s\n", name)
	}
	for _, pe := range result.ParseErrors {
		fmt.Fprintf(os.Stderr, "  Parse error: %s\n", pe)
	}
}
