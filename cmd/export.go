package cmd

import (
	"fmt"

	"github.com/mohamedfarazalam/city-of-toronto-2024fs/internal/report"
	"github.com/mohamedfarazalam/city-of-toronto-2024fs/internal/store"

	"github.com/spf13/cobra"
)

var flagExportPath string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export history, trends, and projections to SQLite",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagExportPath, "out", "o", "fsreport.db", "SQLite output path")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	result, history, err := loadHistory()
	if err != nil {
		return err
	}
	warnMissing(result)

	trends := report.BuildTrends(history)
	projections, err := report.BuildProjections(history, flagHorizon, flagConfidence)
	if err != nil {
		return err
	}
	segments := report.ServiceSegments(result.Dataset)

	db, err := store.Open(flagExportPath)
	if err != nil {
		return fmt.Errorf("opening %s: %w", flagExportPath, err)
	}
	defer db.Close()

	if err := db.WriteMetrics(history); err != nil {
		return fmt.Errorf("writing metrics: %w", err)
	}
	if err := db.WriteTrends(trends); err != nil {
		return fmt.Errorf("writing trends: %w", err)
	}
	if err := db.WriteForecasts(projections); err != nil {
		return fmt.Errorf("writing forecasts: %w", err)
	}
	if err := db.WriteSegments(segments); err != nil {
		return fmt.Errorf("writing segments: %w", err)
	}

	metricRows, err := db.MetricCount()
	if err != nil {
		return err
	}
	forecastRows, err := db.ForecastCount()
	if err != nil {
		return err
	}

	fmt.Printf("\n  Exported %d metric observations and %d forecast rows to %s\n",
		metricRows, forecastRows, flagExportPath)

	return nil
}
