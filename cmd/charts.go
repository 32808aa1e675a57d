package cmd

import (
	"fmt"

	"github.com/mohamedfarazalam/city-of-toronto-2024fs/internal/charts"
	"github.com/mohamedfarazalam/city-of-toronto-2024fs/internal/model"
	"github.com/mohamedfarazalam/city-of-toronto-2024fs/internal/report"

	"github.com/spf13/cobra"
)

var chartsCmd = &cobra.Command{
	Use:   "charts",
	Short: "Render report charts as PNG files",
	RunE:  runCharts,
}

func init() {
	rootCmd.AddCommand(chartsCmd)
}

func runCharts(_ *cobra.Command, _ []string) error {
	result, history, err := loadHistory()
	if err != nil {
		return err
	}
	warnMissing(result)

	renderer, err := charts.NewRenderer(flagChartsDir)
	if err != nil {
		return err
	}

	trends := report.BuildTrends(history)
	projections, err := report.BuildProjections(history, flagHorizon, flagConfidence)
	if err != nil {
		return err
	}

	byMetric := make(map[model.Metric][]model.ProjectionRow)
	for _, p := range projections {
		byMetric[p.Metric] = append(byMetric[p.Metric], p)
	}

	var written []string

	// One trend-plus-forecast chart per metric with a fitted line.
	for _, tr := range trends {
		if tr.Metric == model.MetricSurplus {
			continue // surplus gets its own bar chart below
		}
		name := fmt.Sprintf("trend_%s.png", tr.Metric)
		path, err := renderer.TrendChart(tr, byMetric[tr.Metric], name)
		if err != nil {
			return fmt.Errorf("rendering %s: %w", name, err)
		}
		written = append(written, path)
	}

	if mix := report.RevenueMix(result.Dataset); len(mix) > 0 {
		path, err := renderer.MixChart("Revenue by Source (CAD millions)", mix, "revenue_mix.png")
		if err != nil {
			return fmt.Errorf("rendering revenue mix: %w", err)
		}
		written = append(written, path)
	}

	if mix := report.ExpenseMix(result.Dataset); len(mix) > 0 {
		path, err := renderer.MixChart("Expenses by Object (CAD millions)", mix, "expense_mix.png")
		if err != nil {
			return fmt.Errorf("rendering expense mix: %w", err)
		}
		written = append(written, path)
	}

	if surplus := history[model.MetricSurplus]; len(surplus) > 0 {
		path, err := renderer.SurplusChart(surplus, "surplus.png")
		if err != nil {
			return fmt.Errorf("rendering surplus chart: %w", err)
		}
		written = append(written, path)
	}

	fmt.Printf("\n  Wrote %d charts to %s\n", len(written), flagChartsDir)
	if !flagQuiet {
		for _, p := range written {
			fmt.Printf("    %s\n", p)
		}
	}

	return nil
}
