package cmd

import (
	"fmt"

	"github.com/mohamedfarazalam/city-of-toronto-2024fs/internal/cli"
	"github.com/mohamedfarazalam/city-of-toronto-2024fs/internal/report"

	"github.com/spf13/cobra"
)

var forecastCmd = &cobra.Command{
	Use:   "forecast",
	Short: "Project tracked metrics forward with prediction intervals",
	RunE:  runForecast,
}

func init() {
	rootCmd.AddCommand(forecastCmd)
}

func runForecast(_ *cobra.Command, _ []string) error {
	result, history, err := loadHistory()
	if err != nil {
		return err
	}
	warnMissing(result)

	rows, err := report.BuildProjections(history, flagHorizon, flagConfidence)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		fmt.Println("\n  No metric has enough history to project.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.Title(fmt.Sprintf("PROJECTIONS  %d-year horizon, %.0f%% interval",
		flagHorizon, flagConfidence*100)))
	fmt.Println()

	table := cli.Table{
		Headers: []string{"Metric", "Year", "Estimate", "Interval"},
	}
	prev := ""
	anyDegenerate := false
	for _, p := range rows {
		name := p.Metric.Label()
		if name == prev {
			name = ""
		} else if prev != "" {
			table.Rows = append(table.Rows, []string{"---"})
		}
		prev = p.Metric.Label()
		if p.Degenerate {
			anyDegenerate = true
		}
		table.Rows = append(table.Rows, []string{
			name,
			fmt.Sprintf("%d", p.Year),
			cli.FormatMillions(p.Estimate),
			cli.FormatInterval(p.Lower, p.Upper, p.Degenerate),
		})
	}
	fmt.Print(table.Render())

	if anyDegenerate {
		fmt.Println("\n  — intervals need at least three years of history.")
	}

	return nil
}
