package cmd

import (
	"fmt"

	"github.com/mohamedfarazalam/city-of-toronto-2024fs/internal/cli"
	"github.com/mohamedfarazalam/city-of-toronto-2024fs/internal/report"

	"github.com/spf13/cobra"
)

var trendsCmd = &cobra.Command{
	Use:   "trends",
	Short: "Fitted linear trends over the historical series",
	RunE:  runTrends,
}

func init() {
	rootCmd.AddCommand(trendsCmd)
}

func runTrends(_ *cobra.Command, _ []string) error {
	result, history, err := loadHistory()
	if err != nil {
		return err
	}
	warnMissing(result)

	trends := report.BuildTrends(history)
	if len(trends) == 0 {
		fmt.Println("\n  No metric has enough history to fit a trend.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.Title("MULTI-YEAR TRENDS"))
	fmt.Println()

	table := cli.Table{
		Headers: []string{"Metric", "Span", "History", "Slope/yr", "R²", "CAGR"},
	}
	for _, tr := range trends {
		vals := make([]float64, len(tr.History))
		for i, yv := range tr.History {
			vals[i] = yv.Value
		}
		table.Rows = append(table.Rows, []string{
			tr.Metric.Label(),
			fmt.Sprintf("%d–%d", tr.FirstYear, tr.LastYear),
			cli.Sparkline(vals),
			cli.FormatSlope(tr.Slope),
			cli.FormatR2(tr.R2),
			cli.FormatSignedPercent(tr.CAGR),
		})
	}
	fmt.Print(table.Render())

	return nil
}
