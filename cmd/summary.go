package cmd

import (
	"fmt"

	"github.com/mohamedfarazalam/city-of-toronto-2024fs/internal/cli"
	"github.com/mohamedfarazalam/city-of-toronto-2024fs/internal/report"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Headline figures for the reporting year",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	result, err := loadData()
	if err != nil {
		return err
	}
	warnMissing(result)

	s := report.Summarize(result.Dataset)
	if s.FiscalYear == 0 {
		fmt.Println("\n  No statement data found.")
		fmt.Println("  Point --data-dir at the transcribed CSV tables.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.Title(fmt.Sprintf("CITY OF TORONTO  %d Financial Statements", s.FiscalYear)))
	fmt.Println()

	rows := [][]string{
		{"Total revenue", cli.FormatMillions(s.Revenue), yoyCell(s.RevenueYoY, true)},
		{"Total expenses", cli.FormatMillions(s.Expenses), yoyCell(s.ExpensesYoY, false)},
		{"Annual surplus", cli.FormatMillions(s.Surplus), yoyCell(s.SurplusYoY, true)},
		{"---"},
		{"Net debt", cli.FormatMillions(s.NetDebt), yoyCell(s.NetDebtYoY, false)},
		{"Tangible capital assets", cli.FormatMillions(s.CapitalAssets), ""},
		{"Portfolio investments", cli.FormatMillions(s.Investments), ""},
		{"Operating cash flow", cli.FormatMillions(s.OperatingCash), ""},
		{"---"},
		{"Revenue vs budget", cli.FormatDeltaMillions(s.RevenueBudgetVariance), ""},
		{"Net debt / revenue", cli.FormatPercent(s.DebtToRevenue), ""},
	}

	if additions := report.CapitalAdditions(result.Dataset); additions > 0 {
		rows = append(rows, []string{"Capital asset additions", cli.FormatMillions(additions), ""})
	}
	if deferred, prior := report.DeferredRevenueTotal(result.Dataset); deferred > 0 {
		growth := 0.0
		if prior > 0 {
			growth = (deferred - prior) / prior
		}
		rows = append(rows, []string{"Deferred revenue", cli.FormatMillions(deferred), yoyCell(growth, false)})
	}

	table := cli.Table{
		Headers: []string{"Line", "Amount", "YoY"},
		Rows:    rows,
	}
	fmt.Print(table.Render())

	if schedule, total := report.DebtSchedule(result.Dataset); len(schedule) > 0 {
		fmt.Println()
		debt := cli.Table{
			Caption: "Upcoming Debt Repayment",
			Headers: []string{"Year", "Principal", "Interest"},
		}
		for _, row := range schedule {
			debt.Rows = append(debt.Rows, []string{
				fmt.Sprintf("%d", row.Year),
				cli.FormatMillions(row.Principal),
				cli.FormatMillions(row.Interest),
			})
		}
		debt.Rows = append(debt.Rows, []string{"---"})
		debt.Rows = append(debt.Rows, []string{"Total", cli.FormatMillions(total), ""})
		fmt.Print(debt.Render())
	}

	return nil
}

// yoyCell colors a year-over-year growth figure by whether growth in
// that line is favorable.
func yoyCell(growth float64, upIsGood bool) string {
	if growth == 0 {
		return ""
	}
	s := cli.FormatSignedPercent(growth)
	if (growth > 0) == upIsGood {
		return cli.Good(s)
	}
	return cli.Bad(s)
}
