package cmd

import (
	"fmt"

	"github.com/mohamedfarazalam/city-of-toronto-2024fs/internal/cli"
	"github.com/mohamedfarazalam/city-of-toronto-2024fs/internal/model"
	"github.com/mohamedfarazalam/city-of-toronto-2024fs/internal/report"

	"github.com/spf13/cobra"
)

var segmentsCmd = &cobra.Command{
	Use:   "segments",
	Short: "Revenue and expenses by service segment",
	RunE:  runSegments,
}

func init() {
	rootCmd.AddCommand(segmentsCmd)
}

func runSegments(_ *cobra.Command, _ []string) error {
	result, err := loadData()
	if err != nil {
		return err
	}
	warnMissing(result)

	service := report.ServiceSegments(result.Dataset)
	if len(service) == 0 {
		fmt.Println("\n  Segment table not available.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.Title("SEGMENTED INFORMATION"))
	fmt.Println()

	printSegments("By Service", service)
	if entities := report.EntitySegments(result.Dataset); len(entities) > 0 {
		fmt.Println()
		printSegments("By Consolidated Entity", entities)
	}

	// Composition of the two statement totals, plus the transfer note.
	printMix("Revenue Mix", report.RevenueMix(result.Dataset))
	printMix("Expenses by Object", report.ExpenseMix(result.Dataset))
	printMix("Government Transfers by Program", report.TransferMix(result.Dataset))

	return nil
}

func printSegments(caption string, segments []model.SegmentStats) {
	maxExp := 0.0
	for _, s := range segments {
		if s.Expenses > maxExp {
			maxExp = s.Expenses
		}
	}

	table := cli.Table{
		Caption: caption,
		Headers: []string{"Segment", "Expenses", "", "Revenue", "Net"},
	}
	for _, s := range segments {
		net := cli.FormatDeltaMillions(s.Net)
		if s.Net < 0 {
			net = cli.Bad(net)
		} else {
			net = cli.Good(net)
		}
		table.Rows = append(table.Rows, []string{
			s.Segment,
			cli.FormatMillions(s.Expenses),
			cli.HorizontalBar(s.Expenses, maxExp, 18),
			cli.FormatMillions(s.Revenue),
			net,
		})
	}
	fmt.Print(table.Render())
}

func printMix(caption string, mix []model.MixShare) {
	if len(mix) == 0 {
		return
	}

	fmt.Println()
	table := cli.Table{
		Caption: caption,
		Headers: []string{"Category", "Amount", "Share", "Prior Year"},
	}
	for _, m := range mix {
		prior := ""
		if m.PrevYear != 0 {
			prior = cli.FormatMillions(m.PrevYear)
		}
		table.Rows = append(table.Rows, []string{
			m.Category,
			cli.FormatMillions(m.Amount),
			cli.FormatPercent(m.Share),
			prior,
		})
	}
	fmt.Print(table.Render())
}
