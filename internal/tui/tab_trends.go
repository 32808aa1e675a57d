package tui

import (
	"fmt"
	"strings"

	"github.com/mohamedfarazalam/city-of-toronto-2024fs/internal/cli"
	"github.com/mohamedfarazalam/city-of-toronto-2024fs/internal/tui/components"
	"github.com/mohamedfarazalam/city-of-toronto-2024fs/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) viewTrends() string {
	cw := a.contentWidth()
	var b strings.Builder

	if len(a.trends) == 0 {
		dim := lipgloss.NewStyle().Foreground(theme.Active.TextDim)
		return dim.Render("  No metric has enough history to fit a trend.") + "\n"
	}

	tbl := cli.Table{
		Headers: []string{"Metric", "Span", "History", "Slope", "R²", "CAGR"},
	}
	sparkStyle := lipgloss.NewStyle().Foreground(theme.Active.Blue)
	for _, tr := range a.trends {
		vals := make([]float64, len(tr.History))
		for i, yv := range tr.History {
			vals[i] = yv.Value
		}
		tbl.Rows = append(tbl.Rows, []string{
			tr.Metric.Label(),
			fmt.Sprintf("%d–%d", tr.FirstYear, tr.LastYear),
			sparkStyle.Render(cli.Sparkline(vals)),
			cli.FormatSlope(tr.Slope),
			cli.FormatR2(tr.R2),
			cli.FormatSignedPercent(tr.CAGR),
		})
	}
	b.WriteString(components.ContentCard("Fitted Trends", tbl.Render(), cw))
	b.WriteString("\n")

	return b.String()
}
