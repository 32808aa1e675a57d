package tui

import (
	"fmt"
	"strings"

	"github.com/mohamedfarazalam/city-of-toronto-2024fs/internal/cli"
	"github.com/mohamedfarazalam/city-of-toronto-2024fs/internal/model"
	"github.com/mohamedfarazalam/city-of-toronto-2024fs/internal/tui/components"
	"github.com/mohamedfarazalam/city-of-toronto-2024fs/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) viewOverview() string {
	t := theme.Active
	s := a.summary
	cw := a.contentWidth()
	var b strings.Builder

	// Row 1: headline metric cards.
	widths := components.SplitRow(cw, 4)
	cards := []string{
		components.MetricCard(
			fmt.Sprintf("Revenue %d", s.FiscalYear),
			cli.FormatMillions(s.Revenue),
			cli.FormatSignedPercent(s.RevenueYoY)+" YoY",
			s.RevenueYoY >= 0,
			widths[0],
		),
		components.MetricCard(
			fmt.Sprintf("Expenses %d", s.FiscalYear),
			cli.FormatMillions(s.Expenses),
			cli.FormatSignedPercent(s.ExpensesYoY)+" YoY",
			s.ExpensesYoY <= 0,
			widths[1],
		),
		components.MetricCard(
			"Annual surplus",
			cli.FormatMillions(s.Surplus),
			cli.FormatSignedPercent(s.SurplusYoY)+" YoY",
			s.Surplus >= 0,
			widths[2],
		),
		components.MetricCard(
			"Net debt",
			cli.FormatMillions(s.NetDebt),
			cli.FormatSignedPercent(s.NetDebtYoY)+" YoY",
			s.NetDebtYoY <= 0,
			widths[3],
		),
	}
	b.WriteString(components.CardRow(cards...))
	b.WriteString("\n")

	// Row 2: multi-year sparklines for the tracked metrics.
	sparkBody := a.sparklineBody()
	if sparkBody != "" {
		b.WriteString(components.ContentCard("Six-Year History", sparkBody, cw))
		b.WriteString("\n")
	}

	// Row 3: revenue mix and budget position side by side.
	halves := components.SplitRow(cw, 2)

	mixCard := ""
	if len(a.revenueMix) > 0 {
		mixCard = components.ContentCard("Revenue Mix",
			mixBody(a.revenueMix, halves[0]-4), halves[0])
	}

	budgetLines := []string{
		fmt.Sprintf("Budget variance   %s", cli.FormatDeltaMillions(s.RevenueBudgetVariance)),
		fmt.Sprintf("Debt to revenue   %s", cli.FormatPercent(s.DebtToRevenue)),
		fmt.Sprintf("Capital assets    %s", cli.FormatMillions(s.CapitalAssets)),
		fmt.Sprintf("Investments       %s", cli.FormatMillions(s.Investments)),
	}
	budgetCard := components.ContentCard("Fiscal Position",
		lipgloss.NewStyle().Foreground(t.TextPrimary).Render(strings.Join(budgetLines, "\n")),
		halves[1])

	if mixCard != "" {
		b.WriteString(components.CardRow(mixCard, budgetCard))
	} else {
		b.WriteString(budgetCard)
	}
	b.WriteString("\n")

	return b.String()
}

// sparklineBody renders one sparkline line per tracked metric that has
// at least two years of history.
func (a App) sparklineBody() string {
	t := theme.Active
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	sparkStyle := lipgloss.NewStyle().Foreground(t.Blue)
	valStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	var lines []string
	for _, tr := range a.trends {
		if len(tr.History) < 2 {
			continue
		}
		vals := make([]float64, len(tr.History))
		for i, yv := range tr.History {
			vals[i] = yv.Value
		}
		last := tr.History[len(tr.History)-1].Value
		lines = append(lines, fmt.Sprintf("%s %s %s",
			labelStyle.Render(fmt.Sprintf("%-16s", tr.Metric.Label())),
			sparkStyle.Render(cli.Sparkline(vals)),
			valStyle.Render(cli.FormatMillions(last)),
		))
	}
	return strings.Join(lines, "\n")
}

// mixBody renders a share bar per category, widest share first.
func mixBody(mix []model.MixShare, innerW int) string {
	t := theme.Active
	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	barStyle := lipgloss.NewStyle().Foreground(t.Accent)
	pctStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	nameW := innerW / 3
	if nameW < 12 {
		nameW = 12
	}
	barMax := innerW - nameW - 8
	if barMax < 4 {
		barMax = 4
	}

	maxShare := 0.0
	for _, m := range mix {
		if m.Share > maxShare {
			maxShare = m.Share
		}
	}

	var b strings.Builder
	for _, m := range mix {
		barLen := 0
		if maxShare > 0 {
			barLen = int(m.Share / maxShare * float64(barMax))
		}
		name := m.Category
		if len(name) > nameW {
			name = name[:nameW-1] + "…"
		}
		fmt.Fprintf(&b, "%s %s %s\n",
			nameStyle.Render(fmt.Sprintf("%-*s", nameW, name)),
			barStyle.Render(strings.Repeat("█", barLen)),
			pctStyle.Render(cli.FormatPercent(m.Share)),
		)
	}
	return strings.TrimRight(b.String(), "\n")
}
