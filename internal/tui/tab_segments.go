package tui

import (
	"fmt"
	"strings"

	"github.com/mohamedfarazalam/city-of-toronto-2024fs/internal/cli"
	"github.com/mohamedfarazalam/city-of-toronto-2024fs/internal/tui/components"
	"github.com/mohamedfarazalam/city-of-toronto-2024fs/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) viewSegments() string {
	cw := a.contentWidth()
	var b strings.Builder

	if len(a.segments) == 0 {
		dim := lipgloss.NewStyle().Foreground(theme.Active.TextDim)
		return dim.Render("  Segment table not available.") + "\n"
	}

	maxExp := 0.0
	for _, s := range a.segments {
		if s.Expenses > maxExp {
			maxExp = s.Expenses
		}
	}

	barStyle := lipgloss.NewStyle().Foreground(theme.Active.Accent)
	tbl := cli.Table{
		Headers: []string{"Segment", "Expenses", "", "Revenue", "Net"},
	}
	for _, s := range a.segments {
		net := cli.FormatDeltaMillions(s.Net)
		if s.Net < 0 {
			net = cli.Bad(net)
		} else {
			net = cli.Good(net)
		}
		tbl.Rows = append(tbl.Rows, []string{
			s.Segment,
			cli.FormatMillions(s.Expenses),
			barStyle.Render(cli.HorizontalBar(s.Expenses, maxExp, 18)),
			cli.FormatMillions(s.Revenue),
			net,
		})
	}
	title := fmt.Sprintf("Service Segments %d", a.summary.FiscalYear)
	b.WriteString(components.ContentCard(title, tbl.Render(), cw))
	b.WriteString("\n")

	return b.String()
}
