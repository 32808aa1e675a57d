package tui

import (
	"fmt"
	"strings"

	"github.com/mohamedfarazalam/city-of-toronto-2024fs/internal/cli"
	"github.com/mohamedfarazalam/city-of-toronto-2024fs/internal/tui/components"
	"github.com/mohamedfarazalam/city-of-toronto-2024fs/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) viewForecast() string {
	cw := a.contentWidth()
	var b strings.Builder

	if len(a.projections) == 0 {
		dim := lipgloss.NewStyle().Foreground(theme.Active.TextDim)
		return dim.Render("  No metric has enough history to project.") + "\n"
	}

	title := fmt.Sprintf("Projections (%d-year horizon, %.0f%% interval)",
		a.horizon, a.confidence*100)

	tbl := cli.Table{
		Headers: []string{"Metric", "Year", "Estimate", "Interval"},
	}
	prev := ""
	anyDegenerate := false
	for _, p := range a.projections {
		name := p.Metric.Label()
		if name == prev {
			name = ""
		} else if prev != "" {
			tbl.Rows = append(tbl.Rows, []string{"---"})
		}
		prev = p.Metric.Label()
		if p.Degenerate {
			anyDegenerate = true
		}
		tbl.Rows = append(tbl.Rows, []string{
			name,
			fmt.Sprintf("%d", p.Year),
			cli.FormatMillions(p.Estimate),
			cli.FormatInterval(p.Lower, p.Upper, p.Degenerate),
		})
	}
	b.WriteString(components.ContentCard(title, tbl.Render(), cw))
	b.WriteString("\n")

	if anyDegenerate {
		dim := lipgloss.NewStyle().Foreground(theme.Active.TextDim)
		b.WriteString(dim.Render("  — interval needs at least three years of history"))
		b.WriteString("\n")
	}

	return b.String()
}
