// Package theme defines color themes for the fsreport TUI dashboard.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the color roles used throughout the TUI.
type Theme struct {
	Name        string
	Surface     lipgloss.Color // card/panel backgrounds
	Border      lipgloss.Color // subtle borders
	TextDim     lipgloss.Color // lowest contrast text (hints)
	TextMuted   lipgloss.Color // secondary text (labels)
	TextPrimary lipgloss.Color // primary content text
	Accent      lipgloss.Color // active tab, highlights
	Green       lipgloss.Color
	Red         lipgloss.Color
	Blue        lipgloss.Color
	Yellow      lipgloss.Color
}

// Active is the currently selected theme.
var Active = StatementNavy

// StatementNavy is the default theme, echoing the printed report's
// navy/steel/light-blue palette.
var StatementNavy = Theme{
	Name:        "statement-navy",
	Surface:     lipgloss.Color("#0B1D33"),
	Border:      lipgloss.Color("#2A4A6B"),
	TextDim:     lipgloss.Color("#4A6580"),
	TextMuted:   lipgloss.Color("#8FA8C0"),
	TextPrimary: lipgloss.Color("#EAF2FA"),
	Accent:      lipgloss.Color("#4DA6E8"),
	Green:       lipgloss.Color("#2E9E6B"),
	Red:         lipgloss.Color("#E05A6E"),
	Blue:        lipgloss.Color("#1A6BAF"),
	Yellow:      lipgloss.Color("#D0A215"),
}

// Slate is a neutral gray theme for terminals where the navy washes out.
var Slate = Theme{
	Name:        "slate",
	Surface:     lipgloss.Color("#1C1C1F"),
	Border:      lipgloss.Color("#3A3A40"),
	TextDim:     lipgloss.Color("#55555C"),
	TextMuted:   lipgloss.Color("#8E8E96"),
	TextPrimary: lipgloss.Color("#F0F0F2"),
	Accent:      lipgloss.Color("#7AA2F7"),
	Green:       lipgloss.Color("#9ECE6A"),
	Red:         lipgloss.Color("#F7768E"),
	Blue:        lipgloss.Color("#7AA2F7"),
	Yellow:      lipgloss.Color("#E0AF68"),
}

// Terminal uses ANSI 16 colors only - maximum compatibility.
var Terminal = Theme{
	Name:        "terminal",
	Surface:     lipgloss.Color("0"),
	Border:      lipgloss.Color("8"),
	TextDim:     lipgloss.Color("8"),
	TextMuted:   lipgloss.Color("7"),
	TextPrimary: lipgloss.Color("15"),
	Accent:      lipgloss.Color("6"),
	Green:       lipgloss.Color("2"),
	Red:         lipgloss.Color("1"),
	Blue:        lipgloss.Color("4"),
	Yellow:      lipgloss.Color("3"),
}

// All available themes.
var All = []Theme{StatementNavy, Slate, Terminal}

// ByName returns a theme by its name, defaulting to StatementNavy.
func ByName(name string) Theme {
	for _, t := range All {
		if t.Name == name {
			return t
		}
	}
	return StatementNavy
}

// SetActive sets the active theme by name.
func SetActive(name string) {
	Active = ByName(name)
}
