// Package tui provides the interactive Bubble Tea dashboard for fsreport.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mohamedfarazalam/city-of-toronto-2024fs/internal/config"
	"github.com/mohamedfarazalam/city-of-toronto-2024fs/internal/model"
	"github.com/mohamedfarazalam/city-of-toronto-2024fs/internal/report"
	"github.com/mohamedfarazalam/city-of-toronto-2024fs/internal/statement"
	"github.com/mohamedfarazalam/city-of-toronto-2024fs/internal/tui/components"
	"github.com/mohamedfarazalam/city-of-toronto-2024fs/internal/tui/theme"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// DataLoadedMsg is sent when the statement tables finish loading.
type DataLoadedMsg struct {
	Result *statement.LoadResult
	Err    error
}

// setupValues backs the first-run huh form.
type setupValues struct {
	DataDir    string
	Horizon    int
	Confidence string
	Theme      string
}

// App is the root Bubble Tea model.
type App struct {
	// Inputs
	dataDir    string
	horizon    int
	confidence float64

	// Data
	loaded  bool
	loadErr error
	missing []string

	// Pre-computed views of the dataset
	summary     model.SummaryStats
	trends      []model.TrendStats
	projections []model.ProjectionRow
	segments    []model.SegmentStats
	revenueMix  []model.MixShare
	expenseMix  []model.MixShare

	// UI state
	width     int
	height    int
	activeTab int
	spinner   spinner.Model

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals setupValues
	needSetup bool
}

const minTerminalWidth = 70

// NewApp builds the dashboard model. The data directory and forecast
// parameters come from flags, already resolved against config.
func NewApp(dataDir string, horizon int, confidence float64) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent)

	a := App{
		dataDir:    dataDir,
		horizon:    horizon,
		confidence: confidence,
		spinner:    sp,
		needSetup:  !config.Exists(),
	}
	if a.needSetup {
		a.setupVals = setupValues{
			DataDir:    dataDir,
			Horizon:    horizon,
			Confidence: fmt.Sprintf("%g", confidence),
			Theme:      theme.Active.Name,
		}
		a.setupForm = newSetupForm(&a.setupVals)
	}
	return a
}

func newSetupForm(vals *setupValues) *huh.Form {
	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(t.Name, t.Name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Data directory").
				Description("Directory holding the transcribed statement CSVs").
				Value(&vals.DataDir),
			huh.NewSelect[int]().
				Title("Forecast horizon").
				Options(
					huh.NewOption("3 years", 3),
					huh.NewOption("5 years", 5),
					huh.NewOption("10 years", 10),
				).
				Value(&vals.Horizon),
			huh.NewSelect[string]().
				Title("Confidence level").
				Options(
					huh.NewOption("90%", "0.90"),
					huh.NewOption("95%", "0.95"),
					huh.NewOption("99%", "0.99"),
				).
				Value(&vals.Confidence),
			huh.NewSelect[string]().
				Title("Theme").
				Options(themeOpts...).
				Value(&vals.Theme),
		),
	)
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{a.spinner.Tick}
	if a.needSetup {
		cmds = append(cmds, a.setupForm.Init())
	} else {
		cmds = append(cmds, loadDataCmd(a.dataDir))
	}
	return tea.Batch(cmds...)
}

func loadDataCmd(dataDir string) tea.Cmd {
	return func() tea.Msg {
		result, err := statement.Load(dataDir, nil)
		return DataLoadedMsg{Result: result, Err: err}
	}
}

func (a *App) recompute(ds statement.Dataset) {
	history := report.MetricHistory(ds)

	a.summary = report.Summarize(ds)
	a.trends = report.BuildTrends(history)
	a.segments = report.ServiceSegments(ds)
	a.revenueMix = report.RevenueMix(ds)
	a.expenseMix = report.ExpenseMix(ds)

	projections, err := report.BuildProjections(history, a.horizon, a.confidence)
	if err != nil {
		a.loadErr = err
		return
	}
	a.projections = projections
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case DataLoadedMsg:
		a.loaded = true
		if msg.Err != nil {
			a.loadErr = msg.Err
			return a, nil
		}
		a.missing = msg.Result.Missing
		a.recompute(msg.Result.Dataset)
		return a, nil

	case spinner.TickMsg:
		if !a.loaded && !a.needSetup {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil

	case tea.KeyMsg:
		if a.needSetup {
			return a.updateSetupForm(msg)
		}
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return a, tea.Quit
		case "tab", "right", "l":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
			return a, nil
		case "shift+tab", "left", "h":
			a.activeTab = (a.activeTab + len(components.Tabs) - 1) % len(components.Tabs)
			return a, nil
		}
		if len(msg.String()) == 1 {
			if idx := components.TabIdxByKey(rune(msg.String()[0])); idx >= 0 {
				a.activeTab = idx
				return a, nil
			}
		}
		return a, nil
	}

	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}

	return a, nil
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	if a.setupForm.State == huh.StateCompleted {
		a.applySetup()
		a.needSetup = false
		a.setupForm = nil
		return a, loadDataCmd(a.dataDir)
	}

	if a.setupForm.State == huh.StateAborted {
		a.needSetup = false
		a.setupForm = nil
		return a, loadDataCmd(a.dataDir)
	}

	return a, cmd
}

func (a *App) applySetup() {
	cfg, _ := config.Load()

	if dir := strings.TrimSpace(a.setupVals.DataDir); dir != "" {
		cfg.General.DataDir = dir
		a.dataDir = dir
	}
	cfg.Forecast.HorizonYears = a.setupVals.Horizon
	a.horizon = a.setupVals.Horizon

	if conf, err := strconv.ParseFloat(a.setupVals.Confidence, 64); err == nil {
		cfg.Forecast.Confidence = conf
		a.confidence = conf
	}

	cfg.Appearance.Theme = a.setupVals.Theme
	theme.SetActive(a.setupVals.Theme)

	_ = config.Save(cfg)
}

// View implements tea.Model.
func (a App) View() string {
	if a.width > 0 && a.width < minTerminalWidth {
		return fmt.Sprintf("\n  Terminal too narrow (%d cols, need %d).\n  Resize or use the plain commands instead.\n",
			a.width, minTerminalWidth)
	}

	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
	}

	if !a.loaded {
		return fmt.Sprintf("\n  %s Loading statement tables from %s...\n", a.spinner.View(), a.dataDir)
	}

	if a.loadErr != nil {
		errStyle := lipgloss.NewStyle().Foreground(theme.Active.Red)
		return "\n  " + errStyle.Render(fmt.Sprintf("Error: %v", a.loadErr)) + "\n\n  Press q to quit.\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(components.RenderTabBar(a.activeTab))
	b.WriteString("\n\n")

	switch a.activeTab {
	case 0:
		b.WriteString(a.viewOverview())
	case 1:
		b.WriteString(a.viewTrends())
	case 2:
		b.WriteString(a.viewForecast())
	case 3:
		b.WriteString(a.viewSegments())
	}

	hint := lipgloss.NewStyle().Foreground(theme.Active.TextDim)
	b.WriteString("\n")
	b.WriteString(hint.Render("  tab/arrows switch · q quits"))
	if len(a.missing) > 0 {
		b.WriteString(hint.Render(fmt.Sprintf("  ·  %d tables missing", len(a.missing))))
	}
	b.WriteString("\n")

	return b.String()
}

func (a App) contentWidth() int {
	w := a.width
	if w <= 0 {
		w = 100
	}
	if w > 140 {
		w = 140
	}
	return w - 2
}
