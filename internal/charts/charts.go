package charts

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/mohamedfarazalam/city-of-toronto-2024fs/internal/model"
)

// Renderer writes chart PNGs into an output directory.
type Renderer struct {
	OutDir string
}

// NewRenderer creates the output directory if needed.
func NewRenderer(outDir string) (*Renderer, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating chart dir: %w", err)
	}
	return &Renderer{OutDir: outDir}, nil
}

func (r *Renderer) save(p *plot.Plot, name string) (string, error) {
	path := filepath.Join(r.OutDir, name)
	if err := p.Save(9*vg.Inch, 5.5*vg.Inch, path); err != nil {
		return "", fmt.Errorf("saving %s: %w", name, err)
	}
	return path, nil
}

// TrendChart renders one metric's history, fitted projection, and
// confidence band. History is drawn navy, forecasts steel with the
// translucent band between the interval bounds. Degenerate forecasts
// (no interval) render the point estimates without any band.
func (r *Renderer) TrendChart(ts model.TrendStats, forecasts []model.ProjectionRow, name string) (string, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s Trend & Projection (R² = %.3f)", ts.Metric.Label(), ts.R2)
	p.X.Label.Text = "Fiscal Year"
	p.Y.Label.Text = "CAD Millions"
	p.Add(plotter.NewGrid())

	hist := make(plotter.XYs, len(ts.History))
	for i, yv := range ts.History {
		hist[i] = plotter.XY{X: float64(yv.Year), Y: yv.Value}
	}

	histLine, histPoints, err := plotter.NewLinePoints(hist)
	if err != nil {
		return "", fmt.Errorf("history series: %w", err)
	}
	histLine.Color = Navy
	histLine.Width = vg.Points(2)
	histPoints.Color = Navy
	p.Add(histLine, histPoints)
	p.Legend.Add("Historical", histLine, histPoints)

	if len(forecasts) > 0 {
		// Forecast polyline starts from the last actual so the two
		// segments join visually.
		proj := make(plotter.XYs, 0, len(forecasts)+1)
		if len(hist) > 0 {
			proj = append(proj, hist[len(hist)-1])
		}
		hasBand := true
		band := make(plotter.XYs, 0, 2*len(forecasts))
		for _, fc := range forecasts {
			proj = append(proj, plotter.XY{X: float64(fc.Year), Y: fc.Estimate})
			if fc.Degenerate {
				hasBand = false
			}
			band = append(band, plotter.XY{X: float64(fc.Year), Y: fc.Upper})
		}
		for i := len(forecasts) - 1; i >= 0; i-- {
			band = append(band, plotter.XY{X: float64(forecasts[i].Year), Y: forecasts[i].Lower})
		}

		if hasBand {
			poly, err := plotter.NewPolygon(band)
			if err != nil {
				return "", fmt.Errorf("interval band: %w", err)
			}
			poly.Color = BandBlue
			poly.LineStyle.Color = BandBlue
			p.Add(poly)
			p.Legend.Add(fmt.Sprintf("%.0f%% interval", forecasts[0].Confidence*100), poly)
		}

		projLine, projPoints, err := plotter.NewLinePoints(proj)
		if err != nil {
			return "", fmt.Errorf("forecast series: %w", err)
		}
		projLine.Color = Steel
		projLine.Width = vg.Points(2)
		projLine.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
		projPoints.Color = Steel
		p.Add(projLine, projPoints)
		p.Legend.Add("Projected", projLine, projPoints)
	}

	p.Legend.Top = true
	p.Legend.Left = true

	return r.save(p, name)
}

// MixChart renders a composition breakdown (revenue sources or expense
// categories) as a bar chart in the report palette.
func (r *Renderer) MixChart(title string, mix []model.MixShare, name string) (string, error) {
	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = "CAD Millions"

	values := make(plotter.Values, len(mix))
	labels := make([]string, len(mix))
	for i, s := range mix {
		values[i] = s.Amount
		labels[i] = s.Category
	}

	bars, err := plotter.NewBarChart(values, vg.Points(28))
	if err != nil {
		return "", fmt.Errorf("bar chart: %w", err)
	}
	bars.Color = Steel
	bars.LineStyle.Width = 0

	p.Add(bars)
	p.NominalX(labels...)
	p.X.Tick.Label.Rotation = -0.5
	p.X.Tick.Label.XAlign = -0.3

	return r.save(p, name)
}

// SurplusChart renders the annual surplus history as bars, green above
// zero and red below.
func (r *Renderer) SurplusChart(history []model.YearValue, name string) (string, error) {
	p := plot.New()
	p.Title.Text = "Annual Surplus / (Deficit)"
	p.X.Label.Text = "Fiscal Year"
	p.Y.Label.Text = "CAD Millions"
	p.Add(plotter.NewGrid())

	// Split into a green positive series and a red negative series at
	// the same nominal positions so each year keeps one colored bar.
	labels := make([]string, len(history))
	pos := make(plotter.Values, len(history))
	neg := make(plotter.Values, len(history))
	for i, yv := range history {
		labels[i] = fmt.Sprintf("%d", yv.Year)
		if yv.Value >= 0 {
			pos[i] = yv.Value
		} else {
			neg[i] = yv.Value
		}
	}

	for _, series := range []struct {
		values plotter.Values
		fill   color.Color
	}{{pos, Green}, {neg, Red}} {
		bars, err := plotter.NewBarChart(series.values, vg.Points(24))
		if err != nil {
			return "", fmt.Errorf("surplus bars: %w", err)
		}
		bars.Color = series.fill
		bars.LineStyle.Width = 0
		p.Add(bars)
	}
	p.NominalX(labels...)

	return r.save(p, name)
}
