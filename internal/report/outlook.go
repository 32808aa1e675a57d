package report

import (
	"errors"
	"math"

	"github.com/mohamedfarazalam/city-of-toronto-2024fs/internal/model"
	"github.com/mohamedfarazalam/city-of-toronto-2024fs/internal/trend"
)

// BuildTrends fits a line per tracked metric and returns the fit
// statistics in report order. Metrics with fewer than two observations
// are omitted; a caller that needs to know why sees them missing from
// the result against model.TrackedMetrics.
func BuildTrends(history map[model.Metric][]model.YearValue) []model.TrendStats {
	var out []model.TrendStats

	for _, m := range model.TrackedMetrics {
		series, err := toSeries(history[m])
		if err != nil {
			continue
		}
		fit, err := trend.Fit(series)
		if err != nil {
			continue
		}

		yvs := history[m]
		first, last := yvs[0], yvs[len(yvs)-1]

		out = append(out, model.TrendStats{
			Metric:    m,
			FirstYear: first.Year,
			LastYear:  last.Year,
			Slope:     fit.Slope,
			Intercept: fit.Intercept,
			R2:        fit.R2,
			CAGR:      cagr(first, last),
			History:   yvs,
		})
	}

	return out
}

// BuildProjections projects each fittable metric forward by horizon
// years at the given confidence level. A two-point fit yields
// point-only rows flagged Degenerate rather than a fabricated interval.
// An out-of-range confidence level is the caller's mistake and is
// returned as trend.ErrInvalidConfidence.
func BuildProjections(history map[model.Metric][]model.YearValue, horizon int, confidence float64) ([]model.ProjectionRow, error) {
	if confidence <= 0 || confidence >= 1 {
		return nil, trend.ErrInvalidConfidence
	}

	var out []model.ProjectionRow

	for _, m := range model.TrackedMetrics {
		series, err := toSeries(history[m])
		if err != nil {
			continue
		}
		fit, err := trend.Fit(series)
		if err != nil {
			continue
		}

		lastYear := series.LastYear()
		for i := 1; i <= horizon; i++ {
			year := lastYear + i
			fc, err := trend.Project(fit, year, confidence)
			switch {
			case err == nil:
				out = append(out, model.ProjectionRow{
					Metric:     m,
					Year:       year,
					Estimate:   fc.Estimate,
					Lower:      fc.Lower,
					Upper:      fc.Upper,
					Confidence: confidence,
				})
			case errors.Is(err, trend.ErrDegenerateFit):
				out = append(out, model.ProjectionRow{
					Metric:     m,
					Year:       year,
					Estimate:   trend.PointEstimate(fit, year),
					Confidence: confidence,
					Degenerate: true,
				})
			default:
				return nil, err
			}
		}
	}

	return out, nil
}

func toSeries(yvs []model.YearValue) (trend.TimeSeries, error) {
	points := make([]trend.Point, len(yvs))
	for i, yv := range yvs {
		points[i] = trend.Point{Year: yv.Year, Value: yv.Value}
	}
	return trend.NewTimeSeries(points)
}

func cagr(first, last model.YearValue) float64 {
	span := last.Year - first.Year
	if span <= 0 || first.Value <= 0 || last.Value <= 0 {
		return 0
	}
	return math.Pow(last.Value/first.Value, 1/float64(span)) - 1
}
