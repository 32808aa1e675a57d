package trend

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Forecast holds a point estimate for a target year together with a
// symmetric prediction interval at the stated confidence level.
type Forecast struct {
	Year       int
	Estimate   float64
	Lower      float64
	Upper      float64
	Confidence float64
}

// HalfWidth returns the interval half-width.
func (fc Forecast) HalfWidth() float64 { return (fc.Upper - fc.Lower) / 2 }

// PointEstimate evaluates the fitted line at the target year. Always
// defined, even when the fit has no degrees of freedom for an interval.
func PointEstimate(fit LinearFit, targetYear int) float64 {
	return fit.Slope*float64(targetYear-fit.BaseYear) + fit.Intercept
}

// Project computes the prediction interval for one target year.
// Intended for extrapolation beyond the historical range; interpolation
// is not rejected, but the interval widens with distance from the mean
// historical year either way.
//
// Fails with ErrInvalidConfidence for confidence outside (0, 1) and with
// ErrDegenerateFit when the fit was built from exactly two points
// (df = 0). Callers that still want the two-point extrapolation must use
// PointEstimate and report it without an interval.
func Project(fit LinearFit, targetYear int, confidence float64) (Forecast, error) {
	if confidence <= 0 || confidence >= 1 {
		return Forecast{}, ErrInvalidConfidence
	}
	df := fit.DegreesOfFreedom()
	if df <= 0 {
		return Forecast{}, ErrDegenerateFit
	}

	estimate := PointEstimate(fit, targetYear)

	// Standard prediction interval for simple linear regression:
	// t(df, conf) * s * sqrt(1 + 1/n + (x - x̄)² / Sxx)
	x := float64(targetYear - fit.BaseYear)
	dx := x - fit.meanX
	leverage := math.Sqrt(1 + 1/float64(fit.n) + dx*dx/fit.sxx)

	t := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(df)}
	crit := t.Quantile(0.5 + confidence/2)

	half := crit * fit.ResidSE * leverage

	return Forecast{
		Year:       targetYear,
		Estimate:   estimate,
		Lower:      estimate - half,
		Upper:      estimate + half,
		Confidence: confidence,
	}, nil
}

// ProjectHorizon projects each year after the series end, out to
// horizon years. The forecasts carry the same confidence level.
func ProjectHorizon(fit LinearFit, lastYear, horizon int, confidence float64) ([]Forecast, error) {
	out := make([]Forecast, 0, horizon)
	for i := 1; i <= horizon; i++ {
		fc, err := Project(fit, lastYear+i, confidence)
		if err != nil {
			return nil, err
		}
		out = append(out, fc)
	}
	return out, nil
}
