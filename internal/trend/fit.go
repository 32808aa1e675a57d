package trend

import "math"

// LinearFit holds an ordinary least squares line fitted to a TimeSeries.
// The independent variable is the year offset from BaseYear, which keeps
// the numbers small (x = 0..n-1 for contiguous years) and makes the
// intercept directly readable as the modeled base-year value.
type LinearFit struct {
	BaseYear  int     // year at x = 0
	Slope     float64 // value change per year
	Intercept float64 // modeled value at BaseYear
	R2        float64 // coefficient of determination
	ResidSE   float64 // residual standard error (0 when df = 0)

	n     int     // observation count
	meanX float64 // mean year offset
	sxx   float64 // sum of squared x deviations
}

// N returns the number of observations behind the fit.
func (f LinearFit) N() int { return f.n }

// DegreesOfFreedom returns n - 2, the residual degrees of freedom.
func (f LinearFit) DegreesOfFreedom() int { return f.n - 2 }

// Fit computes the least squares line through the series.
// Fails with ErrInsufficientData for fewer than two points.
func Fit(series TimeSeries) (LinearFit, error) {
	pts := series.points
	if len(pts) < 2 {
		return LinearFit{}, ErrInsufficientData
	}

	base := pts[0].Year
	n := float64(len(pts))

	var sumX, sumY float64
	for _, p := range pts {
		sumX += float64(p.Year - base)
		sumY += p.Value
	}
	meanX := sumX / n
	meanY := sumY / n

	var sxx, sxy float64
	for _, p := range pts {
		dx := float64(p.Year-base) - meanX
		sxx += dx * dx
		sxy += dx * (p.Value - meanY)
	}
	// sxx > 0 is guaranteed: NewTimeSeries enforces distinct years.
	slope := sxy / sxx
	intercept := meanY - slope*meanX

	// R² = 1 - SSR/SST, with SST = 0 (constant series) defined as 1.
	var ssr, sst float64
	for _, p := range pts {
		x := float64(p.Year - base)
		resid := p.Value - (slope*x + intercept)
		ssr += resid * resid
		dy := p.Value - meanY
		sst += dy * dy
	}
	r2 := 1.0
	if sst > 0 {
		r2 = 1 - ssr/sst
	}

	var residSE float64
	if len(pts) > 2 {
		residSE = math.Sqrt(ssr / (n - 2))
	}

	return LinearFit{
		BaseYear:  base,
		Slope:     slope,
		Intercept: intercept,
		R2:        r2,
		ResidSE:   residSE,
		n:         len(pts),
		meanX:     meanX,
		sxx:       sxx,
	}, nil
}
