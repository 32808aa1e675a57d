// Package trend fits linear models to short fiscal-year series and
// projects them forward with prediction intervals.
package trend

import (
	"errors"
	"fmt"
)

// Sentinel errors reported by Fit and Project.
var (
	// ErrInsufficientData is returned when a fit is requested on fewer
	// than two points.
	ErrInsufficientData = errors.New("at least 2 points required for a linear fit")

	// ErrInvalidConfidence is returned when a confidence level lies
	// outside the open interval (0, 1).
	ErrInvalidConfidence = errors.New("confidence level must be in (0, 1)")

	// ErrDegenerateFit is returned when an interval is requested from a
	// fit with zero degrees of freedom (exactly two points). The point
	// estimate is still defined; use PointEstimate for it.
	ErrDegenerateFit = errors.New("fit has no degrees of freedom for an interval")
)

// Point is a single (fiscal year, value) observation. Values are CAD
// millions throughout this repository, but the fit does not care.
type Point struct {
	Year  int
	Value float64
}

// TimeSeries is an immutable ordered sequence of yearly observations
// with strictly increasing years.
type TimeSeries struct {
	points []Point
}

// NewTimeSeries validates and copies the given points into a TimeSeries.
// Years must be strictly increasing; duplicates are rejected rather than
// merged, since the transcribed tables carry one row per fiscal year.
func NewTimeSeries(points []Point) (TimeSeries, error) {
	for i := 1; i < len(points); i++ {
		if points[i].Year <= points[i-1].Year {
			return TimeSeries{}, fmt.Errorf(
				"years must be strictly increasing: %d follows %d at index %d",
				points[i].Year, points[i-1].Year, i)
		}
	}
	ts := TimeSeries{points: make([]Point, len(points))}
	copy(ts.points, points)
	return ts, nil
}

// MustTimeSeries is NewTimeSeries that panics on invalid input.
// Intended for fixed literal series in tests and examples.
func MustTimeSeries(points []Point) TimeSeries {
	ts, err := NewTimeSeries(points)
	if err != nil {
		panic(err)
	}
	return ts
}

// Len returns the number of observations.
func (ts TimeSeries) Len() int { return len(ts.points) }

// Points returns a copy of the observations.
func (ts TimeSeries) Points() []Point {
	out := make([]Point, len(ts.points))
	copy(out, ts.points)
	return out
}

// BaseYear returns the first (earliest) year, or 0 for an empty series.
func (ts TimeSeries) BaseYear() int {
	if len(ts.points) == 0 {
		return 0
	}
	return ts.points[0].Year
}

// LastYear returns the final (latest) year, or 0 for an empty series.
func (ts TimeSeries) LastYear() int {
	if len(ts.points) == 0 {
		return 0
	}
	return ts.points[len(ts.points)-1].Year
}

// Values returns the observation values in year order.
func (ts TimeSeries) Values() []float64 {
	out := make([]float64, len(ts.points))
	for i, p := range ts.points {
		out[i] = p.Value
	}
	return out
}
