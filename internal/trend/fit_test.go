package trend

import (
	"errors"
	"math"
	"testing"
)

const tol = 1e-9

func closeTo(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func mustFit(t *testing.T, points []Point) LinearFit {
	t.Helper()
	fit, err := Fit(MustTimeSeries(points))
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}
	return fit
}

func TestNewTimeSeries_RejectsNonIncreasingYears(t *testing.T) {
	tests := []struct {
		name   string
		points []Point
	}{
		{"duplicate year", []Point{{2023, 1}, {2023, 2}}},
		{"decreasing", []Point{{2024, 1}, {2023, 2}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewTimeSeries(tt.points); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestFit_InsufficientData(t *testing.T) {
	for _, points := range [][]Point{nil, {{2024, 18202}}} {
		_, err := Fit(MustTimeSeries(points))
		if !errors.Is(err, ErrInsufficientData) {
			t.Errorf("Fit(%d points) error = %v, want ErrInsufficientData", len(points), err)
		}
	}
}

func TestFit_RecoversExactLine(t *testing.T) {
	// Revenue rising exactly $10M/yr from a $100M base.
	fit := mustFit(t, []Point{
		{2019, 100}, {2020, 110}, {2021, 120},
		{2022, 130}, {2023, 140}, {2024, 150},
	})

	if !closeTo(fit.Slope, 10, tol) {
		t.Errorf("Slope = %v, want 10", fit.Slope)
	}
	if !closeTo(fit.Intercept, 100, tol) {
		t.Errorf("Intercept = %v, want 100", fit.Intercept)
	}
	if !closeTo(fit.R2, 1, tol) {
		t.Errorf("R2 = %v, want 1", fit.R2)
	}
	if !closeTo(fit.ResidSE, 0, tol) {
		t.Errorf("ResidSE = %v, want 0", fit.ResidSE)
	}
	if est := PointEstimate(fit, 2025); !closeTo(est, 160, tol) {
		t.Errorf("PointEstimate(2025) = %v, want 160", est)
	}
}

func TestFit_ConstantSeriesR2IsOne(t *testing.T) {
	fit := mustFit(t, []Point{{2020, 42}, {2021, 42}, {2022, 42}, {2023, 42}})

	if fit.R2 != 1.0 {
		t.Errorf("R2 = %v, want exactly 1.0 for a constant series", fit.R2)
	}
	if !closeTo(fit.Slope, 0, tol) {
		t.Errorf("Slope = %v, want 0", fit.Slope)
	}
}

func TestFit_NoisySeriesStats(t *testing.T) {
	// Hand-checked small example: y = {1, 3, 2, 5} at x = {0, 1, 2, 3}.
	// OLS gives slope 1.1, intercept 1.1.
	fit := mustFit(t, []Point{{2021, 1}, {2022, 3}, {2023, 2}, {2024, 5}})

	if !closeTo(fit.Slope, 1.1, 1e-9) {
		t.Errorf("Slope = %v, want 1.1", fit.Slope)
	}
	if !closeTo(fit.Intercept, 1.1, 1e-9) {
		t.Errorf("Intercept = %v, want 1.1", fit.Intercept)
	}
	if fit.R2 <= 0 || fit.R2 >= 1 {
		t.Errorf("R2 = %v, want strictly inside (0, 1) for noisy data", fit.R2)
	}
	if fit.ResidSE <= 0 {
		t.Errorf("ResidSE = %v, want > 0 for noisy data", fit.ResidSE)
	}
}

func TestFit_BaseYearOffset(t *testing.T) {
	// Same shape far from year zero; the base-year offset keeps the
	// intercept at the first-year value rather than year-0 magnitudes.
	fit := mustFit(t, []Point{{2019, 13200}, {2020, 13000}, {2021, 13800},
		{2022, 15100}, {2023, 16325}, {2024, 18202}})

	if fit.BaseYear != 2019 {
		t.Errorf("BaseYear = %d, want 2019", fit.BaseYear)
	}
	if fit.Intercept < 11000 || fit.Intercept > 15000 {
		t.Errorf("Intercept = %v, want near the 2019 level", fit.Intercept)
	}
	if fit.Slope <= 0 {
		t.Errorf("Slope = %v, want positive for rising revenue", fit.Slope)
	}
}

func TestFit_GapYears(t *testing.T) {
	// Non-contiguous years are allowed; x spacing must be respected.
	fit := mustFit(t, []Point{{2018, 10}, {2020, 20}, {2024, 40}})

	if !closeTo(fit.Slope, 5, tol) {
		t.Errorf("Slope = %v, want 5 with gap years on an exact line", fit.Slope)
	}
	if !closeTo(fit.R2, 1, tol) {
		t.Errorf("R2 = %v, want 1", fit.R2)
	}
}
