package trend

import (
	"errors"
	"math"
	"testing"
)

func noisyFit(t *testing.T) LinearFit {
	t.Helper()
	return mustFit(t, []Point{
		{2019, 13200}, {2020, 13000}, {2021, 13800},
		{2022, 15100}, {2023, 16325}, {2024, 18202},
	})
}

func TestProject_InvalidConfidence(t *testing.T) {
	fit := noisyFit(t)

	for _, conf := range []float64{0, 1, 1.5, -0.1} {
		_, err := Project(fit, 2025, conf)
		if !errors.Is(err, ErrInvalidConfidence) {
			t.Errorf("Project(conf=%v) error = %v, want ErrInvalidConfidence", conf, err)
		}
	}
}

func TestProject_TwoPointFitIsDegenerate(t *testing.T) {
	fit := mustFit(t, []Point{{2023, 17200}, {2024, 18202}})

	// Point estimate is still the straight-line extrapolation.
	if est := PointEstimate(fit, 2025); !closeTo(est, 19204, tol) {
		t.Errorf("PointEstimate(2025) = %v, want 19204", est)
	}

	_, err := Project(fit, 2025, 0.95)
	if !errors.Is(err, ErrDegenerateFit) {
		t.Errorf("Project error = %v, want ErrDegenerateFit", err)
	}
}

func TestProject_IntervalBracketsEstimate(t *testing.T) {
	fit := noisyFit(t)

	fc, err := Project(fit, 2025, 0.95)
	if err != nil {
		t.Fatalf("Project: %v", err)
	}
	if fc.Year != 2025 || fc.Confidence != 0.95 {
		t.Errorf("Forecast metadata = (%d, %v), want (2025, 0.95)", fc.Year, fc.Confidence)
	}
	if fc.Lower >= fc.Estimate || fc.Upper <= fc.Estimate {
		t.Errorf("interval [%v, %v] does not bracket estimate %v", fc.Lower, fc.Upper, fc.Estimate)
	}
	if !closeTo(fc.Estimate-fc.Lower, fc.Upper-fc.Estimate, 1e-6) {
		t.Errorf("interval is not symmetric: [%v, %v] around %v", fc.Lower, fc.Upper, fc.Estimate)
	}
}

func TestProject_HigherConfidenceWidensInterval(t *testing.T) {
	fit := noisyFit(t)

	fc90, err := Project(fit, 2026, 0.90)
	if err != nil {
		t.Fatalf("Project 90%%: %v", err)
	}
	fc99, err := Project(fit, 2026, 0.99)
	if err != nil {
		t.Fatalf("Project 99%%: %v", err)
	}

	if fc99.HalfWidth() <= fc90.HalfWidth() {
		t.Errorf("99%% half-width %v not wider than 90%% half-width %v",
			fc99.HalfWidth(), fc90.HalfWidth())
	}
	if !closeTo(fc90.Estimate, fc99.Estimate, tol) {
		t.Errorf("point estimate changed with confidence: %v vs %v", fc90.Estimate, fc99.Estimate)
	}
}

func TestProject_IntervalWidensWithDistance(t *testing.T) {
	fit := noisyFit(t)

	var prev float64
	for i, year := range []int{2025, 2026, 2027, 2030} {
		fc, err := Project(fit, year, 0.95)
		if err != nil {
			t.Fatalf("Project(%d): %v", year, err)
		}
		if i > 0 && fc.HalfWidth() <= prev {
			t.Errorf("half-width at %d = %v, want > %v (monotone widening)", year, fc.HalfWidth(), prev)
		}
		prev = fc.HalfWidth()
	}
}

func TestProject_ZeroVarianceGivesZeroWidth(t *testing.T) {
	// Exact line: residual SE is zero, so every interval collapses to
	// the point estimate regardless of confidence.
	fit := mustFit(t, []Point{{2019, 100}, {2020, 110}, {2021, 120},
		{2022, 130}, {2023, 140}, {2024, 150}})

	fc, err := Project(fit, 2027, 0.99)
	if err != nil {
		t.Fatalf("Project: %v", err)
	}
	if fc.HalfWidth() != 0 {
		t.Errorf("HalfWidth = %v, want 0 for an exact fit", fc.HalfWidth())
	}
	if !closeTo(fc.Estimate, 180, tol) {
		t.Errorf("Estimate = %v, want 180", fc.Estimate)
	}
}

func TestProject_CriticalValueMatchesStudentsT(t *testing.T) {
	// Three collinear-ish points with known residuals: y = {0, 1, 0} at
	// x = {0, 1, 2}. OLS gives slope 0, intercept 1/3, SSR = 2/3,
	// s = sqrt(2/3 / 1) and df = 1, where t(0.95, df=1) = 12.7062...
	fit := mustFit(t, []Point{{2020, 0}, {2021, 1}, {2022, 0}})

	fc, err := Project(fit, 2023, 0.95)
	if err != nil {
		t.Fatalf("Project: %v", err)
	}

	s := math.Sqrt(2.0 / 3.0)
	leverage := math.Sqrt(1 + 1.0/3.0 + (2.0*2.0)/2.0)
	want := 12.706204736 * s * leverage
	if !closeTo(fc.HalfWidth(), want, 1e-6) {
		t.Errorf("HalfWidth = %v, want %v", fc.HalfWidth(), want)
	}
}

func TestProjectHorizon(t *testing.T) {
	fit := noisyFit(t)

	fcs, err := ProjectHorizon(fit, 2024, 3, 0.95)
	if err != nil {
		t.Fatalf("ProjectHorizon: %v", err)
	}
	if len(fcs) != 3 {
		t.Fatalf("len = %d, want 3", len(fcs))
	}
	for i, fc := range fcs {
		if fc.Year != 2025+i {
			t.Errorf("forecast %d year = %d, want %d", i, fc.Year, 2025+i)
		}
	}

	if _, err := ProjectHorizon(fit, 2024, 3, 2); !errors.Is(err, ErrInvalidConfidence) {
		t.Errorf("ProjectHorizon error = %v, want ErrInvalidConfidence", err)
	}
}
