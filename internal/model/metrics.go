// Package model holds the plain data structures shared across the
// statement loading, aggregation, and rendering layers. All money
// amounts are CAD millions as transcribed from the statements.
package model

// Metric identifies one of the tracked top-level financial metrics.
type Metric string

const (
	MetricRevenue       Metric = "revenue"
	MetricExpenses      Metric = "expenses"
	MetricSurplus       Metric = "surplus"
	MetricNetDebt       Metric = "net_debt"
	MetricCapitalAssets Metric = "capital_assets"
	MetricInvestments   Metric = "investments"
)

// Label returns the human-readable metric name used in tables and charts.
func (m Metric) Label() string {
	switch m {
	case MetricRevenue:
		return "Total Revenue"
	case MetricExpenses:
		return "Total Expenses"
	case MetricSurplus:
		return "Annual Surplus"
	case MetricNetDebt:
		return "Net Debt"
	case MetricCapitalAssets:
		return "Capital Assets"
	case MetricInvestments:
		return "Investments"
	}
	return string(m)
}

// TrackedMetrics lists the metrics in report order.
var TrackedMetrics = []Metric{
	MetricRevenue, MetricExpenses, MetricSurplus,
	MetricNetDebt, MetricCapitalAssets, MetricInvestments,
}

// YearValue is one (fiscal year, CAD millions) observation of a metric.
type YearValue struct {
	Year  int
	Value float64
}

// SummaryStats holds the headline figures for the reporting year.
type SummaryStats struct {
	FiscalYear int

	Revenue       float64
	Expenses      float64
	Surplus       float64
	NetDebt       float64
	CapitalAssets float64
	Investments   float64
	OperatingCash float64

	RevenueYoY  float64 // fraction, e.g. 0.115 for +11.5%
	ExpensesYoY float64
	SurplusYoY  float64
	NetDebtYoY  float64

	RevenueBudgetVariance float64 // actual minus budget
	DebtToRevenue         float64 // fraction of revenue
}

// TrendStats holds the fitted-line statistics for one metric series.
type TrendStats struct {
	Metric    Metric
	FirstYear int
	LastYear  int
	Slope     float64 // CAD millions per year
	Intercept float64
	R2        float64
	CAGR      float64 // fraction per year over the historical span
	History   []YearValue
}

// ProjectionRow is one forecast year for one metric, ready to render.
// Degenerate is set when the underlying fit had no degrees of freedom;
// Lower/Upper are meaningless in that case and must not be shown.
type ProjectionRow struct {
	Metric     Metric
	Year       int
	Estimate   float64
	Lower      float64
	Upper      float64
	Confidence float64
	Degenerate bool
}

// MixShare is one slice of a composition breakdown (revenue sources,
// expense categories) for the reporting year.
type MixShare struct {
	Category string
	Amount   float64
	Share    float64 // fraction of the total
	PrevYear float64
}

// SegmentStats holds per-service-segment figures for the reporting year.
type SegmentStats struct {
	Segment  string
	Revenue  float64
	Expenses float64
	Net      float64
}
