// Package statement discovers and parses the transcribed CSV tables
// from the 2024 consolidated financial statements.
package statement

// Row structs map 1:1 onto the transcribed CSV columns via gocsv tags.
// Amounts are CAD millions, negative where the statements show
// parenthesized figures.

// FinancialPositionRow is one line of the statement of financial position.
type FinancialPositionRow struct {
	Item       string  `csv:"item"`
	Amount2024 float64 `csv:"amount_2024"`
	Amount2023 float64 `csv:"amount_2023"`
}

// OperationsRow is one line of the statement of operations, with the
// approved budget alongside the two actual years.
type OperationsRow struct {
	Item       string  `csv:"item"`
	Budget2024 float64 `csv:"budget_2024"`
	Actual2024 float64 `csv:"actual_2024"`
	Actual2023 float64 `csv:"actual_2023"`
}

// ExpenseRow is one expense-by-object category.
type ExpenseRow struct {
	Category   string  `csv:"category"`
	Amount2024 float64 `csv:"amount_2024"`
	Amount2023 float64 `csv:"amount_2023"`
}

// CashFlowRow is one activity line of the statement of cash flows.
type CashFlowRow struct {
	Activity   string  `csv:"activity"`
	Amount2024 float64 `csv:"amount_2024"`
	Amount2023 float64 `csv:"amount_2023"`
}

// CapitalAssetRow is one tangible capital asset class.
type CapitalAssetRow struct {
	AssetClass    string  `csv:"asset_class"`
	Cost          float64 `csv:"cost"`
	Amortization  float64 `csv:"accumulated_amortization"`
	NetBook2024   float64 `csv:"net_book_2024"`
	NetBook2023   float64 `csv:"net_book_2023"`
	Additions2024 float64 `csv:"additions_2024"`
}

// SegmentRow is one service (or entity) segment with its revenue and
// expenses for the reporting year.
type SegmentRow struct {
	Segment  string  `csv:"segment"`
	Revenue  float64 `csv:"revenue"`
	Expenses float64 `csv:"expenses"`
}

// InvestmentRow is one investment portfolio category at fair value.
type InvestmentRow struct {
	Category      string  `csv:"category"`
	FairValue2024 float64 `csv:"fair_value_2024"`
	FairValue2023 float64 `csv:"fair_value_2023"`
}

// DebtRepaymentRow is one future-year principal and interest obligation.
type DebtRepaymentRow struct {
	Year      int     `csv:"year"`
	Principal float64 `csv:"principal"`
	Interest  float64 `csv:"interest"`
}

// DeferredRevenueRow is one deferred-revenue obligation line.
type DeferredRevenueRow struct {
	Item       string  `csv:"item"`
	Amount2024 float64 `csv:"amount_2024"`
	Amount2023 float64 `csv:"amount_2023"`
}

// KPIRow is one (metric, fiscal year, value) observation. This is the
// only table in long format: it carries the genuine multi-year history
// behind the trend fits, one row per metric per year.
type KPIRow struct {
	Metric string  `csv:"metric"`
	Year   int     `csv:"year"`
	Value  float64 `csv:"value"`
}

// TransferRow is one government transfer program.
type TransferRow struct {
	Program    string  `csv:"program"`
	Amount2024 float64 `csv:"amount_2024"`
	Amount2023 float64 `csv:"amount_2023"`
}

// Dataset holds every transcribed table.
type Dataset struct {
	FinancialPosition []FinancialPositionRow
	Operations        []OperationsRow
	Expenses          []ExpenseRow
	CashFlows         []CashFlowRow
	CapitalAssets     []CapitalAssetRow
	ServiceSegments   []SegmentRow
	EntitySegments    []SegmentRow
	Investments       []InvestmentRow
	DebtRepayment     []DebtRepaymentRow
	DeferredRevenue   []DeferredRevenueRow
	KPI               []KPIRow
	Transfers         []TransferRow
}
