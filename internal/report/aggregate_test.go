package report

import (
	"math"
	"testing"

	"github.com/mohamedfarazalam/city-of-toronto-2024fs/internal/model"
	"github.com/mohamedfarazalam/city-of-toronto-2024fs/internal/statement"
)

// fixtureDataset mirrors the shape of the transcribed tables with a
// small set of hand-checked figures.
func fixtureDataset() statement.Dataset {
	return statement.Dataset{
		Operations: []statement.OperationsRow{
			{Item: "Property taxes", Budget2024: 5700, Actual2024: 5808, Actual2023: 5423},
			{Item: "Government transfers", Budget2024: 4600, Actual2024: 4669, Actual2023: 4200},
			{Item: "User charges", Budget2024: 3500, Actual2024: 3610, Actual2023: 3400},
			{Item: TotalRevenueItem, Budget2024: 17672, Actual2024: 18202, Actual2023: 16325},
			{Item: TotalExpensesItem, Budget2024: 17522, Actual2024: 16186, Actual2023: 15075},
			{Item: SurplusItem, Budget2024: 150, Actual2024: 2016, Actual2023: 1250},
		},
		Expenses: []statement.ExpenseRow{
			{Category: "Transfer payments", Amount2024: 2083, Amount2023: 1950},
			{Category: "Salaries and benefits", Amount2024: 7642, Amount2023: 7068},
			{Category: "Contracted services", Amount2024: 2205, Amount2023: 2100},
		},
		CashFlows: []statement.CashFlowRow{
			{Activity: "Operating activities", Amount2024: 4100, Amount2023: 3694},
			{Activity: "Capital activities", Amount2024: -4400, Amount2023: -4100},
		},
		ServiceSegments: []statement.SegmentRow{
			{Segment: "Transportation", Revenue: 2400, Expenses: 3100},
			{Segment: "Social and family services", Revenue: 3900, Expenses: 4200},
			{Segment: "Protection", Revenue: 900, Expenses: 2600},
		},
		DebtRepayment: []statement.DebtRepaymentRow{
			{Year: 2026, Principal: 620, Interest: 290},
			{Year: 2025, Principal: 600, Interest: 300},
		},
		EntitySegments: []statement.SegmentRow{
			{Segment: "City operations", Revenue: 14000, Expenses: 12000},
			{Segment: "Transit commission", Revenue: 4202, Expenses: 4186},
		},
		Transfers: []statement.TransferRow{
			{Program: "Transit funding", Amount2024: 1510, Amount2023: 1275},
			{Program: "Gas tax", Amount2024: 372, Amount2023: 350},
			{Program: "Housing programs", Amount2024: 2787, Amount2023: 2575},
		},
		DeferredRevenue: []statement.DeferredRevenueRow{
			{Item: "Development charges", Amount2024: 2105, Amount2023: 1890},
			{Item: "Parkland dedication", Amount2024: 612, Amount2023: 570},
		},
		CapitalAssets: []statement.CapitalAssetRow{
			{AssetClass: "Infrastructure", Additions2024: 2612},
			{AssetClass: "Buildings", Additions2024: 780},
		},
		KPI: []statement.KPIRow{
			{Metric: "revenue", Year: 2022, Value: 15100},
			{Metric: "revenue", Year: 2023, Value: 16325},
			{Metric: "revenue", Year: 2024, Value: 18202},
			{Metric: "expenses", Year: 2022, Value: 14200},
			{Metric: "expenses", Year: 2023, Value: 15075},
			{Metric: "expenses", Year: 2024, Value: 16186},
			{Metric: "net_debt", Year: 2023, Value: 9602},
			{Metric: "net_debt", Year: 2024, Value: 10005},
			{Metric: "unknown_metric", Year: 2024, Value: 1},
		},
	}
}

func TestMetricHistory(t *testing.T) {
	history := MetricHistory(fixtureDataset())

	rev := history[model.MetricRevenue]
	if len(rev) != 3 {
		t.Fatalf("revenue history = %v, want 3 points", rev)
	}
	if rev[0].Year != 2022 || rev[2].Year != 2024 {
		t.Errorf("revenue history not year-sorted: %v", rev)
	}

	surplus := history[model.MetricSurplus]
	if len(surplus) != 3 {
		t.Fatalf("surplus history = %v, want 3 derived points", surplus)
	}
	if surplus[2].Value != 18202-16186 {
		t.Errorf("2024 surplus = %v, want %v", surplus[2].Value, 18202-16186)
	}

	if _, ok := history[model.Metric("unknown_metric")]; ok {
		t.Error("unknown metric should not appear in history")
	}
}

func TestSummarize(t *testing.T) {
	stats := Summarize(fixtureDataset())

	if stats.FiscalYear != 2024 {
		t.Errorf("FiscalYear = %d, want 2024", stats.FiscalYear)
	}
	if stats.Revenue != 18202 || stats.Expenses != 16186 {
		t.Errorf("Revenue/Expenses = %v/%v, want 18202/16186", stats.Revenue, stats.Expenses)
	}
	if stats.Surplus != 2016 {
		t.Errorf("Surplus = %v, want 2016", stats.Surplus)
	}
	if stats.RevenueBudgetVariance != 530 {
		t.Errorf("RevenueBudgetVariance = %v, want 530", stats.RevenueBudgetVariance)
	}
	if math.Abs(stats.RevenueYoY-0.11498) > 0.001 {
		t.Errorf("RevenueYoY = %v, want ~0.115", stats.RevenueYoY)
	}
	if stats.NetDebt != 10005 {
		t.Errorf("NetDebt = %v, want 10005", stats.NetDebt)
	}
	if stats.OperatingCash != 4100 {
		t.Errorf("OperatingCash = %v, want 4100", stats.OperatingCash)
	}
	if math.Abs(stats.DebtToRevenue-10005.0/18202.0) > 1e-9 {
		t.Errorf("DebtToRevenue = %v", stats.DebtToRevenue)
	}
}

func TestRevenueMix(t *testing.T) {
	mix := RevenueMix(fixtureDataset())

	if len(mix) != 3 {
		t.Fatalf("mix = %v, want 3 sources above the total line", mix)
	}
	if mix[0].Category != "Property taxes" {
		t.Errorf("first source = %q, want Property taxes", mix[0].Category)
	}
	want := 5808.0 / 18202.0
	if math.Abs(mix[0].Share-want) > 1e-9 {
		t.Errorf("property tax share = %v, want %v", mix[0].Share, want)
	}
}

func TestExpenseMix_SortedDescending(t *testing.T) {
	mix := ExpenseMix(fixtureDataset())

	if len(mix) != 3 {
		t.Fatalf("mix = %v, want 3 categories", mix)
	}
	if mix[0].Category != "Salaries and benefits" {
		t.Errorf("largest category = %q, want Salaries and benefits", mix[0].Category)
	}
	var total float64
	for _, s := range mix {
		total += s.Share
	}
	if math.Abs(total-1) > 1e-9 {
		t.Errorf("shares sum to %v, want 1", total)
	}
}

func TestServiceSegments_SortedByExpenses(t *testing.T) {
	segments := ServiceSegments(fixtureDataset())

	if segments[0].Segment != "Social and family services" {
		t.Errorf("largest segment = %q", segments[0].Segment)
	}
	if segments[0].Net != 3900-4200 {
		t.Errorf("Net = %v, want %v", segments[0].Net, 3900-4200)
	}
}

func TestEntitySegments_SortedByExpenses(t *testing.T) {
	segments := EntitySegments(fixtureDataset())

	if len(segments) != 2 {
		t.Fatalf("segments = %v, want 2", segments)
	}
	if segments[0].Segment != "City operations" {
		t.Errorf("largest entity = %q", segments[0].Segment)
	}
	if segments[1].Net != 4202-4186 {
		t.Errorf("transit net = %v, want %v", segments[1].Net, 4202-4186)
	}
}

func TestTransferMix_SortedDescending(t *testing.T) {
	mix := TransferMix(fixtureDataset())

	if len(mix) != 3 {
		t.Fatalf("mix = %v, want 3 programs", mix)
	}
	if mix[0].Category != "Housing programs" {
		t.Errorf("largest program = %q", mix[0].Category)
	}
	want := 2787.0 / (1510 + 372 + 2787)
	if math.Abs(mix[0].Share-want) > 1e-9 {
		t.Errorf("housing share = %v, want %v", mix[0].Share, want)
	}
}

func TestDeferredRevenueTotal(t *testing.T) {
	y2024, y2023 := DeferredRevenueTotal(fixtureDataset())
	if y2024 != 2105+612 || y2023 != 1890+570 {
		t.Errorf("totals = %v/%v, want %v/%v", y2024, y2023, 2105+612, 1890+570)
	}
}

func TestCapitalAdditions(t *testing.T) {
	if got := CapitalAdditions(fixtureDataset()); got != 2612+780 {
		t.Errorf("CapitalAdditions = %v, want %v", got, 2612+780)
	}
}

func TestSummarize_PositionFallbackWithoutKPI(t *testing.T) {
	ds := fixtureDataset()
	ds.KPI = nil
	ds.FinancialPosition = []statement.FinancialPositionRow{
		{Item: "Net debt", Amount2024: 10005, Amount2023: 9602},
		{Item: "Tangible capital assets", Amount2024: 45417, Amount2023: 42853},
		{Item: "Portfolio investments", Amount2024: 10310, Amount2023: 9694},
	}

	stats := Summarize(ds)
	if stats.NetDebt != 10005 {
		t.Errorf("NetDebt = %v, want 10005 from the position statement", stats.NetDebt)
	}
	if math.Abs(stats.NetDebtYoY-(10005.0-9602.0)/9602.0) > 1e-9 {
		t.Errorf("NetDebtYoY = %v", stats.NetDebtYoY)
	}
	if stats.CapitalAssets != 45417 || stats.Investments != 10310 {
		t.Errorf("CapitalAssets/Investments = %v/%v", stats.CapitalAssets, stats.Investments)
	}
}

func TestDebtSchedule(t *testing.T) {
	rows, total := DebtSchedule(fixtureDataset())

	if rows[0].Year != 2025 {
		t.Errorf("first year = %d, want 2025 (sorted)", rows[0].Year)
	}
	if total != 600+300+620+290 {
		t.Errorf("total = %v, want %v", total, 600+300+620+290)
	}
}
