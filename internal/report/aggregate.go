// Package report turns the transcribed statement tables into the
// per-year metrics, breakdowns, and trend outlooks the commands render.
package report

import (
	"sort"

	"github.com/mohamedfarazalam/city-of-toronto-2024fs/internal/model"
	"github.com/mohamedfarazalam/city-of-toronto-2024fs/internal/statement"
)

// Item labels of the total lines in the operations table. The rows
// above TotalRevenueItem are the individual revenue sources, matching
// how the statement of operations is transcribed top to bottom.
const (
	TotalRevenueItem  = "Total revenue"
	TotalExpensesItem = "Total expenses"
	SurplusItem       = "Annual surplus"
)

// MetricHistory extracts the multi-year series for each tracked metric
// from the long-format KPI table, sorted by year. The surplus series is
// derived as revenue minus expenses for years where both are present.
func MetricHistory(ds statement.Dataset) map[model.Metric][]model.YearValue {
	history := make(map[model.Metric][]model.YearValue)

	for _, row := range ds.KPI {
		m := model.Metric(row.Metric)
		switch m {
		case model.MetricRevenue, model.MetricExpenses, model.MetricNetDebt,
			model.MetricCapitalAssets, model.MetricInvestments:
			history[m] = append(history[m], model.YearValue{Year: row.Year, Value: row.Value})
		}
	}

	for m := range history {
		sort.Slice(history[m], func(i, j int) bool {
			return history[m][i].Year < history[m][j].Year
		})
	}

	// Derived surplus series.
	expByYear := make(map[int]float64)
	for _, yv := range history[model.MetricExpenses] {
		expByYear[yv.Year] = yv.Value
	}
	var surplus []model.YearValue
	for _, yv := range history[model.MetricRevenue] {
		if exp, ok := expByYear[yv.Year]; ok {
			surplus = append(surplus, model.YearValue{Year: yv.Year, Value: yv.Value - exp})
		}
	}
	if len(surplus) > 0 {
		history[model.MetricSurplus] = surplus
	}

	return history
}

// Summarize computes the headline figures for the reporting year.
func Summarize(ds statement.Dataset) model.SummaryStats {
	stats := model.SummaryStats{FiscalYear: 2024}
	history := MetricHistory(ds)
	if yvs := history[model.MetricRevenue]; len(yvs) > 0 {
		stats.FiscalYear = yvs[len(yvs)-1].Year
	}

	for _, row := range ds.Operations {
		switch row.Item {
		case TotalRevenueItem:
			stats.Revenue = row.Actual2024
			stats.RevenueBudgetVariance = row.Actual2024 - row.Budget2024
			stats.RevenueYoY = yoy(row.Actual2024, row.Actual2023)
		case TotalExpensesItem:
			stats.Expenses = row.Actual2024
			stats.ExpensesYoY = yoy(row.Actual2024, row.Actual2023)
		}
	}
	stats.Surplus = stats.Revenue - stats.Expenses

	if prev := prevSurplus(ds); prev != 0 {
		stats.SurplusYoY = yoy(stats.Surplus, prev)
	}

	stats.NetDebt, stats.NetDebtYoY = latestWithYoY(history[model.MetricNetDebt])
	stats.CapitalAssets, _ = latestWithYoY(history[model.MetricCapitalAssets])
	stats.Investments, _ = latestWithYoY(history[model.MetricInvestments])

	// Without the KPI table the position figures still come from the
	// statement of financial position, with YoY from its two columns.
	for _, row := range ds.FinancialPosition {
		switch row.Item {
		case "Net debt":
			if stats.NetDebt == 0 {
				stats.NetDebt = row.Amount2024
				stats.NetDebtYoY = yoy(row.Amount2024, row.Amount2023)
			}
		case "Tangible capital assets":
			if stats.CapitalAssets == 0 {
				stats.CapitalAssets = row.Amount2024
			}
		case "Portfolio investments":
			if stats.Investments == 0 {
				stats.Investments = row.Amount2024
			}
		}
	}

	for _, row := range ds.CashFlows {
		if row.Activity == "Operating activities" {
			stats.OperatingCash = row.Amount2024
		}
	}

	if stats.Revenue != 0 {
		stats.DebtToRevenue = stats.NetDebt / stats.Revenue
	}

	return stats
}

func prevSurplus(ds statement.Dataset) float64 {
	var rev, exp float64
	for _, row := range ds.Operations {
		switch row.Item {
		case TotalRevenueItem:
			rev = row.Actual2023
		case TotalExpensesItem:
			exp = row.Actual2023
		}
	}
	return rev - exp
}

func latestWithYoY(series []model.YearValue) (latest, growth float64) {
	if len(series) == 0 {
		return 0, 0
	}
	latest = series[len(series)-1].Value
	if len(series) > 1 {
		growth = yoy(latest, series[len(series)-2].Value)
	}
	return latest, growth
}

func yoy(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return (current - previous) / previous
}

// RevenueMix returns the revenue sources for the reporting year with
// their share of total revenue. Sources are the operations rows above
// the total-revenue line.
func RevenueMix(ds statement.Dataset) []model.MixShare {
	var sources []model.MixShare
	var total float64

	for _, row := range ds.Operations {
		if row.Item == TotalRevenueItem {
			total = row.Actual2024
			break
		}
		sources = append(sources, model.MixShare{
			Category: row.Item,
			Amount:   row.Actual2024,
			PrevYear: row.Actual2023,
		})
	}

	return withShares(sources, total)
}

// ExpenseMix returns the expenses-by-object breakdown with shares,
// sorted largest first.
func ExpenseMix(ds statement.Dataset) []model.MixShare {
	var shares []model.MixShare
	var total float64

	for _, row := range ds.Expenses {
		shares = append(shares, model.MixShare{
			Category: row.Category,
			Amount:   row.Amount2024,
			PrevYear: row.Amount2023,
		})
		total += row.Amount2024
	}

	shares = withShares(shares, total)
	sort.Slice(shares, func(i, j int) bool {
		return shares[i].Amount > shares[j].Amount
	})
	return shares
}

func withShares(shares []model.MixShare, total float64) []model.MixShare {
	if total == 0 {
		return shares
	}
	for i := range shares {
		shares[i].Share = shares[i].Amount / total
	}
	return shares
}

// TransferMix returns the government transfer programs with their
// share of total transfer revenue, sorted largest first.
func TransferMix(ds statement.Dataset) []model.MixShare {
	var shares []model.MixShare
	var total float64

	for _, row := range ds.Transfers {
		shares = append(shares, model.MixShare{
			Category: row.Program,
			Amount:   row.Amount2024,
			PrevYear: row.Amount2023,
		})
		total += row.Amount2024
	}

	shares = withShares(shares, total)
	sort.Slice(shares, func(i, j int) bool {
		return shares[i].Amount > shares[j].Amount
	})
	return shares
}

// ServiceSegments returns per-segment figures sorted by expenses
// descending, the way the segmented-information note presents them.
func ServiceSegments(ds statement.Dataset) []model.SegmentStats {
	return segmentStats(ds.ServiceSegments)
}

// EntitySegments returns the consolidated-entity breakdown (City
// operations, boards, and agencies), sorted by expenses descending.
func EntitySegments(ds statement.Dataset) []model.SegmentStats {
	return segmentStats(ds.EntitySegments)
}

func segmentStats(rows []statement.SegmentRow) []model.SegmentStats {
	segments := make([]model.SegmentStats, 0, len(rows))
	for _, row := range rows {
		segments = append(segments, model.SegmentStats{
			Segment:  row.Segment,
			Revenue:  row.Revenue,
			Expenses: row.Expenses,
			Net:      row.Revenue - row.Expenses,
		})
	}
	sort.Slice(segments, func(i, j int) bool {
		return segments[i].Expenses > segments[j].Expenses
	})
	return segments
}

// DeferredRevenueTotal sums the deferred-revenue obligations for both
// printed years.
func DeferredRevenueTotal(ds statement.Dataset) (y2024, y2023 float64) {
	for _, row := range ds.DeferredRevenue {
		y2024 += row.Amount2024
		y2023 += row.Amount2023
	}
	return y2024, y2023
}

// CapitalAdditions sums the reporting-year additions across all
// tangible capital asset classes.
func CapitalAdditions(ds statement.Dataset) float64 {
	var total float64
	for _, row := range ds.CapitalAssets {
		total += row.Additions2024
	}
	return total
}

// DebtSchedule returns the future principal+interest obligations in
// year order, plus the grand total.
func DebtSchedule(ds statement.Dataset) (rows []statement.DebtRepaymentRow, total float64) {
	rows = make([]statement.DebtRepaymentRow, len(ds.DebtRepayment))
	copy(rows, ds.DebtRepayment)
	sort.Slice(rows, func(i, j int) bool { return rows[i].Year < rows[j].Year })
	for _, r := range rows {
		total += r.Principal + r.Interest
	}
	return rows, total
}
