package statement

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
)

// LoadResult holds the parsed dataset plus bookkeeping about the load.
type LoadResult struct {
	Dataset     Dataset
	TablesRead  int
	Missing     []string
	ParseErrors []error
}

// ProgressFunc is called once per table as loading proceeds.
type ProgressFunc func(table string, current, total int)

// Load parses every expected table found in the data directory.
// Missing tables are recorded, not fatal; a table that exists but fails
// to parse is recorded as a parse error and left empty. Only an
// unreadable directory aborts the load.
func Load(dir string, progressFn ProgressFunc) (*LoadResult, error) {
	scan, err := ScanDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", dir, err)
	}

	result := &LoadResult{Missing: scan.Missing}
	ds := &result.Dataset

	// Each table gets a typed destination slice.
	targets := []struct {
		file string
		dest any
	}{
		{"01_financial_position.csv", &ds.FinancialPosition},
		{"02_operations.csv", &ds.Operations},
		{"03_expense_breakdown.csv", &ds.Expenses},
		{"04_cash_flows.csv", &ds.CashFlows},
		{"05_capital_assets.csv", &ds.CapitalAssets},
		{"06_segment_service.csv", &ds.ServiceSegments},
		{"07_segment_entity.csv", &ds.EntitySegments},
		{"08_investments.csv", &ds.Investments},
		{"09_debt_repayment.csv", &ds.DebtRepayment},
		{"10_deferred_revenue.csv", &ds.DeferredRevenue},
		{"11_kpi_metrics.csv", &ds.KPI},
		{"12_government_transfers.csv", &ds.Transfers},
	}

	for i, tgt := range targets {
		if progressFn != nil {
			progressFn(tgt.file, i+1, len(targets))
		}

		path := filepath.Join(dir, tgt.file)
		if err := readTable(path, tgt.dest); err != nil {
			if os.IsNotExist(err) {
				continue // already recorded by the scan
			}
			result.ParseErrors = append(result.ParseErrors,
				fmt.Errorf("%s: %w", tgt.file, err))
			continue
		}
		result.TablesRead++
	}

	return result, nil
}

// readTable unmarshals one CSV file into a slice of row structs.
func readTable(path string, dest any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	if err := gocsv.UnmarshalFile(f, dest); err != nil {
		return fmt.Errorf("parsing csv: %w", err)
	}
	return nil
}
