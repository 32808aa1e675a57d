package statement

import (
	"os"
	"path/filepath"
	"sort"
)

// TableFiles maps each expected CSV file name to a short description
// used in status output. File names follow the transcription order of
// the statement notes.
var TableFiles = map[string]string{
	"01_financial_position.csv":   "statement of financial position",
	"02_operations.csv":           "statement of operations",
	"03_expense_breakdown.csv":    "expenses by object",
	"04_cash_flows.csv":           "statement of cash flows",
	"05_capital_assets.csv":       "tangible capital assets",
	"06_segment_service.csv":      "service segments",
	"07_segment_entity.csv":       "entity segments",
	"08_investments.csv":          "investment portfolio",
	"09_debt_repayment.csv":       "debt repayment schedule",
	"10_deferred_revenue.csv":     "deferred revenue",
	"11_kpi_metrics.csv":          "multi-year KPI history",
	"12_government_transfers.csv": "government transfers",
}

// ScanResult reports which expected tables are present in a data
// directory and which unexpected CSVs sit alongside them.
type ScanResult struct {
	Dir        string
	Found      []string // expected files present, sorted
	Missing    []string // expected files absent, sorted
	Unexpected []string // other *.csv files, sorted
}

// ScanDir checks the data directory for the expected table files.
// A missing directory is an error; missing individual tables are not,
// so partial transcriptions can still be loaded.
func ScanDir(dir string) (ScanResult, error) {
	result := ScanResult{Dir: dir}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return result, err
	}

	present := make(map[string]bool)
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".csv" {
			continue
		}
		if _, ok := TableFiles[e.Name()]; ok {
			present[e.Name()] = true
			result.Found = append(result.Found, e.Name())
		} else {
			result.Unexpected = append(result.Unexpected, e.Name())
		}
	}

	for name := range TableFiles {
		if !present[name] {
			result.Missing = append(result.Missing, name)
		}
	}

	sort.Strings(result.Found)
	sort.Strings(result.Missing)
	sort.Strings(result.Unexpected)

	return result, nil
}
