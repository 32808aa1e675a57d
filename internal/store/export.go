// Package store writes the derived dataset (tidy metrics, fitted
// trends, forecasts, segments) to a SQLite file for downstream querying.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mohamedfarazalam/city-of-toronto-2024fs/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// DB is an open export database.
type DB struct {
	db *sql.DB
}

// Open opens or creates the export database at the given path.
func Open(dbPath string) (*DB, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating export dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening export db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &DB{db: db}, nil
}

// Close closes the export database.
func (d *DB) Close() error {
	return d.db.Close()
}

// WriteMetrics stores the per-year metric history.
func (d *DB) WriteMetrics(history map[model.Metric][]model.YearValue) error {
	tx, err := d.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for metric, series := range history {
		for _, yv := range series {
			_, err := tx.Exec(`INSERT OR REPLACE INTO metrics (metric, year, value)
				VALUES (?, ?, ?)`, string(metric), yv.Year, yv.Value)
			if err != nil {
				return err
			}
		}
	}

	return tx.Commit()
}

// WriteTrends stores one row of fit statistics per metric.
func (d *DB) WriteTrends(trends []model.TrendStats) error {
	tx, err := d.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, ts := range trends {
		_, err := tx.Exec(`INSERT OR REPLACE INTO trends
			(metric, first_year, last_year, slope, intercept, r2, cagr)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			string(ts.Metric), ts.FirstYear, ts.LastYear,
			ts.Slope, ts.Intercept, ts.R2, ts.CAGR,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// WriteForecasts stores projection rows. A degenerate row gets NULL
// bounds: the interval does not exist and must not round-trip as zero.
func (d *DB) WriteForecasts(rows []model.ProjectionRow) error {
	tx, err := d.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, row := range rows {
		var lower, upper any
		if !row.Degenerate {
			lower, upper = row.Lower, row.Upper
		}
		degenerate := 0
		if row.Degenerate {
			degenerate = 1
		}

		_, err := tx.Exec(`INSERT OR REPLACE INTO forecasts
			(metric, year, estimate, lower, upper, confidence, degenerate)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			string(row.Metric), row.Year, row.Estimate,
			lower, upper, row.Confidence, degenerate,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// WriteSegments stores the per-segment reporting-year figures.
func (d *DB) WriteSegments(segments []model.SegmentStats) error {
	tx, err := d.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, s := range segments {
		_, err := tx.Exec(`INSERT OR REPLACE INTO segments (segment, revenue, expenses, net)
			VALUES (?, ?, ?, ?)`, s.Segment, s.Revenue, s.Expenses, s.Net)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// MetricCount returns the number of stored metric observations.
func (d *DB) MetricCount() (int, error) {
	var count int
	err := d.db.QueryRow("SELECT COUNT(*) FROM metrics").Scan(&count)
	return count, err
}

// ForecastCount returns the number of stored forecast rows.
func (d *DB) ForecastCount() (int, error) {
	var count int
	err := d.db.QueryRow("SELECT COUNT(*) FROM forecasts").Scan(&count)
	return count, err
}
