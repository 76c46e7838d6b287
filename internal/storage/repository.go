// Package storage keeps an optional history of aggregation runs in a
// local SQLite database. The archive never participates in the transform
// itself; a run that cannot be archived still succeeds.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"tally/internal/core"

	_ "modernc.org/sqlite"
)

type SQLiteRepository struct {
	db *sql.DB
}

// Run is one archived invocation of the transform.
type Run struct {
	ID              int64
	InputPath       string
	OutputPath      string
	RowsTotal       int
	RowsDropped     int
	Categories      int
	GrandTotalCents int64
	CreatedAt       time.Time
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// RecordRun archives one run and its per-category totals in a single
// transaction, returning the run ID.
func (r *SQLiteRepository) RecordRun(ctx context.Context, run Run, agg core.Aggregation) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin archive tx: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO runs (input_path, output_path, rows_total, rows_dropped, categories, grand_total_cents)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		run.InputPath, run.OutputPath, run.RowsTotal, run.RowsDropped, agg.Len(), agg.GrandTotal().Cents)
	if err != nil {
		return 0, fmt.Errorf("insert run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("run id: %w", err)
	}

	for _, t := range agg.Totals {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO run_totals (run_id, category, total_cents) VALUES (?, ?, ?)`,
			runID, t.Category, t.Total.Cents); err != nil {
			return 0, fmt.Errorf("insert total for %s: %w", t.Category, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit archive tx: %w", err)
	}

	slog.InfoContext(ctx, "Run archived",
		"run_id", runID,
		"rows_total", run.RowsTotal,
		"rows_dropped", run.RowsDropped,
		"categories", agg.Len())

	return runID, nil
}

// LastRun returns the most recently archived run, or sql.ErrNoRows when
// the archive is empty.
func (r *SQLiteRepository) LastRun(ctx context.Context) (*Run, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, input_path, output_path, rows_total, rows_dropped, categories, grand_total_cents, created_at
		 FROM runs ORDER BY id DESC LIMIT 1`)
	var run Run
	if err := row.Scan(&run.ID, &run.InputPath, &run.OutputPath, &run.RowsTotal,
		&run.RowsDropped, &run.Categories, &run.GrandTotalCents, &run.CreatedAt); err != nil {
		return nil, fmt.Errorf("scan last run: %w", err)
	}
	return &run, nil
}

// RunTotals returns the archived per-category totals of a run, ordered by
// category.
func (r *SQLiteRepository) RunTotals(ctx context.Context, runID int64) ([]core.CategoryTotal, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT category, total_cents FROM run_totals WHERE run_id = ? ORDER BY category`, runID)
	if err != nil {
		return nil, fmt.Errorf("query run totals: %w", err)
	}
	defer rows.Close()

	var totals []core.CategoryTotal
	for rows.Next() {
		var t core.CategoryTotal
		if err := rows.Scan(&t.Category, &t.Total.Cents); err != nil {
			return nil, fmt.Errorf("scan run total: %w", err)
		}
		totals = append(totals, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate run totals: %w", err)
	}
	return totals, nil
}
