package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// runRepo implements RunRepo on the ent SQL driver.
type runRepo struct {
	drv *entsql.Driver
}

// runRow is the scanned form of a validation_runs row.
type runRow struct {
	ID         string `sql:"id"`
	BatchID    string `sql:"batch_id"`
	Timestamp  int64  `sql:"timestamp"`
	Source     string `sql:"source"`
	Digest     string `sql:"digest"`
	ModelKind  string `sql:"model_kind"`
	Valid      bool   `sql:"valid"`
	ErrorKind  string `sql:"error_kind"`
	Message    string `sql:"message"`
	DurationUs int64  `sql:"duration_us"`
}

var runColumns = []string{
	"id", "batch_id", "timestamp", "source", "digest",
	"model_kind", "valid", "error_kind", "message", "duration_us",
}

func (row runRow) run() Run {
	return Run{
		ID:        row.ID,
		BatchID:   row.BatchID,
		Timestamp: time.Unix(0, row.Timestamp).UTC(),
		Source:    row.Source,
		Digest:    row.Digest,
		ModelKind: row.ModelKind,
		Valid:     row.Valid,
		ErrorKind: row.ErrorKind,
		Message:   row.Message,
		Duration:  time.Duration(row.DurationUs) * time.Microsecond,
	}
}

func (r *runRepo) Append(ctx context.Context, run *Run) error {
	if run.ID == "" {
		return errors.New("append run: empty ID")
	}
	if run.Timestamp.IsZero() {
		run.Timestamp = time.Now().UTC()
	}
	query, args := entsql.Dialect(dialect.SQLite).
		Insert(validationRunsTable).
		Columns(runColumns...).
		Values(
			run.ID,
			run.BatchID,
			run.Timestamp.UnixNano(),
			run.Source,
			run.Digest,
			run.ModelKind,
			run.Valid,
			run.ErrorKind,
			run.Message,
			run.Duration.Microseconds(),
		).
		Query()
	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("append run: %w", err)
	}
	return nil
}

func (r *runRepo) List(ctx context.Context, opts QueryOpts) ([]Run, error) {
	b := entsql.Dialect(dialect.SQLite)
	sel := b.Select(runColumns...).From(b.Table(validationRunsTable))
	if opts.BatchID != "" {
		sel.Where(entsql.EQ("batch_id", opts.BatchID))
	}
	if opts.InvalidOnly {
		sel.Where(entsql.EQ("valid", false))
	}
	if !opts.From.IsZero() {
		sel.Where(entsql.GTE("timestamp", opts.From.UnixNano()))
	}
	if !opts.To.IsZero() {
		sel.Where(entsql.LTE("timestamp", opts.To.UnixNano()))
	}
	sel.OrderBy(entsql.Desc("timestamp"), entsql.Asc("id"))
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}

	rows, err := r.query(ctx, sel)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	runs := make([]Run, 0, len(rows))
	for _, row := range rows {
		runs = append(runs, row.run())
	}
	return runs, nil
}

func (r *runRepo) Get(ctx context.Context, id string) (*Run, error) {
	b := entsql.Dialect(dialect.SQLite)
	sel := b.Select(runColumns...).
		From(b.Table(validationRunsTable)).
		Where(entsql.EQ("id", id)).
		Limit(1)

	rows, err := r.query(ctx, sel)
	if err != nil {
		return nil, fmt.Errorf("get run %s: %w", id, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	run := rows[0].run()
	return &run, nil
}

func (r *runRepo) query(ctx context.Context, sel *entsql.Selector) ([]runRow, error) {
	query, args := sel.Query()
	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []runRow
	if err := entsql.ScanSlice(rows, &out); err != nil {
		return nil, err
	}
	return out, nil
}
