// Package report persists validation outcomes to a SQLite database so batch
// runs can be inspected after the fact.
package report

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// Entry is one validated file's outcome. Fatal carries the structural error
// that stopped the decode, empty when the file decoded end to end.
type Entry struct {
	CheckedAt time.Time
	Path      string
	OK        bool
	Fatal     string
	Version   string
	Errors    int
	Warnings  int

	ExpectedFrames int
	ObservedFrames int
	RolledBack     int64
}

// Writer appends validation results to one results table.
type Writer struct {
	sqlDB *sql.DB
}

const schema = `CREATE TABLE IF NOT EXISTS results (
	id              INTEGER PRIMARY KEY AUTOINCREMENT,
	checked_at      INTEGER NOT NULL,
	path            TEXT NOT NULL,
	ok              INTEGER NOT NULL,
	fatal           TEXT NOT NULL DEFAULT '',
	version         TEXT NOT NULL DEFAULT '',
	errors          INTEGER NOT NULL,
	warnings        INTEGER NOT NULL,
	expected_frames INTEGER NOT NULL,
	observed_frames INTEGER NOT NULL,
	rolled_back     INTEGER NOT NULL
)`

// Open opens or creates the report database at path.
func Open(path string) (*Writer, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("report path is required")
	}
	// busy_timeout covers concurrent workers appending to one database
	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open report db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping report db: %w", err)
	}
	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("create results table: %w", err)
	}
	return &Writer{sqlDB: sqlDB}, nil
}

// Close closes the database handle.
func (w *Writer) Close() error {
	if w == nil || w.sqlDB == nil {
		return nil
	}
	return w.sqlDB.Close()
}

// Record appends one result row. A zero CheckedAt is stamped with the
// current time.
func (w *Writer) Record(ctx context.Context, e Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if w == nil || w.sqlDB == nil {
		return fmt.Errorf("report writer is not configured")
	}
	checkedAt := e.CheckedAt.UTC()
	if checkedAt.IsZero() {
		checkedAt = time.Now().UTC()
	}

	_, err := w.sqlDB.ExecContext(
		ctx,
		`INSERT INTO results (
		   checked_at, path, ok, fatal, version,
		   errors, warnings, expected_frames, observed_frames, rolled_back
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		checkedAt.UnixMilli(),
		e.Path,
		e.OK,
		e.Fatal,
		e.Version,
		e.Errors,
		e.Warnings,
		e.ExpectedFrames,
		e.ObservedFrames,
		e.RolledBack,
	)
	if err != nil {
		return fmt.Errorf("record result: %w", err)
	}
	return nil
}

// Recent returns up to limit results, newest first.
func (w *Writer) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if w == nil || w.sqlDB == nil {
		return nil, fmt.Errorf("report writer is not configured")
	}
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be greater than zero")
	}

	rows, err := w.sqlDB.QueryContext(
		ctx,
		`SELECT checked_at, path, ok, fatal, version,
		        errors, warnings, expected_frames, observed_frames, rolled_back
		   FROM results
		  ORDER BY id DESC
		  LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var checkedAt int64
		if err := rows.Scan(
			&checkedAt, &e.Path, &e.OK, &e.Fatal, &e.Version,
			&e.Errors, &e.Warnings, &e.ExpectedFrames, &e.ObservedFrames, &e.RolledBack,
		); err != nil {
			return nil, fmt.Errorf("list results: %w", err)
		}
		e.CheckedAt = time.UnixMilli(checkedAt).UTC()
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}
	return entries, nil
}
