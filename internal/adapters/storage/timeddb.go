package storage

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"strings"
	"time"
	"unicode"

	"colloque/internal/adapters/http/perf"
)

// SQLDB is the database interface used by all stores.
// Both *sql.DB and *TimedDB satisfy this interface.
type SQLDB interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Compile-time check that *sql.DB satisfies SQLDB.
var _ SQLDB = (*sql.DB)(nil)

// DefaultSlowQuery is the threshold above which a query is logged at WARN.
const DefaultSlowQuery = 50 * time.Millisecond

// TimedDB wraps a *sql.DB to log slow or failed statements and feed the
// query histogram, labelled by SQL verb.
type TimedDB struct {
	db        *sql.DB
	metrics   *perf.Metrics
	threshold time.Duration
}

// Compile-time check that *TimedDB satisfies SQLDB.
var _ SQLDB = (*TimedDB)(nil)

// NewTimedDB wraps db with timing instrumentation.
// PRE: db is a valid database connection; metrics may be nil
// POST: every call is timed; calls at or above threshold log slow_query
func NewTimedDB(db *sql.DB, metrics *perf.Metrics, threshold time.Duration) *TimedDB {
	if threshold <= 0 {
		threshold = DefaultSlowQuery
	}
	return &TimedDB{db: db, metrics: metrics, threshold: threshold}
}

// verb labels a statement by its leading keyword, lower-cased.
func verb(query string) string {
	q := strings.TrimSpace(query)
	if i := strings.IndexFunc(q, unicode.IsSpace); i > 0 {
		q = q[:i]
	}
	return strings.ToLower(q)
}

func (t *TimedDB) observe(query string, start time.Time, err error) {
	elapsed := time.Since(start)
	op := verb(query)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		slog.Error("query_failed", "op", op, "query", query, "error", err.Error())
	}
	if elapsed >= t.threshold {
		slog.Warn("slow_query", "op", op, "query", query, "duration_ms", elapsed.Milliseconds())
	}
	t.metrics.ObserveQuery(op, elapsed.Seconds())
}

// ExecContext runs and times a statement.
func (t *TimedDB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	start := time.Now()
	result, err := t.db.ExecContext(ctx, query, args...)
	t.observe(query, start, err)
	return result, err
}

// QueryContext runs and times a query.
func (t *TimedDB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	start := time.Now()
	rows, err := t.db.QueryContext(ctx, query, args...)
	t.observe(query, start, err)
	return rows, err
}

// QueryRowContext times a single-row query. Scan errors surface to the
// caller, not here.
func (t *TimedDB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	start := time.Now()
	row := t.db.QueryRowContext(ctx, query, args...)
	t.observe(query, start, row.Err())
	return row
}
