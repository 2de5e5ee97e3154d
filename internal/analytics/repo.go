package analytics

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"math"

	"github.com/shopspring/decimal"
)

// Querier is the read side of a database handle.  *sql.DB, *sql.Conn and
// *sql.Tx all satisfy it.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// Notifier is told about every query that degraded to an empty result.
type Notifier interface {
	QueryDegraded(ctx context.Context, query string, err error)
}

// Repo runs the dashboard queries.  It holds no per-request state and is
// safe for concurrent use.
type Repo struct {
	db       Querier
	dialect  Dialect
	log      *slog.Logger
	notifier Notifier
}

// Option configures optional Repo collaborators.
type Option func(*Repo)

// WithNotifier forwards recovered query failures to n.
func WithNotifier(n Notifier) Option {
	return func(r *Repo) { r.notifier = n }
}

// NewRepo constructs a Repo over db.  A nil db is allowed: every query then
// reports ErrUnavailable and returns its empty value.
func NewRepo(db Querier, dialect Dialect, logger *slog.Logger, opts ...Option) *Repo {
	if pool, ok := db.(*sql.DB); ok && pool == nil {
		db = nil
	}
	if logger == nil {
		logger = slog.Default()
	}
	r := &Repo{
		db:      db,
		dialect: dialect,
		log:     logger.With("component", "analytics"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

type rowScanner interface {
	Scan(dest ...any) error
}

// degrade converts a data-source failure into the error recorded on a
// degraded Result.
func (r *Repo) degrade(ctx context.Context, name string, err error) error {
	wrapped := fmt.Errorf("analytics: %s: %w", name, err)
	r.log.ErrorContext(ctx, "query degraded to empty result", "query", name, "error", err)
	if r.notifier != nil {
		r.notifier.QueryDegraded(ctx, name, wrapped)
	}
	return wrapped
}

// collect runs a multi-row query.  The returned slice is never nil.
func collect[T any](ctx context.Context, r *Repo, name, query string, scan func(rowScanner) (T, error)) Result[[]T] {
	out := []T{}
	if r.db == nil {
		return Result[[]T]{Value: out, Err: r.degrade(ctx, name, ErrUnavailable)}
	}
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return Result[[]T]{Value: out, Err: r.degrade(ctx, name, err)}
	}
	defer rows.Close()

	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return Result[[]T]{Value: []T{}, Err: r.degrade(ctx, name, err)}
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return Result[[]T]{Value: []T{}, Err: r.degrade(ctx, name, err)}
	}
	return Result[[]T]{Value: out}
}

// single runs an aggregate query expected to produce at most one row.  No
// row at all yields the zero record.
func single[T any](ctx context.Context, r *Repo, name, query string, scan func(rowScanner) (T, error)) Result[T] {
	var zero T
	if r.db == nil {
		return Result[T]{Value: zero, Err: r.degrade(ctx, name, ErrUnavailable)}
	}
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return Result[T]{Value: zero, Err: r.degrade(ctx, name, err)}
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return Result[T]{Value: zero, Err: r.degrade(ctx, name, err)}
		}
		return Result[T]{Value: zero}
	}
	v, err := scan(rows)
	if err != nil {
		return Result[T]{Value: zero, Err: r.degrade(ctx, name, err)}
	}
	return Result[T]{Value: v}
}

// Coercion from nullable driver values to the fixed semantic types.

func money(d decimal.NullDecimal) float64 {
	if !d.Valid {
		return 0
	}
	return d.Decimal.Round(2).InexactFloat64()
}

func count(n sql.NullInt64) int64 {
	if !n.Valid {
		return 0
	}
	return n.Int64
}

func number(f sql.NullFloat64) float64 {
	if !f.Valid || math.IsNaN(f.Float64) || math.IsInf(f.Float64, 0) {
		return 0
	}
	return math.Round(f.Float64*100) / 100
}

func percent(f sql.NullFloat64) float64 {
	v := number(f)
	switch {
	case v < 0:
		return 0
	case v > 100:
		return 100
	}
	return v
}

func text(s sql.NullString) string {
	if !s.Valid {
		return ""
	}
	return s.String
}

// quarterLabel renders the synthesized year-quarter label, e.g. 2024-Q2.
func quarterLabel(year, quarter int64) string {
	return fmt.Sprintf("%d-Q%d", year, quarter)
}
