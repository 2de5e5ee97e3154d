// Package analytics runs the dashboard's aggregate queries against the hotel
// database.  Every query returns a Result: a failed query never surfaces as
// an error return, it yields the zero value with Err describing what was
// recovered, so callers can render empty metrics and still tell
// "legitimately empty" from "query failed".
package analytics

import "errors"

// ErrUnavailable is recorded when no data source is configured or the pool
// could not be opened at startup.
var ErrUnavailable = errors.New("data source unavailable")

// Result is the outcome of one aggregate query.
type Result[T any] struct {
	Value T
	Err   error
}

// Degraded reports whether Value is empty because the query failed.
func (r Result[T]) Degraded() bool { return r.Err != nil }
