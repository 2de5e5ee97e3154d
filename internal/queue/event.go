// Package queue carries analytics degradation events over RabbitMQ.
package queue

import "time"

// DegradedQueue is the durable queue degradation events are published to.
const DegradedQueue = "analytics.query_degraded"

// QueryDegradedEvent is published whenever a query falls back to an empty
// result. It carries enough for an operator log line without touching the
// database.
type QueryDegradedEvent struct {
	Query      string `json:"query"`
	Error      string `json:"error"`
	OccurredAt string `json:"occurred_at"`
}

// NewQueryDegradedEvent stamps an event with the current UTC time.
func NewQueryDegradedEvent(query string, err error) QueryDegradedEvent {
	ev := QueryDegradedEvent{Query: query, OccurredAt: time.Now().UTC().Format(time.RFC3339)}
	if err != nil {
		ev.Error = err.Error()
	}
	return ev
}
