// ABOUTME: Request and error counters surfaced by the health endpoint
// ABOUTME: Explicitly constructed and injected; no package-level mutable state

package metrics

import "sync/atomic"

// Counters tracks process-wide request and error totals. Construct with
// New and pass it to whoever needs to record or report.
type Counters struct {
	requests atomic.Int64
	errors   atomic.Int64
}

// New creates an empty counter set.
func New() *Counters {
	return &Counters{}
}

// IncRequests records one handled request.
func (c *Counters) IncRequests() {
	c.requests.Add(1)
}

// IncErrors records one failed request.
func (c *Counters) IncErrors() {
	c.errors.Add(1)
}

// Snapshot is a point-in-time view of the counters for reporting.
type Snapshot struct {
	Requests int64 `json:"requests_total"`
	Errors   int64 `json:"errors_total"`
}

// Snapshot returns the current counter values.
func (c *Counters) Snapshot() Snapshot {
	return Snapshot{
		Requests: c.requests.Load(),
		Errors:   c.errors.Load(),
	}
}
