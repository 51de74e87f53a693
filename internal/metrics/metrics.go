// Package metrics records operational metrics for the dashboard data core:
// how long loading, filtering and aggregation take, how many records pass the
// quality gate, and which source the working dataset came from.
//
// Callers use the package-level Record* helpers. The backend is global and
// pluggable and defaults to a no-op, so recording is always safe even when no
// metrics system is configured. Concrete systems live in subpackages.
package metrics

import "time"

// Metric names shared by all backends.
const (
	StepTotal           = "moviedash_step_total"
	StepDurationSeconds = "moviedash_step_duration_seconds"
	RecordsTotal        = "moviedash_records_total"
	SourceTotal         = "moviedash_source_total"
)

// Labels are string key/value pairs attached to a metric.
type Labels map[string]string

// Backend is the minimal interface for metrics backends.
type Backend interface {
	// IncCounter increments a counter by delta.
	IncCounter(name string, delta float64, labels Labels)
	// ObserveHistogram records a value in a latency/duration style metric.
	ObserveHistogram(name string, value float64, labels Labels)
	// Flush pushes or flushes metrics, if the backend needs it (e.g. Pushgateway).
	Flush() error
}

type nopBackend struct{}

func (nopBackend) IncCounter(string, float64, Labels)       {}
func (nopBackend) ObserveHistogram(string, float64, Labels) {}
func (nopBackend) Flush() error                             { return nil }

var backend Backend = nopBackend{}

// SetBackend installs a concrete backend. Passing nil keeps the existing backend.
func SetBackend(b Backend) {
	if b == nil {
		return
	}
	backend = b
}

// Flush delegates to the current backend.
func Flush() error {
	return backend.Flush()
}

// RecordStep counts one execution of step and observes its duration.
// Steps are "load", "filter" and "aggregate".
func RecordStep(job, step string, err error, d time.Duration) {
	status := "success"
	if err != nil {
		status = "failure"
	}
	lbls := Labels{"job": job, "step": step, "status": status}
	backend.IncCounter(StepTotal, 1, lbls)
	backend.ObserveHistogram(StepDurationSeconds, d.Seconds(), lbls)
}

// RecordRow adds delta to the record counter for kind: "raw", "admitted",
// "dropped" or "view". Non-positive deltas are ignored.
func RecordRow(job, kind string, delta int64) {
	if delta <= 0 {
		return
	}
	backend.IncCounter(RecordsTotal, float64(delta), Labels{"job": job, "kind": kind})
}

// RecordSource counts a completed load by dataset origin.
func RecordSource(job, origin string) {
	backend.IncCounter(SourceTotal, 1, Labels{"job": job, "origin": origin})
}
