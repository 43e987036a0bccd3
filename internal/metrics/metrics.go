// Package metrics provides lightweight hooks for instrumentation.
package metrics

import "time"

// Recorder captures metric events for the application.
// Implementations can expose these to Prometheus, StatsD, etc.
type Recorder interface {
	// Account metrics
	IncUserRegistered()
	IncLoginSuccess()
	IncLoginFailure()

	// Authentication gate metrics
	IncAuthRejected()

	// Upstream data source metrics
	IncUpstreamFetch(status string) // status: "success" or "error"
	ObserveUpstreamFetchDuration(duration time.Duration)
	ObserveEntriesReturned(count int)
}

// Snapshotter exposes a snapshot of current metrics.
type Snapshotter interface {
	Snapshot() Snapshot
}
