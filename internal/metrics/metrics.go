// Package metrics provides lightweight hooks for instrumentation.
package metrics

import "time"

// Recorder captures metric events for the application.
// Implementations can expose these to Prometheus, StatsD, etc.
type Recorder interface {
	// Aggregate loading
	ObserveStatsLoad(duration time.Duration)
	IncStatsLoadFailed()

	// Pool creation
	IncPoolCreated()
	IncPoolCreateFailed(kind string) // kind: "validation", "network", "backend", "clipboard"
	IncSubmissionRejected()
}

// Snapshotter exposes a snapshot of current metrics.
type Snapshotter interface {
	Snapshot() Snapshot
}
