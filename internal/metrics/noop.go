package metrics

import "time"

// NoopRecorder implements Recorder with no-op methods.
type NoopRecorder struct{}

// NewNoop returns a Recorder that discards all metrics.
func NewNoop() Recorder {
	return &NoopRecorder{}
}

// ObserveStatsLoad is a no-op.
func (n *NoopRecorder) ObserveStatsLoad(duration time.Duration) {}

// IncStatsLoadFailed is a no-op.
func (n *NoopRecorder) IncStatsLoadFailed() {}

// IncPoolCreated is a no-op.
func (n *NoopRecorder) IncPoolCreated() {}

// IncPoolCreateFailed is a no-op.
func (n *NoopRecorder) IncPoolCreateFailed(kind string) {}

// IncSubmissionRejected is a no-op.
func (n *NoopRecorder) IncSubmissionRejected() {}
