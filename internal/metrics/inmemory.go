package metrics

import (
	"sync"
	"sync/atomic"
	"time"
)

// Snapshot captures current in-memory counters.
type Snapshot struct {
	StatsLoads          uint64
	StatsLoadFailures   uint64
	StatsLoadTotalNs    int64
	PoolsCreated        uint64
	PoolCreateFailures  map[string]uint64
	SubmissionsRejected uint64
}

// InMemoryRecorder stores metrics in memory. It backs GET /metrics and tests.
type InMemoryRecorder struct {
	statsLoads          uint64
	statsLoadFailures   uint64
	statsLoadTotalNs    int64
	poolsCreated        uint64
	submissionsRejected uint64

	mu       sync.Mutex
	failures map[string]uint64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{failures: make(map[string]uint64)}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	m.mu.Lock()
	failures := make(map[string]uint64, len(m.failures))
	for k, v := range m.failures {
		failures[k] = v
	}
	m.mu.Unlock()

	return Snapshot{
		StatsLoads:          atomic.LoadUint64(&m.statsLoads),
		StatsLoadFailures:   atomic.LoadUint64(&m.statsLoadFailures),
		StatsLoadTotalNs:    atomic.LoadInt64(&m.statsLoadTotalNs),
		PoolsCreated:        atomic.LoadUint64(&m.poolsCreated),
		PoolCreateFailures:  failures,
		SubmissionsRejected: atomic.LoadUint64(&m.submissionsRejected),
	}
}

// ObserveStatsLoad records a successful aggregate load.
func (m *InMemoryRecorder) ObserveStatsLoad(duration time.Duration) {
	atomic.AddUint64(&m.statsLoads, 1)
	atomic.AddInt64(&m.statsLoadTotalNs, duration.Nanoseconds())
}

// IncStatsLoadFailed increments the failed load counter.
func (m *InMemoryRecorder) IncStatsLoadFailed() {
	atomic.AddUint64(&m.statsLoadFailures, 1)
}

// IncPoolCreated increments the pool created counter.
func (m *InMemoryRecorder) IncPoolCreated() {
	atomic.AddUint64(&m.poolsCreated, 1)
}

// IncPoolCreateFailed increments the failure counter for kind.
func (m *InMemoryRecorder) IncPoolCreateFailed(kind string) {
	m.mu.Lock()
	m.failures[kind]++
	m.mu.Unlock()
}

// IncSubmissionRejected increments the duplicate submission counter.
func (m *InMemoryRecorder) IncSubmissionRejected() {
	atomic.AddUint64(&m.submissionsRejected, 1)
}
