package handler

import (
	"fmt"
	"net/http"

	"github.com/bolao/landing/internal/metrics"
)

// MetricsHandler exposes in-memory metrics.
type MetricsHandler struct {
	snapshotter metrics.Snapshotter
}

// NewMetricsHandler creates a new MetricsHandler.
func NewMetricsHandler(snapshotter metrics.Snapshotter) *MetricsHandler {
	return &MetricsHandler{snapshotter: snapshotter}
}

// Metrics returns metrics in Prometheus exposition format.
//
// GET /metrics
func (h *MetricsHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	if h.snapshotter == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	snap := h.snapshotter.Snapshot()

	w.Header().Set("Content-Type", "text/plain; version=0.0.4")

	writeMetric(w, "bolao_stats_loads_total{status=\"success\"} %d\n", snap.StatsLoads)
	writeMetric(w, "bolao_stats_loads_total{status=\"failed\"} %d\n", snap.StatsLoadFailures)
	writeMetric(w, "bolao_stats_load_duration_seconds_count %d\n", snap.StatsLoads)
	writeMetric(w, "bolao_stats_load_duration_seconds_sum %.6f\n", float64(snap.StatsLoadTotalNs)/1e9)

	writeMetric(w, "bolao_pools_created_total %d\n", snap.PoolsCreated)
	for _, kind := range []string{"validation", "network", "backend", "clipboard"} {
		writeMetric(w, "bolao_pool_create_failures_total{kind=%q} %d\n", kind, snap.PoolCreateFailures[kind])
	}
	writeMetric(w, "bolao_submissions_rejected_total %d\n", snap.SubmissionsRejected)
}

func writeMetric(w http.ResponseWriter, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
