package handler

import (
	"fmt"
	"net/http"

	"github.com/PradeepKumarReddy-098/pioneer/internal/metrics"
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

	writeMetric(w, "pioneer_users_registered_total %d\n", snap.UsersRegistered)
	writeMetric(w, "pioneer_logins_total{status=\"success\"} %d\n", snap.LoginSuccesses)
	writeMetric(w, "pioneer_logins_total{status=\"failure\"} %d\n", snap.LoginFailures)
	writeMetric(w, "pioneer_auth_rejections_total %d\n", snap.AuthRejections)

	writeMetric(w, "pioneer_upstream_fetches_total{status=\"success\"} %d\n", snap.UpstreamFetchSuccesses)
	writeMetric(w, "pioneer_upstream_fetches_total{status=\"error\"} %d\n", snap.UpstreamFetchErrors)
	writeMetric(w, "pioneer_upstream_fetch_duration_seconds_count %d\n", snap.UpstreamDurationCount)
	writeMetric(w, "pioneer_upstream_fetch_duration_seconds_sum %.6f\n", float64(snap.UpstreamDurationTotalNs)/1e9)

	writeMetric(w, "pioneer_entries_returned_count %d\n", snap.EntriesReturnedCount)
	writeMetric(w, "pioneer_entries_returned_sum %d\n", snap.EntriesReturnedTotal)
}

func writeMetric(w http.ResponseWriter, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
