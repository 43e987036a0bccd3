package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PradeepKumarReddy-098/pioneer/internal/metrics"
)

func TestMetrics_Exposition(t *testing.T) {
	t.Parallel()

	recorder := metrics.NewInMemory()
	recorder.IncUserRegistered()
	recorder.IncLoginSuccess()
	recorder.IncLoginFailure()
	recorder.IncUpstreamFetch("success")
	recorder.ObserveEntriesReturned(7)

	h := NewMetricsHandler(recorder)
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()

	h.Metrics(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	body := rec.Body.String()
	for _, line := range []string{
		"pioneer_users_registered_total 1",
		`pioneer_logins_total{status="success"} 1`,
		`pioneer_logins_total{status="failure"} 1`,
		`pioneer_upstream_fetches_total{status="success"} 1`,
		"pioneer_entries_returned_sum 7",
	} {
		if !strings.Contains(body, line) {
			t.Errorf("exposition missing %q", line)
		}
	}
}

func TestMetrics_NoSnapshotter(t *testing.T) {
	t.Parallel()

	h := NewMetricsHandler(nil)
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()

	h.Metrics(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", rec.Code)
	}
}
