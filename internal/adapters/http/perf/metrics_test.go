package perf

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics_Counters(t *testing.T) {
	m := NewMetrics()

	m.PageRendered("fr", "public")
	m.PageRendered("fr", "public")
	m.PageRendered("en", "admin")
	m.AdminEntered("sequence")
	m.KeyReceived()
	m.ContactSubmitted("sent")

	if got := testutil.ToFloat64(m.PageRenders.WithLabelValues("fr", "public")); got != 2 {
		t.Errorf("fr/public renders = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.PageRenders.WithLabelValues("en", "admin")); got != 1 {
		t.Errorf("en/admin renders = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.AdminEntries.WithLabelValues("sequence")); got != 1 {
		t.Errorf("sequence entries = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.KeysReceived); got != 1 {
		t.Errorf("keys = %v, want 1", got)
	}
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	m.PageRendered("fr", "public")
	m.ObserveRequest("page", "GET", 200, 0.01)
	m.ObserveQuery("select", 0.001)
	m.AdminEntered("button")
	m.KeyReceived()
	m.ContactSubmitted("invalid")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	if rec.Code != 404 {
		t.Errorf("nil Handler status = %d, want 404", rec.Code)
	}
}

func TestMetrics_HandlerExposesFamilies(t *testing.T) {
	m := NewMetrics()
	m.ObserveRequest("page", "GET", 200, 0.02)
	m.ObserveQuery("insert", 0.001)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, _ := io.ReadAll(rec.Body)
	for _, name := range []string{
		"colloque_http_request_duration_seconds",
		"colloque_db_query_duration_seconds",
		"go_goroutines",
	} {
		if !strings.Contains(string(body), name) {
			t.Errorf("metrics output missing %s", name)
		}
	}
}
