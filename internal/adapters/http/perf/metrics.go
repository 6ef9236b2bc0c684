// Package perf holds the site's Prometheus instruments.
package perf

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics groups every instrument the site records. A nil *Metrics is valid
// and records nothing, which keeps handler tests free of registry setup.
type Metrics struct {
	registry *prometheus.Registry

	RequestDuration *prometheus.HistogramVec
	QueryDuration   *prometheus.HistogramVec
	PageRenders     *prometheus.CounterVec
	AdminEntries    *prometheus.CounterVec
	KeysReceived    prometheus.Counter
	ContactMessages *prometheus.CounterVec
}

// NewMetrics registers all instruments on a fresh registry.
// POST: Handler() serves them along with the Go runtime collectors
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "colloque",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route group, method and status.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method", "status"}),
		QueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "colloque",
			Name:      "db_query_duration_seconds",
			Help:      "SQLite statement latency by SQL verb.",
			Buckets:   []float64{.0005, .001, .005, .01, .05, .1, .5},
		}, []string{"op"}),
		PageRenders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "colloque",
			Name:      "page_renders_total",
			Help:      "Rendered pages by language and tree.",
		}, []string{"lang", "tree"}),
		AdminEntries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "colloque",
			Name:      "admin_entries_total",
			Help:      "Times a visitor switched to the admin view, by how.",
		}, []string{"via"}),
		KeysReceived: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "colloque",
			Name:      "view_keys_total",
			Help:      "Keystrokes forwarded to view detectors.",
		}),
		ContactMessages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "colloque",
			Name:      "contact_messages_total",
			Help:      "Contact form submissions by outcome.",
		}, []string{"outcome"}),
	}
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.RequestDuration,
		m.QueryDuration,
		m.PageRenders,
		m.AdminEntries,
		m.KeysReceived,
		m.ContactMessages,
	)
	return m
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveRequest records one served request. route is a coarse group, never
// a raw path, so label cardinality stays fixed.
func (m *Metrics) ObserveRequest(route, method string, status int, seconds float64) {
	if m == nil {
		return
	}
	m.RequestDuration.WithLabelValues(route, method, strconv.Itoa(status)).Observe(seconds)
}

// ObserveQuery records one database call.
func (m *Metrics) ObserveQuery(op string, seconds float64) {
	if m == nil {
		return
	}
	m.QueryDuration.WithLabelValues(op).Observe(seconds)
}

// PageRendered counts a rendered page.
func (m *Metrics) PageRendered(lang, tree string) {
	if m == nil {
		return
	}
	m.PageRenders.WithLabelValues(lang, tree).Inc()
}

// AdminEntered counts a switch to the admin view; via is "button" or "sequence".
func (m *Metrics) AdminEntered(via string) {
	if m == nil {
		return
	}
	m.AdminEntries.WithLabelValues(via).Inc()
}

// KeyReceived counts a forwarded keystroke.
func (m *Metrics) KeyReceived() {
	if m == nil {
		return
	}
	m.KeysReceived.Inc()
}

// ContactSubmitted counts a contact form outcome: "sent", "invalid" or "failed".
func (m *Metrics) ContactSubmitted(outcome string) {
	if m == nil {
		return
	}
	m.ContactMessages.WithLabelValues(outcome).Inc()
}
