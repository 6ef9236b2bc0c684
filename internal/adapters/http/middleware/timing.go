package middleware

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"colloque/internal/adapters/http/perf"
)

// DefaultSlowRequest is the threshold used when Timing gets zero.
const DefaultSlowRequest = 200 * time.Millisecond

var requestIDCounter uint64

// statusWriter captures the status code written by a handler.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (sw *statusWriter) WriteHeader(code int) {
	sw.status = code
	sw.ResponseWriter.WriteHeader(code)
}

var statusWriterPool = sync.Pool{
	New: func() any { return &statusWriter{} },
}

// RouteOf maps a path to a small fixed set of labels for the request
// histogram: "page", "admin", "keys", "api", "health" or "other".
func RouteOf(path string) string {
	switch {
	case path == "/" || path == "/contact":
		return "page"
	case strings.HasPrefix(path, "/admin/"):
		return "admin"
	case path == "/api/view/keys":
		return "keys"
	case strings.HasPrefix(path, "/api/"):
		return "api"
	case path == "/healthz":
		return "health"
	}
	return "other"
}

// Timing returns middleware that tags each request with an X-Request-Id,
// logs its duration and feeds the request histogram. Static assets and
// metric scrapes pass through untouched. Slow requests log at WARN; the
// rest log at DEBUG, except keystrokes, which only log when slow.
func Timing(metrics *perf.Metrics, threshold time.Duration) func(http.Handler) http.Handler {
	if threshold <= 0 {
		threshold = DefaultSlowRequest
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := r.URL.Path
			if strings.HasPrefix(path, "/static/") || path == "/metrics" {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()
			reqID := atomic.AddUint64(&requestIDCounter, 1)
			route := RouteOf(path)
			w.Header().Set("X-Request-Id", strconv.FormatUint(reqID, 10))

			sw := statusWriterPool.Get().(*statusWriter)
			sw.ResponseWriter = w
			sw.status = http.StatusOK
			defer func() {
				elapsed := time.Since(start)
				attrs := []any{
					"request_id", reqID,
					"method", r.Method,
					"path", path,
					"status", sw.status,
					"duration_ms", float64(elapsed.Microseconds()) / 1000.0,
				}
				switch {
				case elapsed >= threshold:
					slog.Warn("slow_request", attrs...)
				case route != "keys":
					slog.Debug("request", attrs...)
				}

				metrics.ObserveRequest(route, r.Method, sw.status, elapsed.Seconds())

				sw.ResponseWriter = nil
				statusWriterPool.Put(sw)
			}()

			next.ServeHTTP(sw, r)
		})
	}
}
