package middleware

import (
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"
)

// idleVisitor is how long a bucket survives without requests.
const idleVisitor = 5 * time.Minute

// RateLimiter is a per-client token bucket. Buckets idle for longer than
// five minutes are dropped on a later call to Allow.
type RateLimiter struct {
	mu        sync.Mutex
	visitors  map[string]*visitor
	rate      int           // tokens per interval
	interval  time.Duration // refill interval
	lastSweep time.Time
	now       func() time.Time
}

type visitor struct {
	tokens     int
	lastSeen   time.Time
	lastRefill time.Time
}

// NewRateLimiter allows rate requests per interval for each client.
// PRE: rate > 0; interval > 0
func NewRateLimiter(rate int, interval time.Duration) *RateLimiter {
	return &RateLimiter{
		visitors: make(map[string]*visitor),
		rate:     rate,
		interval: interval,
		now:      time.Now,
	}
}

// Allow spends one token from ip's bucket.
// PRE: ip is non-empty
// POST: Returns true if within rate limit, false if exceeded
func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	rl.sweep(now)

	v, ok := rl.visitors[ip]
	if !ok {
		rl.visitors[ip] = &visitor{tokens: rl.rate - 1, lastSeen: now, lastRefill: now}
		return true
	}

	// whole intervals only, so a steady trickle cannot creep past the rate
	if periods := int(now.Sub(v.lastRefill) / rl.interval); periods > 0 {
		v.tokens = min(v.tokens+periods*rl.rate, rl.rate)
		v.lastRefill = v.lastRefill.Add(time.Duration(periods) * rl.interval)
	}
	v.lastSeen = now

	if v.tokens <= 0 {
		return false
	}
	v.tokens--
	return true
}

// Len returns the number of tracked clients.
func (rl *RateLimiter) Len() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.visitors)
}

// sweep drops idle buckets at most once a minute. Callers hold mu.
func (rl *RateLimiter) sweep(now time.Time) {
	if now.Sub(rl.lastSweep) < time.Minute {
		return
	}
	rl.lastSweep = now
	for ip, v := range rl.visitors {
		if now.Sub(v.lastSeen) > idleVisitor {
			delete(rl.visitors, ip)
		}
	}
}

// RateLimit returns middleware that spends one token per request from
// limiter. Requests whose path appears in routes spend from that limiter
// instead, so chatty endpoints do not eat the page budget.
func RateLimit(limiter *RateLimiter, routes map[string]*RateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rl := limiter
			if own, ok := routes[r.URL.Path]; ok {
				rl = own
			}
			ip := clientIP(r)
			if !rl.Allow(ip) {
				slog.Warn("rate_limit_exceeded", "ip", ip, "path", r.URL.Path)
				http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// clientIP strips the port so every connection from one host shares a bucket.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
