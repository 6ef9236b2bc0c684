// Package middleware holds the HTTP middleware and the per-visitor view
// sessions of the site.
package middleware

import "net/http"

// Chain wraps h so the first middleware listed runs innermost.
func Chain(h http.Handler, middlewares ...func(http.Handler) http.Handler) http.Handler {
	for _, m := range middlewares {
		h = m(h)
	}
	return h
}
