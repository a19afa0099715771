package middleware

import (
	"net/http"
	"strings"
	"time"

	"hotels/pkg/metrics"
)

// Metrics records request count and latency per method and route.
func Metrics() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapped := newResponseWriter(w)

			next.ServeHTTP(wrapped, r)

			metrics.ObserveHTTP(routeLabel(r.URL.Path), r.Method, wrapped.statusCode, time.Since(start))
		})
	}
}

// routeLabel collapses hotel ids so label cardinality stays bounded.
func routeLabel(path string) string {
	segments := strings.Split(strings.Trim(path, "/"), "/")
	if len(segments) == 0 || segments[0] != "hotels" {
		return "other"
	}
	if len(segments) > 1 {
		segments[1] = ":id"
	}
	if len(segments) > 3 {
		return "other"
	}
	return "/" + strings.Join(segments, "/")
}
