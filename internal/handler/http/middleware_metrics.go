package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/go-auth-gate/internal/metrics"
	"github.com/go-chi/chi/v5"
)

// withMetrics observes request duration labelled by the matched route
// pattern, so unknown paths do not create new series.
func withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		metrics.HTTPRequestsInFlight.Inc()
		defer metrics.HTTPRequestsInFlight.Dec()

		rw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(rw, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}

		metrics.HTTPRequestDurationSeconds.
			WithLabelValues(r.Method, route, strconv.Itoa(rw.statusCode())).
			Observe(time.Since(start).Seconds())
	})
}
