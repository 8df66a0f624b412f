package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// withMetrics records per-request Prometheus metrics. The route label uses
// the matched chi pattern rather than the raw path so that /users/1 and
// /users/2 land in the same series.
func (h *Handler) withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.metrics == nil {
			next.ServeHTTP(w, r)
			return
		}

		done := h.metrics.RequestStarted()
		defer done()

		start := time.Now()

		mw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(mw, r)

		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = r.URL.Path
		}

		status := mw.status
		if !mw.wroteHeader {
			status = http.StatusOK
		}

		h.metrics.RecordRequest(r.Method, route, status, time.Since(start))
	})
}
