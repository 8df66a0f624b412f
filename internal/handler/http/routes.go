package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/go-user-mgmt/internal/metrics"
)

// Init wires the full route table and middleware chain.
//
// The fault boundary sits outermost so that exactly one place converts
// panics into 500 responses. The access-log middleware sits inside the
// authenticator: requests rejected by auth are not latency-logged, only
// requests that reach a route handler are.
func (h *Handler) Init(registry *prometheus.Registry) *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withMetrics)
	router.Use(h.recovery)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Use(h.withLogging)

		r.Post("/auth/token", h.issueToken)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Use(h.withLogging)

		r.Get("/users", h.listUsers)
		r.Get("/users/{id}", h.getUser)
		r.Post("/users", h.createUser)
		r.Put("/users/{id}", h.updateUser)
		r.Delete("/users/{id}", h.deleteUser)
	})

	if registry != nil {
		router.Method("GET", "/metrics", metrics.SetupMetricsRoute(registry))
	}

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
