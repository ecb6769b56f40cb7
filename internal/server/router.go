package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"calculator-service/internal/dispatcher"
	"calculator-service/internal/handlers"
	"calculator-service/internal/observability"
)

// StatusSource is the read-only view of the dispatcher the ops endpoints need.
type StatusSource interface {
	Running() bool
	Stats() dispatcher.Stats
}

// NewRouter serves the operational endpoints: /health, /status and /metrics.
// Calculations are not exposed over HTTP.
func NewRouter(status StatusSource) http.Handler {

	r := chi.NewRouter()

	r.Use(observability.RequestIDMiddleware)
	r.Use(observability.TracingMiddleware)
	r.Use(observability.LoggingMiddleware)

	r.Get("/health", handlers.Health(status.Running))

	r.Get("/status", func(w http.ResponseWriter, r *http.Request) {
		handlers.WriteJSON(w, http.StatusOK, status.Stats())
	})

	r.Handle("/metrics", observability.PrometheusHandler(newRegistry(status)))

	return r
}
