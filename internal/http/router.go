// Package http exposes the bot's operational endpoints.
package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"

	"github.com/preston-bernstein/team-roster-bot/internal/http/handlers"
	"github.com/preston-bernstein/team-roster-bot/internal/http/middleware"
	"github.com/preston-bernstein/team-roster-bot/internal/metrics"
)

// NewRouter registers the ops routes. metricsHandler may be nil when telemetry is disabled.
func NewRouter(handler *handlers.Handler, metricsHandler nethttp.Handler, logger *slog.Logger, recorder *metrics.Recorder) nethttp.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Middleware(logger, recorder))
	r.NotFound(handler.NotFound)
	r.MethodNotAllowed(handler.MethodNotAllowed)

	r.Get("/healthz", handler.Health)
	r.Get("/readyz", handler.Ready)
	if metricsHandler != nil {
		r.Method(nethttp.MethodGet, "/metrics", metricsHandler)
	}
	return r
}
