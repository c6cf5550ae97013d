package handlers

import (
	"log/slog"
	nethttp "net/http"
	"time"

	"github.com/preston-bernstein/team-roster-bot/internal/domain"
)

type nowFunc func() time.Time

// Snapshotter exposes a read-only copy of the roster.
type Snapshotter interface {
	Snapshot() domain.Document
}

// HealthResponse is the body of the health endpoint.
type HealthResponse struct {
	Status        string `json:"status"`
	Players       int    `json:"players"`
	Teams         int    `json:"teams"`
	UptimeSeconds int64  `json:"uptimeSeconds"`
}

// Handler serves the operational endpoints.
type Handler struct {
	roster  Snapshotter
	logger  *slog.Logger
	now     nowFunc
	started time.Time
	readyFn func() bool
}

// NewHandler constructs a Handler. readyFn may be nil, in which case the
// service always reports ready.
func NewHandler(roster Snapshotter, logger *slog.Logger, readyFn func() bool) *Handler {
	return &Handler{
		roster:  roster,
		logger:  logger,
		now:     time.Now,
		started: time.Now(),
		readyFn: readyFn,
	}
}

// Health reports liveness and roster counts.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	doc := h.roster.Snapshot()
	writeJSON(w, nethttp.StatusOK, HealthResponse{
		Status:        "ok",
		Players:       len(doc.Players),
		Teams:         len(doc.Teams),
		UptimeSeconds: int64(h.now().Sub(h.started).Seconds()),
	}, h.logger)
}

// Ready reports whether the chat session is connected.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if h.readyFn == nil || h.readyFn() {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	if logger := loggerFromContext(r, h.logger); logger != nil {
		logger.Debug("readiness probe failed")
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, "not ready", h.logger)
}

// NotFound answers unknown routes with a JSON error.
func (h *Handler) NotFound(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
}

// MethodNotAllowed answers known routes hit with the wrong verb.
func (h *Handler) MethodNotAllowed(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
}
