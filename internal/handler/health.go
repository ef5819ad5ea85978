package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/forgo/trivia/api/internal/model"
)

// MsgDatabaseUnreachable is the /health error when the store does not answer
const MsgDatabaseUnreachable = "Database unreachable"

// Pinger reports whether the backing store is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports service liveness
type HealthHandler struct {
	db      Pinger
	timeout time.Duration
}

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// NewHealthHandler creates a health handler that pings db
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db, timeout: 2 * time.Second}
}

// Health handles GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		slog.Warn("health check failed", slog.String("error", err.Error()))
		WriteError(w, model.NewServiceUnavailableError(MsgDatabaseUnreachable))
		return
	}

	WriteJSON(w, http.StatusOK, HealthResponse{Status: model.MsgServiceHealthy, Database: model.MsgServiceHealthy})
}
