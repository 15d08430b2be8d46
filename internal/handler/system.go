package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type SystemHandler struct {
	base
	db Pinger
}

func NewSystemHandler(db Pinger, opts Options) *SystemHandler {
	return &SystemHandler{base: newBase(opts), db: db}
}

type infoResponse struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Status  string `json:"status"`
	Docs    string `json:"docs"`
	Health  string `json:"health"`
}

// Root handles GET /.
func (h *SystemHandler) Root(w http.ResponseWriter, r *http.Request) {
	h.respondWithJSON(w, r, http.StatusOK, infoResponse{
		Name:    "Smart Office AI Adoption Hub API",
		Version: "1.0.0",
		Status:  "operational",
		Docs:    "/api/docs",
		Health:  "/health",
	})
}

type healthResponse struct {
	Status   string `json:"status"`
	API      string `json:"api"`
	Database string `json:"database"`
}

// Health handles GET /health.
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		slog.WarnContext(r.Context(), "Database health check failed", "error", err)
		h.respondWithJSON(w, r, http.StatusServiceUnavailable, healthResponse{
			Status:   "service_unavailable",
			API:      "healthy",
			Database: "unhealthy",
		})
		return
	}

	h.respondWithJSON(w, r, http.StatusOK, healthResponse{
		Status:   "healthy",
		API:      "healthy",
		Database: "healthy",
	})
}
