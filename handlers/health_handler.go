package handlers

import (
	"context"
	"net/http"
	"time"
)

type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthHandler struct {
	db Pinger
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	status, dbStatus := http.StatusOK, "ok"
	if err := h.db.PingContext(ctx); err != nil {
		status, dbStatus = http.StatusServiceUnavailable, "unavailable"
	}

	response := jsonResponse{
		"status":    http.StatusText(status),
		"database":  dbStatus,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}
	if err := writeJSON(w, status, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
