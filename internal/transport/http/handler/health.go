package handler

import (
	"context"
	"net/http"
)

// Pinger is the liveness surface of the store.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports process and store liveness.
type HealthHandler struct {
	db Pinger
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) Ping(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Ping(r.Context()); err != nil {
		writeError(w, http.StatusServiceUnavailable, "store unreachable")
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "ok"})
}
