package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/client-portal-api/internal/application/registration"
	"github.com/client-portal-api/internal/domain"
	"github.com/client-portal-api/internal/pkg/validate"
)

// RegisterHandler handles new client registrations.
type RegisterHandler struct {
	svc registration.Service
}

func NewRegisterHandler(svc registration.Service) *RegisterHandler {
	return &RegisterHandler{svc: svc}
}

func (h *RegisterHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req domain.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.svc.Register(r.Context(), req)
	var vErr *validate.Error
	switch {
	case errors.As(err, &vErr):
		writeJSON(w, http.StatusBadRequest, MessageEnvelope{Message: vErr.Message})
	case errors.Is(err, domain.ErrConflict):
		writeJSON(w, http.StatusConflict, MessageEnvelope{Message: registration.MsgAlreadyRegistered})
	case err != nil:
		slog.Error("registration failed", "err", err)
		writeJSON(w, http.StatusInternalServerError, MessageEnvelope{Message: "Wystąpił nieznany błąd"})
	default:
		writeJSON(w, http.StatusOK, MessageEnvelope{Message: registration.MsgSuccess})
	}
}
