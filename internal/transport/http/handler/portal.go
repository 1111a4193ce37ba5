package handler

import (
	"log/slog"
	"net/http"

	"github.com/client-portal-api/internal/application/portal"
	"github.com/client-portal-api/internal/transport/http/middleware"
)

// PortalHandler serves the client portal data and the public offer listing.
type PortalHandler struct {
	svc portal.Service
}

func NewPortalHandler(svc portal.Service) *PortalHandler {
	return &PortalHandler{svc: svc}
}

// Portal returns the agreements owned by the session's client. Both access
// gates have already run by the time this handler is reached.
func (h *PortalHandler) Portal(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	agreements, err := h.svc.AgreementsForClient(r.Context(), identity.ID)
	if err != nil {
		slog.Error("failed to list client agreements", "client_id", identity.ID, "err", err)
		writeJSON(w, http.StatusInternalServerError, MessageEnvelope{Message: "Wystąpił nieznany błąd"})
		return
	}
	writeJSON(w, http.StatusOK, PortalEnvelope{Email: identity.Email, Agreements: agreements})
}

// Offer returns the full agreements catalogue; no authentication required.
func (h *PortalHandler) Offer(w http.ResponseWriter, r *http.Request) {
	agreements, err := h.svc.Offer(r.Context())
	if err != nil {
		slog.Error("failed to list offer", "err", err)
		writeJSON(w, http.StatusInternalServerError, MessageEnvelope{Message: "Wystąpił nieznany błąd"})
		return
	}
	writeJSON(w, http.StatusOK, OfferEnvelope{Agreements: agreements})
}
