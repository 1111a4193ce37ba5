package handler

import (
	"encoding/json"
	"net/http"

	"github.com/client-portal-api/internal/domain"
)

// StatusEnvelope carries the portal's status/message vocabulary
// (logged_in, not_found, incorrect_password, unknown_error, email_verified,
// incorrect_code).
type StatusEnvelope struct {
	Status  string `json:"status,omitempty"`
	Message string `json:"message,omitempty"`
}

// MessageEnvelope is the generic response wrapper.
type MessageEnvelope struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// PortalEnvelope wraps the client portal page data.
type PortalEnvelope struct {
	Email      string             `json:"email"`
	Agreements []domain.Agreement `json:"agreements"`
}

// OfferEnvelope wraps the public agreements catalogue.
type OfferEnvelope struct {
	Agreements []domain.Agreement `json:"agreements"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, MessageEnvelope{Error: msg})
}
