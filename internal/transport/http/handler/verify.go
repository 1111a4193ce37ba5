package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/client-portal-api/internal/application/verification"
)

// VerifyHandler handles email verification code submissions.
type VerifyHandler struct {
	svc verification.Service
}

func NewVerifyHandler(svc verification.Service) *VerifyHandler {
	return &VerifyHandler{svc: svc}
}

func (h *VerifyHandler) Verify(w http.ResponseWriter, r *http.Request) {
	// json.Number tolerates clients posting the code as either a string or a
	// bare number; the comparison downstream is numeric either way.
	var req struct {
		Email                 string      `json:"email"`
		EmailVerificationCode json.Number `json:"emailVerificationCode"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.Confirm(r.Context(), req.Email, req.EmailVerificationCode.String())
	if err != nil {
		slog.Error("email verification failed", "email", req.Email, "err", err)
		writeJSON(w, http.StatusInternalServerError, MessageEnvelope{Message: "Wystąpił nieznany błąd"})
		return
	}

	switch result {
	case verification.ConfirmVerified:
		writeJSON(w, http.StatusOK, StatusEnvelope{Status: "email_verified", Message: "Email został potwierdzony"})
	case verification.ConfirmCodeMismatch:
		writeJSON(w, http.StatusOK, StatusEnvelope{Status: "incorrect_code", Message: "Podany kod weryfikacyjny nie pasuje do adresu email"})
	case verification.ConfirmAccountNotFound:
		writeJSON(w, http.StatusNotFound, MessageEnvelope{Message: "Podany adres email nie istnieje w bazie danych"})
	}
}
