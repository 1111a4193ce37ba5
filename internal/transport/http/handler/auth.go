package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/client-portal-api/internal/application/auth"
	"github.com/client-portal-api/internal/application/session"
	"github.com/client-portal-api/internal/domain"
	"github.com/client-portal-api/internal/pkg/validate"
)

// AuthHandler handles login and logout.
type AuthHandler struct {
	authSvc    auth.Service
	sessionSvc session.Service
	cookieName string
	sessionTTL time.Duration
}

func NewAuthHandler(authSvc auth.Service, sessionSvc session.Service, cookieName string, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		authSvc:    authSvc,
		sessionSvc: sessionSvc,
		cookieName: cookieName,
		sessionTTL: sessionTTL,
	}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	outcome := h.authSvc.Authenticate(r.Context(), req.Email, req.Password)
	switch outcome.Status {
	case auth.StatusNotFound:
		writeJSON(w, http.StatusNotFound, StatusEnvelope{Status: "not_found", Message: "Podany adres email nie istnieje w bazie danych"})
	case auth.StatusBadPassword:
		writeJSON(w, http.StatusUnauthorized, StatusEnvelope{Status: "incorrect_password", Message: "Podano niepoprawne hasło"})
	case auth.StatusFailed:
		slog.Error("authentication failed", "err", outcome.Err)
		writeJSON(w, http.StatusInternalServerError, StatusEnvelope{Status: "unknown_error", Message: "Wystąpił nieznany błąd"})
	case auth.StatusLoggedIn:
		sess, err := h.sessionSvc.Establish(r.Context(), outcome.Client)
		if err != nil {
			slog.Error("failed to establish session", "err", err)
			writeJSON(w, http.StatusInternalServerError, StatusEnvelope{Status: "unknown_error", Message: "Wystąpił nieznany błąd"})
			return
		}
		http.SetCookie(w, h.sessionCookie(sess.Token))
		writeJSON(w, http.StatusOK, StatusEnvelope{Status: "logged_in", Message: "Zalogowano do serwisu"})
	}
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(h.cookieName); err == nil && cookie.Value != "" {
		if err := h.sessionSvc.Destroy(r.Context(), cookie.Value); err != nil {
			slog.Warn("failed to destroy session", "err", err)
		}
	}
	expired := h.sessionCookie("")
	expired.MaxAge = -1
	http.SetCookie(w, expired)
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "Wylogowano z serwisu"})
}

func (h *AuthHandler) sessionCookie(value string) *http.Cookie {
	c := &http.Cookie{
		Name:     h.cookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if h.sessionTTL > 0 {
		c.MaxAge = int(h.sessionTTL.Seconds())
	}
	return c
}
