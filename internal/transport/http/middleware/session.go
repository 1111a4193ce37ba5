package middleware

import (
	"context"
	"net/http"

	"github.com/client-portal-api/internal/application/session"
	"github.com/client-portal-api/internal/domain"
)

type contextKey string

const IdentityKey contextKey = "identity"

// SessionGate is the first access gate: it requires a session-backed identity.
// A missing cookie, an unknown or expired token, and a vanished client all
// terminate the request with the not-logged-in response; the verification
// gate is never reached without an identity.
func SessionGate(cookieName string, sessions session.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				writeJSONStatus(w, http.StatusUnauthorized, "not_logged_in", "Nie jesteś zalogowany, przejdź do strony logowania")
				return
			}
			identity, _, err := sessions.Resolve(r.Context(), cookie.Value)
			if err != nil {
				writeJSONStatus(w, http.StatusUnauthorized, "not_logged_in", "Nie jesteś zalogowany, przejdź do strony logowania")
				return
			}
			ctx := context.WithValue(r.Context(), IdentityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IdentityFromContext extracts the session identity injected by SessionGate.
func IdentityFromContext(ctx context.Context) (*domain.SessionIdentity, bool) {
	id, ok := ctx.Value(IdentityKey).(*domain.SessionIdentity)
	return id, ok
}
