package middleware

import (
	"net/http"

	"github.com/client-portal-api/internal/application/verification"
)

// VerifiedGate is the second access gate: it requires the session's email to
// be verified. It must run after SessionGate and is read-only; it only
// branches control flow.
func VerifiedGate(verifications verification.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := IdentityFromContext(r.Context())
			if !ok {
				writeJSONStatus(w, http.StatusUnauthorized, "not_logged_in", "Nie jesteś zalogowany, przejdź do strony logowania")
				return
			}
			verified, err := verifications.IsVerified(r.Context(), identity.ID)
			if err != nil {
				writeJSONError(w, http.StatusInternalServerError, "Wystąpił nieznany błąd")
				return
			}
			if !verified {
				writeJSONStatus(w, http.StatusForbidden, "not_verified", "Email nie został potwierdzony")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
