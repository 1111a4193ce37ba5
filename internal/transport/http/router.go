package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/client-portal-api/internal/application/auth"
	"github.com/client-portal-api/internal/application/portal"
	"github.com/client-portal-api/internal/application/registration"
	"github.com/client-portal-api/internal/application/session"
	"github.com/client-portal-api/internal/application/verification"
	"github.com/client-portal-api/internal/config"
	"github.com/client-portal-api/internal/transport/http/handler"
	appmiddleware "github.com/client-portal-api/internal/transport/http/middleware"
)

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true, // the session rides in a cookie
		MaxAge:           300,
	}))

	authSvc := auth.NewService(deps.ClientRepo)
	sessionSvc := session.NewService(deps.SessionRepo, deps.ClientRepo, cfg.SessionTTL)
	verificationSvc := verification.NewService(deps.VerificationRepo, deps.ClientRepo)
	registrationSvc := registration.NewService(deps.ClientRepo, verificationSvc, deps.Transactor, deps.Mailer)
	portalSvc := portal.NewService(deps.AgreementRepo)

	healthH := handler.NewHealthHandler(deps.DB)
	authH := handler.NewAuthHandler(authSvc, sessionSvc, cfg.SessionCookieName, cfg.SessionTTL)
	registerH := handler.NewRegisterHandler(registrationSvc)
	verifyH := handler.NewVerifyHandler(verificationSvc)
	portalH := handler.NewPortalHandler(portalSvc)

	// ── Public routes ────────────────────────────────────────────────────
	r.Get("/health-check", healthH.Ping)
	r.Post("/login", authH.Login)
	r.Post("/logout", authH.Logout)
	r.Post("/register", registerH.Register)
	r.Post("/verifyEmailAddress", verifyH.Verify)
	r.Get("/offerPage", portalH.Offer)

	// ── Gated routes: session check first, then email verification ──────
	r.Group(func(r chi.Router) {
		r.Use(appmiddleware.SessionGate(cfg.SessionCookieName, sessionSvc))
		r.Use(appmiddleware.VerifiedGate(verificationSvc))

		r.Get("/clientsPortalPage", portalH.Portal)
	})

	return r
}
