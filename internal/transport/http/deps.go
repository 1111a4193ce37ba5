package http

import (
	"github.com/client-portal-api/internal/infrastructure/postgres"
	"github.com/client-portal-api/internal/infrastructure/smtp"
)

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	ClientRepo       *postgres.ClientRepo
	VerificationRepo *postgres.VerificationRepo
	SessionRepo      *postgres.SessionRepo
	AgreementRepo    *postgres.AgreementRepo
	Transactor       *postgres.Transactor
	Mailer           smtp.Mailer
	DB               postgres.DB
}
