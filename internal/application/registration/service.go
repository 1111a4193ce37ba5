package registration

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/client-portal-api/internal/domain"
	"github.com/client-portal-api/internal/infrastructure/smtp"
	"github.com/client-portal-api/internal/pkg/id"
	pkgpassword "github.com/client-portal-api/internal/pkg/password"
	"github.com/client-portal-api/internal/pkg/validate"
)

// User-facing registration messages, preserved verbatim from the portal's
// original Polish copy.
const (
	MsgSuccess           = "Rejestracja przebiegła pomyślnie, sprawdź swoją skrzynkę pocztową w celu potwierdzenia adresu email"
	MsgAlreadyRegistered = "Posiadasz już konto na naszym portalu, zaloguj się zamiast rejestracji"
)

const mailSubject = "Potwierdzenie rejestracji adresu email"

type clientStore interface {
	GetByEmail(ctx context.Context, email string) (*domain.Client, error)
	Create(ctx context.Context, c *domain.Client) error
}

type codeIssuer interface {
	Issue(ctx context.Context, clientID string) (int, error)
}

type transactor interface {
	InTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Service interface {
	Register(ctx context.Context, req domain.RegisterRequest) error
}

type service struct {
	clients clientStore
	codes   codeIssuer
	tx      transactor
	mailer  smtp.Mailer
}

func NewService(clients clientStore, codes codeIssuer, tx transactor, mailer smtp.Mailer) Service {
	return &service{clients: clients, codes: codes, tx: tx, mailer: mailer}
}

// Register runs the registration sequence: sequential validation (first
// failure wins), case-exact duplicate check, hash, then the client row and
// its verification record inserted in one transaction. The code email goes
// out after commit, fire-and-forget; delivery failure never fails the
// registration.
func (s *service) Register(ctx context.Context, req domain.RegisterRequest) error {
	if err := validate.Registration(req); err != nil {
		return err
	}

	if _, err := s.clients.GetByEmail(ctx, req.Email); err == nil {
		return fmt.Errorf("%s: %w", MsgAlreadyRegistered, domain.ErrConflict)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return err
	}

	hash, err := pkgpassword.Hash(req.Password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	client := &domain.Client{
		ClientID:     id.New(),
		Email:        req.Email,
		PasswordHash: hash,
	}

	var code int
	err = s.tx.InTransaction(ctx, func(txCtx context.Context) error {
		if err := s.clients.Create(txCtx, client); err != nil {
			return err
		}
		code, err = s.codes.Issue(txCtx, client.ClientID)
		return err
	})
	if err != nil {
		return err
	}

	go s.sendCode(client.Email, code)
	return nil
}

func (s *service) sendCode(email string, code int) {
	text := fmt.Sprintf("Twój kod potwierdzający adres email to: %d", code)
	html := fmt.Sprintf("<strong>Twój kod potwierdzający adres email to: %d</strong>", code)
	if err := s.mailer.SendEmail(email, mailSubject, text, html); err != nil {
		slog.Error("failed to send verification email", "email", email, "err", err)
		return
	}
	slog.Info("verification email sent", "email", email)
}
