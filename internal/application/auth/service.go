package auth

import (
	"context"
	"errors"

	"github.com/client-portal-api/internal/domain"
	pkgpassword "github.com/client-portal-api/internal/pkg/password"
)

// Status is the closed set of authentication results. Credential checks never
// surface raw errors to callers; they return an Outcome instead.
type Status int

const (
	StatusLoggedIn Status = iota
	StatusNotFound
	StatusBadPassword
	StatusFailed
)

// Outcome is the result of an authentication attempt. Client is set only for
// StatusLoggedIn; Err carries the underlying cause only for StatusFailed so
// callers can log it while keeping the client-facing message generic.
type Outcome struct {
	Status Status
	Client *domain.Client
	Err    error
}

type clientStore interface {
	GetByEmail(ctx context.Context, email string) (*domain.Client, error)
}

type Service interface {
	Authenticate(ctx context.Context, email, password string) Outcome
}

type service struct {
	clients clientStore
}

func NewService(clients clientStore) Service {
	return &service{clients: clients}
}

// Authenticate validates an email/password pair. It is read-only: no state is
// mutated regardless of outcome.
func (s *service) Authenticate(ctx context.Context, email, password string) Outcome {
	c, err := s.clients.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return Outcome{Status: StatusNotFound}
		}
		return Outcome{Status: StatusFailed, Err: err}
	}
	if !pkgpassword.Verify(password, c.PasswordHash) {
		return Outcome{Status: StatusBadPassword}
	}
	return Outcome{Status: StatusLoggedIn, Client: c}
}
