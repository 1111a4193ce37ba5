package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/client-portal-api/internal/domain"
	pkgtoken "github.com/client-portal-api/internal/pkg/token"
)

type sessionStore interface {
	Create(ctx context.Context, s *domain.Session) error
	GetByToken(ctx context.Context, token string) (*domain.Session, error)
	Delete(ctx context.Context, token string) error
}

type clientStore interface {
	Get(ctx context.Context, clientID string) (*domain.Client, error)
}

type Service interface {
	Establish(ctx context.Context, client *domain.Client) (*domain.Session, error)
	Resolve(ctx context.Context, token string) (*domain.SessionIdentity, *domain.Client, error)
	Destroy(ctx context.Context, token string) error
}

type service struct {
	sessions sessionStore
	clients  clientStore
	ttl      time.Duration // zero = sessions never expire
}

func NewService(sessions sessionStore, clients clientStore, ttl time.Duration) Service {
	return &service{sessions: sessions, clients: clients, ttl: ttl}
}

// Establish serializes the authenticated client into a server-held session
// keyed by a fresh opaque token. Only the id and email are stored; no
// password material enters the session.
func (s *service) Establish(ctx context.Context, client *domain.Client) (*domain.Session, error) {
	tok, err := pkgtoken.NewSessionToken()
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	sess := &domain.Session{
		Token:     tok,
		ClientID:  client.ClientID,
		Email:     client.Email,
		CreatedAt: now,
	}
	if s.ttl > 0 {
		exp := now.Add(s.ttl)
		sess.ExpiresAt = &exp
	}
	if err := s.sessions.Create(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Resolve reconstructs the principal behind a session token: it loads the
// stored identity and re-fetches the full client by id. A missing session,
// an expired session, and a vanished client all come back as distinct errors;
// callers treat each of them as unauthenticated.
func (s *service) Resolve(ctx context.Context, token string) (*domain.SessionIdentity, *domain.Client, error) {
	sess, err := s.sessions.GetByToken(ctx, token)
	if err != nil {
		return nil, nil, err
	}
	if sess.ExpiresAt != nil && sess.ExpiresAt.Before(time.Now().UTC()) {
		return nil, nil, fmt.Errorf("session expired: %w", domain.ErrUnauthorized)
	}
	client, err := s.clients.Get(ctx, sess.ClientID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Account deleted mid-session.
			return nil, nil, fmt.Errorf("session client gone: %w", domain.ErrNotFound)
		}
		return nil, nil, err
	}
	return &domain.SessionIdentity{ID: sess.ClientID, Email: sess.Email}, client, nil
}

// Destroy removes the session row; the cookie is cleared by the handler.
func (s *service) Destroy(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}
