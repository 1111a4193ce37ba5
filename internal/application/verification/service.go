package verification

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/client-portal-api/internal/domain"
)

// ConfirmResult is the closed set of code-confirmation outcomes.
type ConfirmResult int

const (
	ConfirmVerified ConfirmResult = iota
	ConfirmCodeMismatch
	ConfirmAccountNotFound
)

type verificationStore interface {
	Create(ctx context.Context, v *domain.EmailVerification) error
	GetByClient(ctx context.Context, clientID string) (*domain.EmailVerification, error)
	MarkVerified(ctx context.Context, clientID string) error
	IsVerified(ctx context.Context, clientID string) (bool, error)
}

type clientStore interface {
	GetByEmail(ctx context.Context, email string) (*domain.Client, error)
}

type Service interface {
	Issue(ctx context.Context, clientID string) (int, error)
	Confirm(ctx context.Context, email, submittedCode string) (ConfirmResult, error)
	IsVerified(ctx context.Context, clientID string) (bool, error)
}

type service struct {
	verifications verificationStore
	clients       clientStore
}

func NewService(verifications verificationStore, clients clientStore) Service {
	return &service{verifications: verifications, clients: clients}
}

// Issue generates a fresh 6-digit code and persists the verification record
// for the client. Called exactly once per successful registration; when the
// caller runs it inside a transaction the record is created atomically with
// the client row.
func (s *service) Issue(ctx context.Context, clientID string) (int, error) {
	code, err := randomCode()
	if err != nil {
		return 0, fmt.Errorf("generate verification code: %w", err)
	}
	v := &domain.EmailVerification{
		ClientID:           clientID,
		VerificationCode:   code,
		IsVerified:         false,
		AccountCreatedDate: time.Now().UTC().Truncate(24 * time.Hour),
	}
	if err := s.verifications.Create(ctx, v); err != nil {
		return 0, err
	}
	return code, nil
}

// Confirm compares the submitted code against the client's active code.
// Codes are compared numerically; non-numeric input is a mismatch. A correct
// code flips is_verified and keeps returning ConfirmVerified on repeat
// submissions, since codes never expire or invalidate.
func (s *service) Confirm(ctx context.Context, email, submittedCode string) (ConfirmResult, error) {
	c, err := s.clients.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ConfirmAccountNotFound, nil
		}
		return 0, err
	}
	v, err := s.verifications.GetByClient(ctx, c.ClientID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ConfirmAccountNotFound, nil
		}
		return 0, err
	}
	code, convErr := strconv.Atoi(strings.TrimSpace(submittedCode))
	if convErr != nil || code != v.VerificationCode {
		return ConfirmCodeMismatch, nil
	}
	if err := s.verifications.MarkVerified(ctx, c.ClientID); err != nil {
		return 0, err
	}
	return ConfirmVerified, nil
}

func (s *service) IsVerified(ctx context.Context, clientID string) (bool, error) {
	return s.verifications.IsVerified(ctx, clientID)
}

// randomCode returns a uniform random integer in [100000, 999999].
func randomCode() (int, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return 0, err
	}
	return int(n.Int64()) + 100000, nil
}
