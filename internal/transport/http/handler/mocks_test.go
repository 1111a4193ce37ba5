package handler

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/client-portal-api/internal/application/auth"
	"github.com/client-portal-api/internal/application/verification"
	"github.com/client-portal-api/internal/domain"
)

type mockAuthService struct{ mock.Mock }

func (m *mockAuthService) Authenticate(ctx context.Context, email, password string) auth.Outcome {
	args := m.Called(ctx, email, password)
	return args.Get(0).(auth.Outcome)
}

type mockSessionService struct{ mock.Mock }

func (m *mockSessionService) Establish(ctx context.Context, client *domain.Client) (*domain.Session, error) {
	args := m.Called(ctx, client)
	if s, _ := args.Get(0).(*domain.Session); s != nil {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSessionService) Resolve(ctx context.Context, token string) (*domain.SessionIdentity, *domain.Client, error) {
	args := m.Called(ctx, token)
	id, _ := args.Get(0).(*domain.SessionIdentity)
	client, _ := args.Get(1).(*domain.Client)
	return id, client, args.Error(2)
}

func (m *mockSessionService) Destroy(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

type mockRegistrationService struct{ mock.Mock }

func (m *mockRegistrationService) Register(ctx context.Context, req domain.RegisterRequest) error {
	return m.Called(ctx, req).Error(0)
}

type mockVerificationService struct{ mock.Mock }

func (m *mockVerificationService) Issue(ctx context.Context, clientID string) (int, error) {
	args := m.Called(ctx, clientID)
	return args.Int(0), args.Error(1)
}

func (m *mockVerificationService) Confirm(ctx context.Context, email, code string) (verification.ConfirmResult, error) {
	args := m.Called(ctx, email, code)
	return args.Get(0).(verification.ConfirmResult), args.Error(1)
}

func (m *mockVerificationService) IsVerified(ctx context.Context, clientID string) (bool, error) {
	args := m.Called(ctx, clientID)
	return args.Bool(0), args.Error(1)
}

type mockPortalService struct{ mock.Mock }

func (m *mockPortalService) AgreementsForClient(ctx context.Context, clientID string) ([]domain.Agreement, error) {
	args := m.Called(ctx, clientID)
	if list, _ := args.Get(0).([]domain.Agreement); list != nil {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPortalService) Offer(ctx context.Context) ([]domain.Agreement, error) {
	args := m.Called(ctx)
	if list, _ := args.Get(0).([]domain.Agreement); list != nil {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(rec.Body).Decode(v))
}
