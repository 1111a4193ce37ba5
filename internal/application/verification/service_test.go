package verification

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/client-portal-api/internal/domain"
)

// --- mocks ---

type mockVerificationStore struct{ mock.Mock }

func (m *mockVerificationStore) Create(ctx context.Context, v *domain.EmailVerification) error {
	return m.Called(ctx, v).Error(0)
}
func (m *mockVerificationStore) GetByClient(ctx context.Context, clientID string) (*domain.EmailVerification, error) {
	args := m.Called(ctx, clientID)
	if v, _ := args.Get(0).(*domain.EmailVerification); v != nil {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockVerificationStore) MarkVerified(ctx context.Context, clientID string) error {
	return m.Called(ctx, clientID).Error(0)
}
func (m *mockVerificationStore) IsVerified(ctx context.Context, clientID string) (bool, error) {
	args := m.Called(ctx, clientID)
	return args.Bool(0), args.Error(1)
}

type mockClientStore struct{ mock.Mock }

func (m *mockClientStore) GetByEmail(ctx context.Context, email string) (*domain.Client, error) {
	args := m.Called(ctx, email)
	if c, _ := args.Get(0).(*domain.Client); c != nil {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

// --- Issue ---

func TestIssue_CodeInRangeAndPersisted(t *testing.T) {
	vs := &mockVerificationStore{}
	var stored *domain.EmailVerification
	vs.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		stored = args.Get(1).(*domain.EmailVerification)
	}).Return(nil)

	svc := NewService(vs, &mockClientStore{})

	// Random codes: check the full contract over a batch of issues.
	for i := 0; i < 50; i++ {
		code, err := svc.Issue(context.Background(), "c1")
		require.NoError(t, err)

		assert.GreaterOrEqual(t, code, 100000)
		assert.LessOrEqual(t, code, 999999)
		require.NotNil(t, stored)
		assert.Equal(t, "c1", stored.ClientID)
		assert.Equal(t, code, stored.VerificationCode)
		assert.False(t, stored.IsVerified)
		assert.False(t, stored.AccountCreatedDate.IsZero())
	}
}

func TestIssue_StoreError(t *testing.T) {
	vs := &mockVerificationStore{}
	vs.On("Create", mock.Anything, mock.Anything).Return(errors.New("insert failed"))

	_, err := NewService(vs, &mockClientStore{}).Issue(context.Background(), "c1")
	require.Error(t, err)
}

// --- Confirm ---

func TestConfirm_CorrectCode(t *testing.T) {
	cs := &mockClientStore{}
	cs.On("GetByEmail", mock.Anything, "alice@test.com").
		Return(&domain.Client{ClientID: "c1", Email: "alice@test.com"}, nil)
	vs := &mockVerificationStore{}
	vs.On("GetByClient", mock.Anything, "c1").
		Return(&domain.EmailVerification{ClientID: "c1", VerificationCode: 123456}, nil)
	vs.On("MarkVerified", mock.Anything, "c1").Return(nil)

	result, err := NewService(vs, cs).Confirm(context.Background(), "alice@test.com", "123456")

	require.NoError(t, err)
	assert.Equal(t, ConfirmVerified, result)
	vs.AssertExpectations(t)
}

func TestConfirm_WrongCodeDoesNotMutate(t *testing.T) {
	cs := &mockClientStore{}
	cs.On("GetByEmail", mock.Anything, "alice@test.com").
		Return(&domain.Client{ClientID: "c1", Email: "alice@test.com"}, nil)
	vs := &mockVerificationStore{}
	vs.On("GetByClient", mock.Anything, "c1").
		Return(&domain.EmailVerification{ClientID: "c1", VerificationCode: 123456}, nil)

	svc := NewService(vs, cs)

	// Repeated wrong attempts leave state unchanged.
	for i := 0; i < 3; i++ {
		result, err := svc.Confirm(context.Background(), "alice@test.com", "654321")
		require.NoError(t, err)
		assert.Equal(t, ConfirmCodeMismatch, result)
	}
	vs.AssertNotCalled(t, "MarkVerified", mock.Anything, mock.Anything)
}

func TestConfirm_NonNumericCodeIsMismatch(t *testing.T) {
	cs := &mockClientStore{}
	cs.On("GetByEmail", mock.Anything, "alice@test.com").
		Return(&domain.Client{ClientID: "c1", Email: "alice@test.com"}, nil)
	vs := &mockVerificationStore{}
	vs.On("GetByClient", mock.Anything, "c1").
		Return(&domain.EmailVerification{ClientID: "c1", VerificationCode: 123456}, nil)

	result, err := NewService(vs, cs).Confirm(context.Background(), "alice@test.com", "abc123")

	require.NoError(t, err)
	assert.Equal(t, ConfirmCodeMismatch, result)
	vs.AssertNotCalled(t, "MarkVerified", mock.Anything, mock.Anything)
}

func TestConfirm_UnknownAccount(t *testing.T) {
	cs := &mockClientStore{}
	cs.On("GetByEmail", mock.Anything, "nobody@test.com").Return(nil, domain.ErrNotFound)

	result, err := NewService(&mockVerificationStore{}, cs).Confirm(context.Background(), "nobody@test.com", "123456")

	require.NoError(t, err)
	assert.Equal(t, ConfirmAccountNotFound, result)
}

// Codes never expire or invalidate, so a second submission of the correct
// code still reports verified. Expected behavior, not a bug.
func TestConfirm_IdempotentAfterSuccess(t *testing.T) {
	cs := &mockClientStore{}
	cs.On("GetByEmail", mock.Anything, "alice@test.com").
		Return(&domain.Client{ClientID: "c1", Email: "alice@test.com"}, nil)
	vs := &mockVerificationStore{}
	vs.On("GetByClient", mock.Anything, "c1").
		Return(&domain.EmailVerification{ClientID: "c1", VerificationCode: 123456, IsVerified: true}, nil)
	vs.On("MarkVerified", mock.Anything, "c1").Return(nil)

	result, err := NewService(vs, cs).Confirm(context.Background(), "alice@test.com", "123456")

	require.NoError(t, err)
	assert.Equal(t, ConfirmVerified, result)
}

func TestConfirm_StoreError(t *testing.T) {
	cs := &mockClientStore{}
	cs.On("GetByEmail", mock.Anything, "alice@test.com").Return(nil, errors.New("connection refused"))

	_, err := NewService(&mockVerificationStore{}, cs).Confirm(context.Background(), "alice@test.com", "123456")
	require.Error(t, err)
}

// --- IsVerified ---

func TestIsVerified(t *testing.T) {
	vs := &mockVerificationStore{}
	vs.On("IsVerified", mock.Anything, "c1").Return(true, nil)

	verified, err := NewService(vs, &mockClientStore{}).IsVerified(context.Background(), "c1")

	require.NoError(t, err)
	assert.True(t, verified)
}
