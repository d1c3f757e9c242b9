package http

import (
	"context"

	"github.com/stretchr/testify/mock"

	"borrowbuddy-backend/internal/domain"
	"borrowbuddy-backend/internal/ledger"
)

type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) ListTransactions(ctx context.Context, ownerID string, category ledger.Category) ([]domain.Transaction, error) {
	args := m.Called(ctx, ownerID, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockLedgerService) AddTransaction(ctx context.Context, ownerID string, input ledger.NewTransactionInput) (*domain.Transaction, error) {
	args := m.Called(ctx, ownerID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockLedgerService) SettleTransaction(ctx context.Context, ownerID, id string) (*domain.Transaction, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockLedgerService) DeleteTransaction(ctx context.Context, ownerID, id string) error {
	args := m.Called(ctx, ownerID, id)
	return args.Error(0)
}

func (m *MockLedgerService) GetDashboard(ctx context.Context, ownerID string) (*domain.DashboardSummary, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardSummary), args.Error(1)
}

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) SignUp(ctx context.Context, email, password string) (*domain.AuthTokens, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AuthTokens), args.Error(1)
}

func (m *MockAuthService) SignIn(ctx context.Context, email, password string) (*domain.AuthTokens, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AuthTokens), args.Error(1)
}

func (m *MockAuthService) SignInWithGoogle(ctx context.Context, idToken string) (*domain.AuthTokens, error) {
	args := m.Called(ctx, idToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AuthTokens), args.Error(1)
}

func (m *MockAuthService) Refresh(ctx context.Context, refreshToken string) (*domain.AuthTokens, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AuthTokens), args.Error(1)
}

func (m *MockAuthService) SignOut(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}
