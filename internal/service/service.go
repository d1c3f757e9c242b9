package service

import (
	"context"

	"borrowbuddy-backend/internal/domain"
	"borrowbuddy-backend/internal/ledger"
)

type LedgerService interface {
	ListTransactions(ctx context.Context, ownerID string, category ledger.Category) ([]domain.Transaction, error)
	AddTransaction(ctx context.Context, ownerID string, input ledger.NewTransactionInput) (*domain.Transaction, error)
	SettleTransaction(ctx context.Context, ownerID, id string) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, ownerID, id string) error
	GetDashboard(ctx context.Context, ownerID string) (*domain.DashboardSummary, error)
}

type AuthService interface {
	SignUp(ctx context.Context, email, password string) (*domain.AuthTokens, error)
	SignIn(ctx context.Context, email, password string) (*domain.AuthTokens, error)
	SignInWithGoogle(ctx context.Context, idToken string) (*domain.AuthTokens, error)
	Refresh(ctx context.Context, refreshToken string) (*domain.AuthTokens, error)
	SignOut(ctx context.Context, userID string) error
}

type EmailService interface {
	SendPendingReminder(ctx context.Context, toEmail, toName string, balances ledger.Balances, pendingCount int) error
}
