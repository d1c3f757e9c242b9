package repository

import (
	"context"
	"errors"

	"borrowbuddy-backend/internal/domain"
)

var (
	// ErrNotFound is returned when a record does not exist in the store.
	ErrNotFound = errors.New("record not found")
	// ErrUnavailable is returned when the store cannot be reached or the
	// call fails for reasons other than a missing record.
	ErrUnavailable = errors.New("store unavailable")
)

type TransactionRepository interface {
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Transaction, error)
	GetByID(ctx context.Context, id string) (*domain.Transaction, error)
	Create(ctx context.Context, txn *domain.Transaction) error
	UpdateStatus(ctx context.Context, id string, status domain.TransactionStatus) error
	Delete(ctx context.Context, id string) error
}

// UserRepository backs the local auth provider and the reminder job on
// postgres deployments. Firebase deployments use the Firebase Auth user
// directory instead.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}
