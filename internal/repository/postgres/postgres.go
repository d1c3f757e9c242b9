// Package postgres implements the ledger store on PostgreSQL for
// self-hosted deployments that do not use Firebase.
package postgres

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"borrowbuddy-backend/internal/repository"
)

type Store struct {
	db *sql.DB
	repository.TransactionRepository
	repository.UserRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                    db,
		TransactionRepository: NewTransactionRepository(db),
		UserRepository:        NewUserRepository(db),
	}
}

// mapError folds driver failures into the repository error taxonomy.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if err == sql.ErrNoRows {
		return repository.ErrNotFound
	}
	return fmt.Errorf("%w: %v", repository.ErrUnavailable, err)
}
