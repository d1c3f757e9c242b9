package service

import (
	"context"
	"errors"
	"time"

	"borrowbuddy-backend/internal/domain"
	"borrowbuddy-backend/internal/ledger"
	"borrowbuddy-backend/internal/repository"
)

// ErrAlreadySettled is returned when a settle targets a record that has
// already been settled. The transition is one-way and not idempotent, so
// a double-submit surfaces instead of silently succeeding.
var ErrAlreadySettled = errors.New("transaction already settled")

type ledgerService struct {
	txnRepo     repository.TransactionRepository
	recentLimit int
}

func NewLedgerService(txnRepo repository.TransactionRepository, recentLimit int) LedgerService {
	return &ledgerService{txnRepo: txnRepo, recentLimit: recentLimit}
}

func (s *ledgerService) ListTransactions(ctx context.Context, ownerID string, category ledger.Category) ([]domain.Transaction, error) {
	txns, err := s.txnRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return ledger.FilterByCategory(txns, category), nil
}

func (s *ledgerService) AddTransaction(ctx context.Context, ownerID string, input ledger.NewTransactionInput) (*domain.Transaction, error) {
	txn, err := ledger.NewTransaction(ownerID, input, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	if err := s.txnRepo.Create(ctx, txn); err != nil {
		return nil, err
	}
	return txn, nil
}

func (s *ledgerService) SettleTransaction(ctx context.Context, ownerID, id string) (*domain.Transaction, error) {
	txn, err := s.ownedTransaction(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if txn.Status == domain.TransactionStatusSettled {
		return nil, ErrAlreadySettled
	}
	if err := s.txnRepo.UpdateStatus(ctx, id, domain.TransactionStatusSettled); err != nil {
		return nil, err
	}
	txn.Status = domain.TransactionStatusSettled
	return txn, nil
}

func (s *ledgerService) DeleteTransaction(ctx context.Context, ownerID, id string) error {
	if _, err := s.ownedTransaction(ctx, ownerID, id); err != nil {
		return err
	}
	return s.txnRepo.Delete(ctx, id)
}

func (s *ledgerService) GetDashboard(ctx context.Context, ownerID string) (*domain.DashboardSummary, error) {
	txns, err := s.txnRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	balances := ledger.ComputeBalances(txns)
	recent := ledger.Recent(txns, s.recentLimit)
	return &domain.DashboardSummary{
		OwedToMeCents: balances.OwedToMeCents,
		IOweCents:     balances.IOweCents,
		Recent:        recent,
	}, nil
}

// ownedTransaction loads a record and confirms it belongs to the caller.
// Someone else's record is reported as not found, so record IDs reveal
// nothing across owners.
func (s *ledgerService) ownedTransaction(ctx context.Context, ownerID, id string) (*domain.Transaction, error) {
	txn, err := s.txnRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if txn.OwnerID != ownerID {
		return nil, repository.ErrNotFound
	}
	return txn, nil
}
