package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"borrowbuddy-backend/internal/domain"
	"borrowbuddy-backend/internal/repository"
)

type transactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) repository.TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Transaction, error) {
	query := `SELECT id, owner_id, kind, amount_cents, COALESCE(item_name, ''), counterparty_name, direction, occurred_at, status, COALESCE(notes, '')
	          FROM transactions WHERE owner_id = $1`
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		var txn domain.Transaction
		if err := rows.Scan(&txn.ID, &txn.OwnerID, &txn.Kind, &txn.AmountCents, &txn.ItemName,
			&txn.CounterpartyName, &txn.Direction, &txn.OccurredAt, &txn.Status, &txn.Notes); err != nil {
			return nil, mapError(err)
		}
		txns = append(txns, txn)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}
	return txns, nil
}

func (r *transactionRepository) GetByID(ctx context.Context, id string) (*domain.Transaction, error) {
	query := `SELECT id, owner_id, kind, amount_cents, COALESCE(item_name, ''), counterparty_name, direction, occurred_at, status, COALESCE(notes, '')
	          FROM transactions WHERE id = $1`
	var txn domain.Transaction
	err := r.db.QueryRowContext(ctx, query, id).Scan(&txn.ID, &txn.OwnerID, &txn.Kind, &txn.AmountCents,
		&txn.ItemName, &txn.CounterpartyName, &txn.Direction, &txn.OccurredAt, &txn.Status, &txn.Notes)
	if err != nil {
		return nil, mapError(err)
	}
	return &txn, nil
}

func (r *transactionRepository) Create(ctx context.Context, txn *domain.Transaction) error {
	query := `INSERT INTO transactions (id, owner_id, kind, amount_cents, item_name, counterparty_name, direction, occurred_at, status, notes)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	id := uuid.NewString()
	_, err := r.db.ExecContext(ctx, query, id, txn.OwnerID, txn.Kind, txn.AmountCents, txn.ItemName,
		txn.CounterpartyName, txn.Direction, txn.OccurredAt, txn.Status, txn.Notes)
	if err != nil {
		return mapError(err)
	}
	txn.ID = id
	return nil
}

func (r *transactionRepository) UpdateStatus(ctx context.Context, id string, status domain.TransactionStatus) error {
	res, err := r.db.ExecContext(ctx, `UPDATE transactions SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return mapError(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return mapError(err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *transactionRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return mapError(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return mapError(err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}
