package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"borrowbuddy-backend/internal/domain"
	"borrowbuddy-backend/internal/repository"
)

const transactionsCollection = "transactions"

type transactionRepository struct {
	client *firestore.Client
}

func NewTransactionRepository(client *firestore.Client) repository.TransactionRepository {
	return &transactionRepository{client: client}
}

func (r *transactionRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Transaction, error) {
	iter := r.client.Collection(transactionsCollection).
		Where("ownerId", "==", ownerID).
		Documents(ctx)
	defer iter.Stop()

	var txns []domain.Transaction
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, mapError(err)
		}
		var txn domain.Transaction
		if err := doc.DataTo(&txn); err != nil {
			return nil, mapError(err)
		}
		txn.ID = doc.Ref.ID
		txns = append(txns, txn)
	}
	return txns, nil
}

func (r *transactionRepository) GetByID(ctx context.Context, id string) (*domain.Transaction, error) {
	doc, err := r.client.Collection(transactionsCollection).Doc(id).Get(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	var txn domain.Transaction
	if err := doc.DataTo(&txn); err != nil {
		return nil, mapError(err)
	}
	txn.ID = doc.Ref.ID
	return &txn, nil
}

func (r *transactionRepository) Create(ctx context.Context, txn *domain.Transaction) error {
	ref, _, err := r.client.Collection(transactionsCollection).Add(ctx, txn)
	if err != nil {
		return mapError(err)
	}
	txn.ID = ref.ID
	return nil
}

func (r *transactionRepository) UpdateStatus(ctx context.Context, id string, txnStatus domain.TransactionStatus) error {
	_, err := r.client.Collection(transactionsCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: string(txnStatus)},
	})
	return mapError(err)
}

func (r *transactionRepository) Delete(ctx context.Context, id string) error {
	// Firestore deletes are no-ops for missing documents; the service
	// checks existence and ownership before calling here.
	_, err := r.client.Collection(transactionsCollection).Doc(id).Delete(ctx)
	return mapError(err)
}
