package ledger

import (
	"fmt"
	"strings"
	"time"

	"borrowbuddy-backend/internal/domain"
)

// MissingFieldError names the first required field a submission left blank.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

// InvalidFieldError reports a field whose value is not one of the
// accepted values.
type InvalidFieldError struct {
	Field string
	Value string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("invalid value for %s: %q", e.Field, e.Value)
}

// NewTransactionInput is a raw user submission for a new ledger record.
// Amount is the decimal string as typed; it is only consulted for the
// money kind, ItemName only for the item kind.
type NewTransactionInput struct {
	Kind             string `json:"kind"`
	Amount           string `json:"amount"`
	ItemName         string `json:"item_name"`
	CounterpartyName string `json:"counterparty_name"`
	Direction        string `json:"direction"`
	Notes            string `json:"notes"`
}

// NewTransaction validates a submission and builds the pending record to
// persist. Required fields are checked in order: counterparty name first,
// then the kind-specific field. The returned record has no ID; the store
// assigns one on creation.
func NewTransaction(ownerID string, in NewTransactionInput, now time.Time) (*domain.Transaction, error) {
	kind := domain.TransactionKind(in.Kind)
	if kind != domain.TransactionKindMoney && kind != domain.TransactionKindItem {
		return nil, &InvalidFieldError{Field: "kind", Value: in.Kind}
	}
	direction := domain.TransactionDirection(in.Direction)
	if direction != domain.TransactionDirectionBorrowed && direction != domain.TransactionDirectionLent {
		return nil, &InvalidFieldError{Field: "direction", Value: in.Direction}
	}

	if strings.TrimSpace(in.CounterpartyName) == "" {
		return nil, &MissingFieldError{Field: "counterparty_name"}
	}

	txn := &domain.Transaction{
		OwnerID:          ownerID,
		Kind:             kind,
		CounterpartyName: strings.TrimSpace(in.CounterpartyName),
		Direction:        direction,
		OccurredAt:       now,
		Status:           domain.TransactionStatusPending,
		Notes:            strings.TrimSpace(in.Notes),
	}

	switch kind {
	case domain.TransactionKindMoney:
		if strings.TrimSpace(in.Amount) == "" {
			return nil, &MissingFieldError{Field: "amount"}
		}
		cents, err := ParseDecimalToCents(in.Amount)
		if err != nil {
			return nil, err
		}
		txn.AmountCents = cents
	case domain.TransactionKindItem:
		if strings.TrimSpace(in.ItemName) == "" {
			return nil, &MissingFieldError{Field: "item_name"}
		}
		txn.ItemName = strings.TrimSpace(in.ItemName)
	}

	return txn, nil
}
