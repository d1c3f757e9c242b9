package domain

import "time"

type TransactionKind string

const (
	TransactionKindMoney TransactionKind = "money"
	TransactionKindItem  TransactionKind = "item"
)

type TransactionDirection string

const (
	TransactionDirectionBorrowed TransactionDirection = "borrowed"
	TransactionDirectionLent     TransactionDirection = "lent"
)

type TransactionStatus string

const (
	TransactionStatusPending TransactionStatus = "pending"
	TransactionStatusSettled TransactionStatus = "settled"
)

// Transaction is one recorded loan of money or an item between the owner
// and a named counterparty. Exactly one of AmountCents/ItemName is set,
// determined by Kind. Status moves one way, pending to settled.
type Transaction struct {
	ID               string               `json:"id" firestore:"-"`
	OwnerID          string               `json:"owner_id" firestore:"ownerId"`
	Kind             TransactionKind      `json:"kind" firestore:"kind"`
	AmountCents      int64                `json:"amount_cents,omitempty" firestore:"amountCents"`
	ItemName         string               `json:"item_name,omitempty" firestore:"itemName"`
	CounterpartyName string               `json:"counterparty_name" firestore:"counterpartyName"`
	Direction        TransactionDirection `json:"direction" firestore:"direction"`
	OccurredAt       time.Time            `json:"occurred_at" firestore:"occurredAt"`
	Status           TransactionStatus    `json:"status" firestore:"status"`
	Notes            string               `json:"notes,omitempty" firestore:"notes"`
}
