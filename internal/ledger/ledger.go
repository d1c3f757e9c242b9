package ledger

import (
	"fmt"
	"sort"

	"borrowbuddy-backend/internal/domain"
)

// Category selects one of the four transaction views.
type Category string

const (
	CategoryAll      Category = "all"
	CategoryOwedToMe Category = "owedToMe"
	CategoryIOwe     Category = "iOwe"
	CategorySettled  Category = "settled"
)

// ParseCategory validates a category string from the API. An empty string
// means "all".
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case "":
		return CategoryAll, nil
	case CategoryAll, CategoryOwedToMe, CategoryIOwe, CategorySettled:
		return Category(s), nil
	default:
		return "", fmt.Errorf("unknown category: %q", s)
	}
}

// Balances holds the pending totals in both directions.
type Balances struct {
	OwedToMeCents int64
	IOweCents     int64
}

// ComputeBalances sums the pending money amounts of a user's records.
// Lent records add to OwedToMe, borrowed records add to IOwe. Item-kind
// records are tracked but not monetized, so they contribute nothing to
// either total. Settled records are excluded.
func ComputeBalances(records []domain.Transaction) Balances {
	var b Balances
	for _, txn := range records {
		if txn.Status != domain.TransactionStatusPending {
			continue
		}
		switch txn.Direction {
		case domain.TransactionDirectionLent:
			b.OwedToMeCents += txn.AmountCents
		case domain.TransactionDirectionBorrowed:
			b.IOweCents += txn.AmountCents
		}
	}
	return b
}

// FilterByCategory returns the records matching the category, preserving
// their relative order. CategoryAll is the identity.
func FilterByCategory(records []domain.Transaction, category Category) []domain.Transaction {
	if category == CategoryAll {
		return records
	}
	out := make([]domain.Transaction, 0, len(records))
	for _, txn := range records {
		if matchesCategory(txn, category) {
			out = append(out, txn)
		}
	}
	return out
}

func matchesCategory(txn domain.Transaction, category Category) bool {
	switch category {
	case CategoryOwedToMe:
		return txn.Direction == domain.TransactionDirectionLent && txn.Status == domain.TransactionStatusPending
	case CategoryIOwe:
		return txn.Direction == domain.TransactionDirectionBorrowed && txn.Status == domain.TransactionStatusPending
	case CategorySettled:
		return txn.Status == domain.TransactionStatusSettled
	}
	return false
}

// Recent returns the n most recent records by OccurredAt, newest first.
// The input slice is left untouched.
func Recent(records []domain.Transaction, n int) []domain.Transaction {
	if n < 0 {
		n = 0
	}
	sorted := make([]domain.Transaction, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].OccurredAt.After(sorted[j].OccurredAt)
	})
	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}
