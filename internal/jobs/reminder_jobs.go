package jobs

import (
	"context"

	"borrowbuddy-backend/internal/domain"
	"borrowbuddy-backend/internal/ledger"
	"borrowbuddy-backend/internal/logger"
)

// SendPendingReminders emails each user a summary of their open loans.
// Users with nothing pending are skipped.
func (jr *JobRunner) SendPendingReminders() {
	jr.runWithRecovery("SendPendingReminders", func() {
		ctx := context.Background()

		users, err := jr.users.ListUsers(ctx)
		if err != nil {
			logger.Error("Failed to list users for reminders", "error", err)
			return
		}

		count := 0
		for _, user := range users {
			if user.Email == "" {
				continue
			}

			txns, err := jr.txns.ListByOwner(ctx, user.ID)
			if err != nil {
				logger.Error("Failed to load transactions for reminder",
					"user_id", user.ID,
					"error", err)
				continue
			}

			pending := 0
			for _, txn := range txns {
				if txn.Status == domain.TransactionStatusPending {
					pending++
				}
			}
			if pending == 0 {
				continue
			}

			balances := ledger.ComputeBalances(txns)
			if err := jr.email.SendPendingReminder(ctx, user.Email, user.Name, balances, pending); err != nil {
				logger.Error("Failed to send pending reminder",
					"user_id", user.ID,
					"email", user.Email,
					"error", err)
				continue
			}

			count++
			logger.Debug("Sent pending reminder",
				"user_id", user.ID,
				"pending", pending)
		}

		logger.Info("Pending reminders sent", "count", count)
	})
}
