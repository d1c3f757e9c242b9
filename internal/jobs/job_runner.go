package jobs

import (
	"context"

	"borrowbuddy-backend/internal/config"
	"borrowbuddy-backend/internal/domain"
	"borrowbuddy-backend/internal/logger"
	"borrowbuddy-backend/internal/repository"
	"borrowbuddy-backend/internal/service"
)

// UserSource enumerates every account the reminder job should consider.
// The Firebase deployment satisfies it with the Admin SDK user iterator,
// the postgres deployment with the users table.
type UserSource interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
}

// RepositoryUserSource adapts a UserRepository to the UserSource the
// jobs need.
type RepositoryUserSource struct {
	Repo repository.UserRepository
}

func (s RepositoryUserSource) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.Repo.List(ctx)
}

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	users  UserSource
	txns   repository.TransactionRepository
	email  service.EmailService
	config *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(users UserSource, txns repository.TransactionRepository, email service.EmailService, cfg *config.Config) *JobRunner {
	return &JobRunner{
		users:  users,
		txns:   txns,
		email:  email,
		config: cfg,
	}
}

// Config exposes the loaded configuration to the scheduler.
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// RunAllDailyJobs runs all daily jobs (for manual execution)
func (jr *JobRunner) RunAllDailyJobs() {
	jr.SendPendingReminders()
}
