package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	"borrowbuddy-backend/internal/config"
	"borrowbuddy-backend/internal/identity"
	"borrowbuddy-backend/internal/jobs"
	"borrowbuddy-backend/internal/logger"
	"borrowbuddy-backend/internal/repository"
	fsrepo "borrowbuddy-backend/internal/repository/firestore"
	"borrowbuddy-backend/internal/repository/postgres"
	"borrowbuddy-backend/internal/scheduler"
	"borrowbuddy-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'send-pending-reminders', 'all-daily')")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Borrow Buddy Cronjob Runner...", "log_level", cfg.Log.Level)

	ctx := context.Background()

	// Initialize the store and user source for the configured backend
	var txnRepo repository.TransactionRepository
	var userSource jobs.UserSource
	switch cfg.Store.Type {
	case config.StoreTypeFirestore:
		firebaseApp, err := fsrepo.NewApp(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsFile)
		if err != nil {
			logger.Error("Failed to initialize Firebase app", "error", err)
			log.Fatalf("Failed to initialize Firebase app: %v", err)
		}

		client, err := fsrepo.NewClient(ctx, firebaseApp)
		if err != nil {
			logger.Error("Failed to connect to Firestore", "error", err)
			log.Fatalf("Failed to connect to Firestore: %v", err)
		}
		defer client.Close()
		logger.Info("Firestore connection established")

		adminClient, err := identity.NewAdminClient(ctx, firebaseApp)
		if err != nil {
			logger.Error("Failed to initialize Firebase Auth client", "error", err)
			log.Fatalf("Failed to initialize Firebase Auth client: %v", err)
		}

		txnRepo = fsrepo.NewTransactionRepository(client)
		userSource = adminClient
	case config.StoreTypePostgres:
		db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
		if err != nil {
			logger.Error("Failed to connect to database", "error", err)
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()

		if err := db.Ping(); err != nil {
			logger.Error("Failed to ping database", "error", err)
			log.Fatalf("Failed to ping database: %v", err)
		}
		logger.Info("Database connection established")

		store := postgres.NewStore(db)
		txnRepo = store.TransactionRepository
		userSource = jobs.RepositoryUserSource{Repo: store.UserRepository}
	}

	// Initialize Services
	emailService := service.NewEmailService(
		cfg.Email.SendGridAPIKey,
		cfg.Email.FromEmail,
		cfg.Email.FromName,
	)

	// Initialize Job Runner
	jobRunner := jobs.NewJobRunner(userSource, txnRepo, emailService, cfg)

	// Check if running a single job
	if *runOnce != "" {
		logger.Info("Running job once", "job", *runOnce)
		runJobOnce(jobRunner, *runOnce)
		logger.Info("Job execution completed", "job", *runOnce)
		return
	}

	// Initialize Scheduler
	cronScheduler := scheduler.NewScheduler(jobRunner)

	// Start scheduler
	cronScheduler.Start()
	logger.Info("Cronjob scheduler is running. Press Ctrl+C to stop.")

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down cronjob scheduler...")
	cronScheduler.Stop()
	logger.Info("Cronjob scheduler stopped. Goodbye!")
}

// runJobOnce runs a specific job once and exits
func runJobOnce(jobRunner *jobs.JobRunner, jobName string) {
	switch jobName {
	case "send-pending-reminders":
		jobRunner.SendPendingReminders()
	case "all-daily":
		jobRunner.RunAllDailyJobs()
	default:
		logger.Error("Unknown job name", "job", jobName)
		fmt.Printf("Available jobs:\n")
		fmt.Printf("  - send-pending-reminders\n")
		fmt.Printf("  - all-daily\n")
		os.Exit(1)
	}
}
