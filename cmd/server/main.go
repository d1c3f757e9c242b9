package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	firebase "firebase.google.com/go/v4"
	_ "github.com/lib/pq"

	httpapi "borrowbuddy-backend/internal/api/http"
	"borrowbuddy-backend/internal/config"
	"borrowbuddy-backend/internal/identity"
	"borrowbuddy-backend/internal/logger"
	"borrowbuddy-backend/internal/repository"
	fsrepo "borrowbuddy-backend/internal/repository/firestore"
	"borrowbuddy-backend/internal/repository/postgres"
	"borrowbuddy-backend/internal/security"
	"borrowbuddy-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Borrow Buddy Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Store configuration", "type", cfg.Store.Type)
	logger.Info("Auth configuration", "provider", cfg.Auth.Provider)

	ctx := context.Background()

	// Initialize the Firebase app when either the store or the auth
	// provider needs it
	var firebaseApp *firebase.App
	if cfg.Store.Type == config.StoreTypeFirestore || cfg.Auth.Provider == config.AuthProviderFirebase {
		firebaseApp, err = fsrepo.NewApp(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsFile)
		if err != nil {
			logger.Error("Failed to initialize Firebase app", "error", err)
			log.Fatalf("Failed to initialize Firebase app: %v", err)
		}
		logger.Info("Firebase app initialized", "project_id", cfg.Firebase.ProjectID)
	}

	// Initialize Repositories
	var txnRepo repository.TransactionRepository
	var userRepo repository.UserRepository
	switch cfg.Store.Type {
	case config.StoreTypeFirestore:
		client, err := fsrepo.NewClient(ctx, firebaseApp)
		if err != nil {
			logger.Error("Failed to connect to Firestore", "error", err)
			log.Fatalf("Failed to connect to Firestore: %v", err)
		}
		defer client.Close()
		txnRepo = fsrepo.NewTransactionRepository(client)
		logger.Info("Firestore connection established")
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
		userRepo = store.UserRepository
	}

	// Initialize Security
	tokenManager := security.NewTokenManager(
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.AccessTokenExpiry)*time.Minute,
		time.Duration(cfg.Auth.RefreshTokenExpiry)*time.Minute,
	)

	// Initialize Services
	ledgerSvc := service.NewLedgerService(txnRepo, cfg.Dashboard.RecentLimit)

	var authSvc service.AuthService
	switch cfg.Auth.Provider {
	case config.AuthProviderFirebase:
		adminClient, err := identity.NewAdminClient(ctx, firebaseApp)
		if err != nil {
			logger.Error("Failed to initialize Firebase Auth client", "error", err)
			log.Fatalf("Failed to initialize Firebase Auth client: %v", err)
		}
		identityClient := identity.NewClient(cfg.Firebase.WebAPIKey)
		authSvc = service.NewFirebaseAuthService(identityClient, adminClient, tokenManager)
	case config.AuthProviderLocal:
		authSvc = service.NewLocalAuthService(userRepo, tokenManager)
	}

	// Set up HTTP server
	router := httpapi.NewRouter(ledgerSvc, authSvc, tokenManager)
	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down HTTP server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}
	logger.Info("HTTP server stopped. Goodbye!")
}
