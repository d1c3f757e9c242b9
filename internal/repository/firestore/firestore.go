// Package firestore implements the ledger store on Cloud Firestore, the
// backend the Borrow Buddy clients were built against.
package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"borrowbuddy-backend/internal/repository"
)

// NewApp initializes the Firebase app shared by the Firestore store and
// the Firebase Auth clients. With no credentials file, application
// default credentials are used.
func NewApp(ctx context.Context, projectID, credentialsFile string) (*firebase.App, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}
	return app, nil
}

// NewClient opens the Firestore client for the configured project.
func NewClient(ctx context.Context, app *firebase.App) (*firestore.Client, error) {
	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to open firestore client: %w", err)
	}
	return client, nil
}

// mapError folds Firestore RPC failures into the repository error
// taxonomy. Anything that is not a missing document counts as the store
// being unavailable.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if status.Code(err) == codes.NotFound {
		return repository.ErrNotFound
	}
	return fmt.Errorf("%w: %v", repository.ErrUnavailable, err)
}
