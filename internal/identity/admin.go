package identity

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/iterator"

	"borrowbuddy-backend/internal/domain"
)

// AdminClient wraps the Firebase Admin Auth client for the operations the
// backend performs with service credentials: revoking sessions on sign-out
// and enumerating users for the reminder job.
type AdminClient struct {
	auth *auth.Client
}

func NewAdminClient(ctx context.Context, app *firebase.App) (*AdminClient, error) {
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to open firebase auth client: %w", err)
	}
	return &AdminClient{auth: client}, nil
}

// RevokeRefreshTokens invalidates all refresh tokens issued to the user.
func (c *AdminClient) RevokeRefreshTokens(ctx context.Context, userID string) error {
	if err := c.auth.RevokeRefreshTokens(ctx, userID); err != nil {
		return fmt.Errorf("failed to revoke refresh tokens: %w", err)
	}
	return nil
}

// ListUsers enumerates every account in the Firebase project.
func (c *AdminClient) ListUsers(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	iter := c.auth.Users(ctx, "")
	for {
		record, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list users: %w", err)
		}
		users = append(users, domain.User{
			ID:    record.UID,
			Email: record.Email,
			Name:  record.DisplayName,
		})
	}
	return users, nil
}
