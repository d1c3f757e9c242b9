package service

import (
	"context"
	"errors"

	"borrowbuddy-backend/internal/domain"
	"borrowbuddy-backend/internal/identity"
	"borrowbuddy-backend/internal/security"
)

// IdentityClient is the slice of the Identity Toolkit client the auth
// service needs.
type IdentityClient interface {
	SignUpWithPassword(ctx context.Context, email, password string) (*identity.Account, error)
	SignInWithPassword(ctx context.Context, email, password string) (*identity.Account, error)
	SignInWithGoogleIDToken(ctx context.Context, idToken string) (*identity.Account, error)
}

// TokenRevoker invalidates a user's Firebase refresh tokens on sign-out.
type TokenRevoker interface {
	RevokeRefreshTokens(ctx context.Context, userID string) error
}

// firebaseAuthService verifies credentials against Firebase Auth and then
// mints the service's own session tokens, so API authentication looks the
// same regardless of provider.
type firebaseAuthService struct {
	identity IdentityClient
	admin    TokenRevoker
	tokens   security.TokenManager
}

func NewFirebaseAuthService(identityClient IdentityClient, admin TokenRevoker, tokens security.TokenManager) AuthService {
	return &firebaseAuthService{identity: identityClient, admin: admin, tokens: tokens}
}

func (s *firebaseAuthService) SignUp(ctx context.Context, email, password string) (*domain.AuthTokens, error) {
	account, err := s.identity.SignUpWithPassword(ctx, email, password)
	if err != nil {
		return nil, mapIdentityError(err)
	}
	return issueTokens(s.tokens, account.UserID, account.Email)
}

func (s *firebaseAuthService) SignIn(ctx context.Context, email, password string) (*domain.AuthTokens, error) {
	account, err := s.identity.SignInWithPassword(ctx, email, password)
	if err != nil {
		return nil, mapIdentityError(err)
	}
	return issueTokens(s.tokens, account.UserID, account.Email)
}

func (s *firebaseAuthService) SignInWithGoogle(ctx context.Context, idToken string) (*domain.AuthTokens, error) {
	account, err := s.identity.SignInWithGoogleIDToken(ctx, idToken)
	if err != nil {
		return nil, mapIdentityError(err)
	}
	return issueTokens(s.tokens, account.UserID, account.Email)
}

func (s *firebaseAuthService) Refresh(ctx context.Context, refreshToken string) (*domain.AuthTokens, error) {
	return refreshTokens(s.tokens, refreshToken)
}

func (s *firebaseAuthService) SignOut(ctx context.Context, userID string) error {
	return s.admin.RevokeRefreshTokens(ctx, userID)
}

func mapIdentityError(err error) error {
	switch {
	case errors.Is(err, identity.ErrInvalidCredentials):
		return ErrInvalidCredentials
	case errors.Is(err, identity.ErrEmailInUse):
		return ErrEmailInUse
	case errors.Is(err, identity.ErrInvalidIDToken):
		return ErrInvalidGoogleToken
	default:
		return err
	}
}
