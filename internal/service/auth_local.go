package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"borrowbuddy-backend/internal/domain"
	"borrowbuddy-backend/internal/repository"
	"borrowbuddy-backend/internal/security"
)

var (
	ErrInvalidCredentials      = errors.New("invalid email or password")
	ErrEmailInUse              = errors.New("email already in use")
	ErrInvalidGoogleToken      = errors.New("invalid google credential")
	ErrGoogleSignInUnsupported = errors.New("google sign-in requires the firebase auth provider")
)

// localAuthService authenticates against the users table for postgres
// deployments that run without Firebase.
type localAuthService struct {
	userRepo repository.UserRepository
	tokens   security.TokenManager
}

func NewLocalAuthService(userRepo repository.UserRepository, tokens security.TokenManager) AuthService {
	return &localAuthService{userRepo: userRepo, tokens: tokens}
}

func (s *localAuthService) SignUp(ctx context.Context, email, password string) (*domain.AuthTokens, error) {
	if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailInUse
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return issueTokens(s.tokens, user.ID, user.Email)
}

func (s *localAuthService) SignIn(ctx context.Context, email, password string) (*domain.AuthTokens, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return issueTokens(s.tokens, user.ID, user.Email)
}

func (s *localAuthService) SignInWithGoogle(ctx context.Context, idToken string) (*domain.AuthTokens, error) {
	return nil, ErrGoogleSignInUnsupported
}

func (s *localAuthService) Refresh(ctx context.Context, refreshToken string) (*domain.AuthTokens, error) {
	return refreshTokens(s.tokens, refreshToken)
}

func (s *localAuthService) SignOut(ctx context.Context, userID string) error {
	// Access tokens are short-lived and there is no server-side session
	// state for local accounts; sign-out is the client discarding its
	// tokens.
	return nil
}

// issueTokens mints the access/refresh pair both providers hand out.
func issueTokens(tokens security.TokenManager, userID, email string) (*domain.AuthTokens, error) {
	access, err := tokens.GenerateAccessToken(userID, email)
	if err != nil {
		return nil, err
	}
	refresh, err := tokens.GenerateRefreshToken(userID, email)
	if err != nil {
		return nil, err
	}
	return &domain.AuthTokens{
		UserID:       userID,
		Email:        email,
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}

// refreshTokens validates a refresh token and mints a fresh pair.
func refreshTokens(tokens security.TokenManager, refreshToken string) (*domain.AuthTokens, error) {
	claims, err := tokens.ValidateToken(refreshToken)
	if err != nil {
		return nil, err
	}
	if claims.Type != security.TokenTypeRefresh {
		return nil, security.ErrWrongTokenType
	}
	return issueTokens(tokens, claims.UserID, claims.Email)
}
