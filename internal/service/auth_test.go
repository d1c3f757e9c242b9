package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"borrowbuddy-backend/internal/domain"
	"borrowbuddy-backend/internal/identity"
	"borrowbuddy-backend/internal/repository"
	"borrowbuddy-backend/internal/security"
)

func testTokenManager() security.TokenManager {
	return security.NewTokenManager("unit-test-secret-at-least-32-chars!!", time.Minute, time.Hour)
}

func TestLocalAuthService_SignUp(t *testing.T) {
	ctx := context.Background()

	t.Run("New email gets an account and tokens", func(t *testing.T) {
		users := new(MockUserRepo)
		svc := NewLocalAuthService(users, testTokenManager())

		users.On("GetByEmail", ctx, "new@example.com").Return(nil, repository.ErrNotFound)
		users.On("Create", ctx, mock.MatchedBy(func(u *domain.User) bool {
			if u.Email != "new@example.com" {
				return false
			}
			return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("hunter22")) == nil
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.User).ID = "user-1"
		}).Return(nil)

		tokens, err := svc.SignUp(ctx, "new@example.com", "hunter22")
		assert.NoError(t, err)
		assert.Equal(t, "user-1", tokens.UserID)
		assert.NotEmpty(t, tokens.AccessToken)
		assert.NotEmpty(t, tokens.RefreshToken)
	})

	t.Run("Existing email is rejected", func(t *testing.T) {
		users := new(MockUserRepo)
		svc := NewLocalAuthService(users, testTokenManager())

		users.On("GetByEmail", ctx, "taken@example.com").Return(&domain.User{ID: "user-1"}, nil)

		_, err := svc.SignUp(ctx, "taken@example.com", "hunter22")
		assert.ErrorIs(t, err, ErrEmailInUse)
		users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestLocalAuthService_SignIn(t *testing.T) {
	ctx := context.Background()
	hash, _ := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)

	t.Run("Correct password", func(t *testing.T) {
		users := new(MockUserRepo)
		svc := NewLocalAuthService(users, testTokenManager())

		users.On("GetByEmail", ctx, "a@example.com").Return(&domain.User{
			ID: "user-1", Email: "a@example.com", PasswordHash: string(hash),
		}, nil)

		tokens, err := svc.SignIn(ctx, "a@example.com", "hunter22")
		assert.NoError(t, err)
		assert.Equal(t, "user-1", tokens.UserID)
	})

	t.Run("Wrong password", func(t *testing.T) {
		users := new(MockUserRepo)
		svc := NewLocalAuthService(users, testTokenManager())

		users.On("GetByEmail", ctx, "a@example.com").Return(&domain.User{
			ID: "user-1", Email: "a@example.com", PasswordHash: string(hash),
		}, nil)

		_, err := svc.SignIn(ctx, "a@example.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Unknown email reads the same as a wrong password", func(t *testing.T) {
		users := new(MockUserRepo)
		svc := NewLocalAuthService(users, testTokenManager())

		users.On("GetByEmail", ctx, "nobody@example.com").Return(nil, repository.ErrNotFound)

		_, err := svc.SignIn(ctx, "nobody@example.com", "hunter22")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestLocalAuthService_Google(t *testing.T) {
	svc := NewLocalAuthService(new(MockUserRepo), testTokenManager())
	_, err := svc.SignInWithGoogle(context.Background(), "some-id-token")
	assert.ErrorIs(t, err, ErrGoogleSignInUnsupported)
}

func TestFirebaseAuthService(t *testing.T) {
	ctx := context.Background()
	account := &identity.Account{UserID: "fb-1", Email: "a@example.com"}

	t.Run("SignUp mints session tokens", func(t *testing.T) {
		idc := new(MockIdentityClient)
		svc := NewFirebaseAuthService(idc, new(MockTokenRevoker), testTokenManager())

		idc.On("SignUpWithPassword", ctx, "a@example.com", "hunter22").Return(account, nil)

		tokens, err := svc.SignUp(ctx, "a@example.com", "hunter22")
		assert.NoError(t, err)
		assert.Equal(t, "fb-1", tokens.UserID)
		assert.NotEmpty(t, tokens.AccessToken)
	})

	t.Run("SignUp maps email collisions", func(t *testing.T) {
		idc := new(MockIdentityClient)
		svc := NewFirebaseAuthService(idc, new(MockTokenRevoker), testTokenManager())

		idc.On("SignUpWithPassword", ctx, "a@example.com", "hunter22").Return(nil, identity.ErrEmailInUse)

		_, err := svc.SignUp(ctx, "a@example.com", "hunter22")
		assert.ErrorIs(t, err, ErrEmailInUse)
	})

	t.Run("SignIn maps bad credentials", func(t *testing.T) {
		idc := new(MockIdentityClient)
		svc := NewFirebaseAuthService(idc, new(MockTokenRevoker), testTokenManager())

		idc.On("SignInWithPassword", ctx, "a@example.com", "wrong").Return(nil, identity.ErrInvalidCredentials)

		_, err := svc.SignIn(ctx, "a@example.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Google sign-in", func(t *testing.T) {
		idc := new(MockIdentityClient)
		svc := NewFirebaseAuthService(idc, new(MockTokenRevoker), testTokenManager())

		idc.On("SignInWithGoogleIDToken", ctx, "google-token").Return(account, nil)

		tokens, err := svc.SignInWithGoogle(ctx, "google-token")
		assert.NoError(t, err)
		assert.Equal(t, "fb-1", tokens.UserID)
	})

	t.Run("Google sign-in maps bad ID tokens", func(t *testing.T) {
		idc := new(MockIdentityClient)
		svc := NewFirebaseAuthService(idc, new(MockTokenRevoker), testTokenManager())

		idc.On("SignInWithGoogleIDToken", ctx, "junk").Return(nil, identity.ErrInvalidIDToken)

		_, err := svc.SignInWithGoogle(ctx, "junk")
		assert.ErrorIs(t, err, ErrInvalidGoogleToken)
	})

	t.Run("SignOut revokes refresh tokens", func(t *testing.T) {
		revoker := new(MockTokenRevoker)
		svc := NewFirebaseAuthService(new(MockIdentityClient), revoker, testTokenManager())

		revoker.On("RevokeRefreshTokens", ctx, "fb-1").Return(nil)

		assert.NoError(t, svc.SignOut(ctx, "fb-1"))
		revoker.AssertExpectations(t)
	})
}

func TestRefresh(t *testing.T) {
	ctx := context.Background()
	tm := testTokenManager()
	svc := NewLocalAuthService(new(MockUserRepo), tm)

	t.Run("Valid refresh token yields a new pair", func(t *testing.T) {
		refresh, err := tm.GenerateRefreshToken("user-1", "a@example.com")
		assert.NoError(t, err)

		tokens, err := svc.Refresh(ctx, refresh)
		assert.NoError(t, err)
		assert.Equal(t, "user-1", tokens.UserID)
		assert.Equal(t, "a@example.com", tokens.Email)
		assert.NotEmpty(t, tokens.AccessToken)
	})

	t.Run("Access token is not accepted for refresh", func(t *testing.T) {
		access, err := tm.GenerateAccessToken("user-1", "a@example.com")
		assert.NoError(t, err)

		_, err = svc.Refresh(ctx, access)
		assert.ErrorIs(t, err, security.ErrWrongTokenType)
	})

	t.Run("Garbage token", func(t *testing.T) {
		_, err := svc.Refresh(ctx, "not-a-jwt")
		assert.Error(t, err)
	})
}
