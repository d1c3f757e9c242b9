package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestTokenManager_RoundTrip(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour, 7*24*time.Hour)

	t.Run("Access token", func(t *testing.T) {
		token, err := tm.GenerateAccessToken("user-1", "alice@example.com")
		assert.NoError(t, err)

		claims, err := tm.ValidateToken(token)
		assert.NoError(t, err)
		assert.Equal(t, "user-1", claims.UserID)
		assert.Equal(t, "alice@example.com", claims.Email)
		assert.Equal(t, TokenTypeAccess, claims.Type)
	})

	t.Run("Refresh token", func(t *testing.T) {
		token, err := tm.GenerateRefreshToken("user-1", "alice@example.com")
		assert.NoError(t, err)

		claims, err := tm.ValidateToken(token)
		assert.NoError(t, err)
		assert.Equal(t, TokenTypeRefresh, claims.Type)
	})
}

func TestTokenManager_Invalid(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour, 7*24*time.Hour)

	t.Run("Garbage token", func(t *testing.T) {
		_, err := tm.ValidateToken("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Wrong secret", func(t *testing.T) {
		other := NewTokenManager("ffffffffffffffffffffffffffffffff", time.Hour, time.Hour)
		token, err := other.GenerateAccessToken("user-1", "")
		assert.NoError(t, err)

		_, err = tm.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Expired token", func(t *testing.T) {
		expired := NewTokenManager(testSecret, -time.Minute, -time.Minute)
		token, err := expired.GenerateAccessToken("user-1", "")
		assert.NoError(t, err)

		_, err = tm.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})
}
