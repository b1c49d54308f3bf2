package jwt

import (
	"testing"
	"time"

	"hospital-management-api/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(secret string) *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:        secret,
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 7 * 24 * time.Hour,
	})
}

func TestAccessTokenRoundTrip(t *testing.T) {
	svc := newTestService("test-secret")
	userID := uuid.New()

	token, tokenID, err := svc.GenerateAccessToken(userID, "alice", "patient")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.NotEmpty(t, tokenID)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "patient", claims.Role)
	assert.Equal(t, AccessToken, claims.TokenType)
	assert.Equal(t, tokenID, claims.TokenID)
}

func TestRefreshTokenType(t *testing.T) {
	svc := newTestService("test-secret")

	token, _, err := svc.GenerateRefreshToken(uuid.New(), "alice", "patient")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, RefreshToken, claims.TokenType)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, _, err := newTestService("secret-a").GenerateAccessToken(uuid.New(), "alice", "patient")
	require.NoError(t, err)

	_, err = newTestService("secret-b").ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenExpired(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{
		Secret:       "test-secret",
		AccessExpiry: -time.Minute,
	})

	token, _, err := svc.GenerateAccessToken(uuid.New(), "alice", "patient")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	_, err := newTestService("test-secret").ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestTokenIDsAreUnique(t *testing.T) {
	svc := newTestService("test-secret")
	userID := uuid.New()

	_, first, err := svc.GenerateAccessToken(userID, "alice", "patient")
	require.NoError(t, err)
	_, second, err := svc.GenerateAccessToken(userID, "alice", "patient")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
