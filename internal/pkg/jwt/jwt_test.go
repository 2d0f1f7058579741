package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *Service {
	return New("access-secret", 15*time.Minute, "refresh-secret", 240*time.Hour)
}

func TestAccessTokenRoundTrip(t *testing.T) {
	svc := newTestService()

	token, err := svc.GenerateAccessToken(42, "chai", "chai@example.com")
	require.NoError(t, err)

	claims, err := svc.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "chai", claims.Username)
	assert.Equal(t, "chai@example.com", claims.Email)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	svc := newTestService()

	token, err := svc.GenerateRefreshToken(42)
	require.NoError(t, err)

	claims, err := svc.ValidateRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
}

func TestTokensUseSeparateSecrets(t *testing.T) {
	svc := newTestService()

	access, err := svc.GenerateAccessToken(1, "u", "u@example.com")
	require.NoError(t, err)
	refresh, err := svc.GenerateRefreshToken(1)
	require.NoError(t, err)

	assert.NotEqual(t, access, refresh)

	_, err = svc.ValidateAccessToken(refresh)
	assert.ErrorIs(t, err, ErrInvalidToken)
	_, err = svc.ValidateRefreshToken(access)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestConsecutiveTokensDiffer(t *testing.T) {
	svc := newTestService()

	a, err := svc.GenerateRefreshToken(1)
	require.NoError(t, err)
	b, err := svc.GenerateRefreshToken(1)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestExpiredTokenRejected(t *testing.T) {
	svc := New("access-secret", -time.Minute, "refresh-secret", -time.Minute)

	token, err := svc.GenerateAccessToken(1, "u", "u@example.com")
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTamperedTokenRejected(t *testing.T) {
	svc := newTestService()
	other := New("different-secret", 15*time.Minute, "refresh-secret", time.Hour)

	token, err := other.GenerateAccessToken(1, "u", "u@example.com")
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
