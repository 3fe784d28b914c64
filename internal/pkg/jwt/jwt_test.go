package jwt_test

import (
	"testing"

	"github.com/Ishwar78/manavwelfaresevasociety.com-sub000/internal/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestAccessTokenRoundTrip(t *testing.T) {
	token, err := jwt.GenerateAccessToken(42, "member", "member@example.com", "USER", testSecret, 15)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := jwt.ValidateAccessToken(token, testSecret)
	require.NoError(t, err)

	assert.Equal(t, uint(42), claims.AccountID)
	assert.Equal(t, "member", claims.Kind)
	assert.Equal(t, "member@example.com", claims.Email)
	assert.Equal(t, "USER", claims.Role)
}

func TestValidateAccessToken(t *testing.T) {
	t.Run("Wrong secret", func(t *testing.T) {
		token, err := jwt.GenerateAccessToken(1, "admin", "a@b.com", "ADMIN", testSecret, 15)
		require.NoError(t, err)

		_, err = jwt.ValidateAccessToken(token, "other-secret")
		assert.ErrorIs(t, err, jwt.ErrTokenInvalid)
	})

	t.Run("Expired token", func(t *testing.T) {
		token, err := jwt.GenerateAccessToken(1, "admin", "a@b.com", "ADMIN", testSecret, -1)
		require.NoError(t, err)

		_, err = jwt.ValidateAccessToken(token, testSecret)
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("Garbage token", func(t *testing.T) {
		_, err := jwt.ValidateAccessToken("garbage", testSecret)
		assert.ErrorIs(t, err, jwt.ErrTokenInvalid)
	})
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	token, err := jwt.GenerateRefreshToken(7, "student", "token-id-1", testSecret, 7)
	require.NoError(t, err)

	claims, err := jwt.ValidateRefreshToken(token, testSecret)
	require.NoError(t, err)

	assert.Equal(t, uint(7), claims.AccountID)
	assert.Equal(t, "student", claims.Kind)
	assert.Equal(t, "token-id-1", claims.TokenID)
}

func TestTokensAreNotInterchangeable(t *testing.T) {
	// An access token must not validate as a refresh token with the
	// refresh secret, and vice versa, as long as the secrets differ.
	access, err := jwt.GenerateAccessToken(1, "member", "m@e.com", "USER", "access-secret", 15)
	require.NoError(t, err)

	_, err = jwt.ValidateRefreshToken(access, "refresh-secret")
	assert.ErrorIs(t, err, jwt.ErrTokenInvalid)
}
