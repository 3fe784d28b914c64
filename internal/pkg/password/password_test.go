package password_test

import (
	"testing"

	"github.com/Ishwar78/manavwelfaresevasociety.com-sub000/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := password.Hash("secret123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "secret123", hash)

	assert.True(t, password.Verify("secret123", hash))
	assert.False(t, password.Verify("wrong", hash))
	assert.False(t, password.Verify("secret123", "not-a-hash"))
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{"Minimum length", "abcdef", true},
		{"Longer password", "a-very-long-password", true},
		{"Too short", "abc", false},
		{"Empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, password.ValidatePassword(tt.password))
		})
	}
}

func TestHashToken(t *testing.T) {
	a := password.HashToken("token-a")
	b := password.HashToken("token-b")

	assert.NotEqual(t, a, b)
	assert.Equal(t, a, password.HashToken("token-a"), "hashing must be deterministic")
	assert.Len(t, a, 64) // hex-encoded SHA256
}

func TestGenerateResetToken(t *testing.T) {
	first, err := password.GenerateResetToken()
	require.NoError(t, err)
	second, err := password.GenerateResetToken()
	require.NoError(t, err)

	assert.Len(t, first, 64)
	assert.NotEqual(t, first, second)
}
