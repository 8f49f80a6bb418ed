package token_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"usersvc/internal/pkg/token"
)

func TestGenerateAndValidateToken(t *testing.T) {
	svc := token.NewService("secret", time.Hour)

	signed, err := svc.GenerateToken("user-1", "jane@example.com")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(signed)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "jane@example.com", claims.Username)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	signed, err := token.NewService("secret", time.Hour).GenerateToken("user-1", "jane@example.com")
	require.NoError(t, err)

	_, err = token.NewService("other", time.Hour).ValidateToken(signed)
	assert.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	signed, err := token.NewService("secret", -time.Minute).GenerateToken("user-1", "jane@example.com")
	require.NoError(t, err)

	_, err = token.NewService("secret", time.Hour).ValidateToken(signed)
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := token.NewService("secret", time.Hour).ValidateToken("not-a-token")
	assert.Error(t, err)
}
