package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndVerify(t *testing.T) {
	manager := NewManager("test-secret", 24)

	token, err := manager.GenerateToken(7, "reader", "user")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "reader", claims.Username)
	assert.Equal(t, "user", claims.Role)
}

func TestVerify_WrongSecret(t *testing.T) {
	token, err := NewManager("secret-one", 24).GenerateToken(7, "reader", "user")
	require.NoError(t, err)

	_, err = NewManager("secret-two", 24).VerifyToken(token)
	assert.Error(t, err)
}

func TestVerify_ExpiredToken(t *testing.T) {
	manager := NewManager("test-secret", -1)

	token, err := manager.GenerateToken(7, "reader", "user")
	require.NoError(t, err)

	_, err = manager.VerifyToken(token)
	assert.Error(t, err)
}

func TestVerify_Garbage(t *testing.T) {
	_, err := NewManager("test-secret", 24).VerifyToken("not.a.token")
	assert.Error(t, err)
}
