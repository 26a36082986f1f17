package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	m := NewManager("test-secret", 24)

	token, expiresAt, err := m.GenerateToken("user-123", "acme@x.com", "PUBLISHER", "pub-456")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), expiresAt, time.Minute)

	claims, err := m.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "acme@x.com", claims.Email)
	assert.Equal(t, "PUBLISHER", claims.Role)
	assert.Equal(t, "pub-456", claims.PublisherID)
}

func TestValidateToken_EmptyPublisherID(t *testing.T) {
	m := NewManager("test-secret", 24)

	token, _, err := m.GenerateToken("user-123", "org@x.com", "NONPROFIT", "")
	require.NoError(t, err)

	claims, err := m.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "NONPROFIT", claims.Role)
	assert.Empty(t, claims.PublisherID)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	m := NewManager("secret-a", 24)
	other := NewManager("secret-b", 24)

	token, _, err := m.GenerateToken("user-123", "acme@x.com", "PUBLISHER", "")
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	m := NewManager("test-secret", -1) // already expired on issue

	token, _, err := m.GenerateToken("user-123", "acme@x.com", "EDUCATIONAL", "")
	require.NoError(t, err)

	_, err = m.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	m := NewManager("test-secret", 24)

	_, err := m.ValidateToken("not-a-token")
	assert.Error(t, err)
}
