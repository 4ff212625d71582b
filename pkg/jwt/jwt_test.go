package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager() *Manager {
	return NewManager(&Config{
		Secret:        "test-secret",
		Issuer:        "openmusic-test",
		TokenExpiry:   time.Hour,
		RefreshExpiry: 24 * time.Hour,
	})
}

func TestManager_GenerateAndValidateToken(t *testing.T) {
	m := newTestManager()

	token, err := m.GenerateToken("user-1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)
	assert.Equal(t, "openmusic-test", claims.Issuer)
}

func TestManager_GenerateAndValidateRefreshToken(t *testing.T) {
	m := newTestManager()

	token, err := m.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	claims, err := m.ValidateRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, TokenTypeRefresh, claims.TokenType)
}

func TestManager_RejectsTokenTypeSubstitution(t *testing.T) {
	m := newTestManager()

	access, err := m.GenerateToken("user-1")
	require.NoError(t, err)
	refresh, err := m.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	_, err = m.ValidateToken(refresh)
	assert.Error(t, err, "refresh token must not validate as access token")

	_, err = m.ValidateRefreshToken(access)
	assert.Error(t, err, "access token must not validate as refresh token")
}

func TestManager_RejectsWrongSecret(t *testing.T) {
	m := newTestManager()
	other := NewManager(&Config{Secret: "other-secret", Issuer: "openmusic-test"})

	token, err := m.GenerateToken("user-1")
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestManager_RejectsExpiredToken(t *testing.T) {
	m := NewManager(&Config{
		Secret:      "test-secret",
		Issuer:      "openmusic-test",
		TokenExpiry: -time.Minute,
	})

	token, err := m.GenerateToken("user-1")
	require.NoError(t, err)

	_, err = m.ValidateToken(token)
	assert.Error(t, err)
}

func TestManager_RejectsGarbage(t *testing.T) {
	m := newTestManager()

	_, err := m.ValidateToken("not-a-jwt")
	assert.Error(t, err)
}
