package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/payflow/storepos/pkg/errors"
)

func TestManager_GenerateAndParse(t *testing.T) {
	m := NewManager("test-secret", 2*time.Hour, 168*time.Hour)

	pair, err := m.GenerateToken(7, 3)
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, int64(7200), pair.ExpiresIn)

	claims, err := m.ParseToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.OperatorID)
	assert.Equal(t, uint(3), claims.StoreID)
	assert.Equal(t, "storepos", claims.Issuer)
}

func TestManager_ParseExpiredToken(t *testing.T) {
	m := NewManager("test-secret", -time.Minute, 168*time.Hour)

	pair, err := m.GenerateToken(7, 3)
	require.NoError(t, err)

	_, err = m.ParseToken(pair.AccessToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

func TestManager_ParseWrongSecret(t *testing.T) {
	m := NewManager("test-secret", 2*time.Hour, 168*time.Hour)
	other := NewManager("other-secret", 2*time.Hour, 168*time.Hour)

	pair, err := m.GenerateToken(7, 3)
	require.NoError(t, err)

	_, err = other.ParseToken(pair.AccessToken)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestManager_ParseGarbage(t *testing.T) {
	m := NewManager("test-secret", 2*time.Hour, 168*time.Hour)

	_, err := m.ParseToken("not-a-token")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}
