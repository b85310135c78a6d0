package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	m := NewTokenManager("0123456789abcdef0123456789abcdef", time.Hour)

	token, err := m.GenerateSessionToken("admin@heavylingam.example")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin@heavylingam.example", claims.Email)
}

func TestTokenManager_RejectsGarbage(t *testing.T) {
	m := NewTokenManager("0123456789abcdef0123456789abcdef", time.Hour)

	_, err := m.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_RejectsWrongSecret(t *testing.T) {
	issuer := NewTokenManager("0123456789abcdef0123456789abcdef", time.Hour)
	verifier := NewTokenManager("ffffffffffffffffffffffffffffffff", time.Hour)

	token, err := issuer.GenerateSessionToken("admin@heavylingam.example")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_RejectsExpired(t *testing.T) {
	short := NewTokenManager("0123456789abcdef0123456789abcdef", time.Nanosecond)

	token, err := short.GenerateSessionToken("admin@heavylingam.example")
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)
	_, err = short.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}
