package service

import (
	"context"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"heavylingam-backend/internal/config"
	"heavylingam-backend/internal/domain"
	"heavylingam-backend/internal/security"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthFixture(t *testing.T) (AuthService, security.TokenManager) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	require.NoError(t, err)

	tokens := security.NewTokenManager("0123456789abcdef0123456789abcdef", time.Hour)
	svc := NewAuthService([]config.AdminAccount{
		{Email: "Admin@HeavyLingam.example", PasswordHash: string(hash)},
	}, tokens)
	return svc, tokens
}

func TestAuthService_Login(t *testing.T) {
	svc, tokens := newAuthFixture(t)
	ctx := context.Background()

	t.Run("Valid credentials yield a session", func(t *testing.T) {
		token, err := svc.Login(ctx, "admin@heavylingam.example", "correct horse")
		require.NoError(t, err)

		claims, err := tokens.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "admin@heavylingam.example", claims.Email)
	})

	t.Run("Email lookup is case-insensitive", func(t *testing.T) {
		_, err := svc.Login(ctx, "ADMIN@heavylingam.example", "correct horse")
		assert.NoError(t, err)
	})

	t.Run("Wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, "admin@heavylingam.example", "battery staple")
		assert.ErrorIs(t, err, domain.ErrAuth)
	})

	t.Run("Unknown account", func(t *testing.T) {
		_, err := svc.Login(ctx, "nobody@heavylingam.example", "correct horse")
		assert.ErrorIs(t, err, domain.ErrAuth)
	})
}

func TestAuthService_Logout(t *testing.T) {
	svc, _ := newAuthFixture(t)
	assert.NoError(t, svc.Logout(context.Background()))
}
