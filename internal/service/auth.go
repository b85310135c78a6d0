package service

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"heavylingam-backend/internal/config"
	"heavylingam-backend/internal/domain"
	"heavylingam-backend/internal/logger"
	"heavylingam-backend/internal/security"
)

type authService struct {
	admins map[string]string // lower-cased email -> bcrypt hash
	tokens security.TokenManager
}

func NewAuthService(admins []config.AdminAccount, tokens security.TokenManager) AuthService {
	byEmail := make(map[string]string, len(admins))
	for _, a := range admins {
		byEmail[strings.ToLower(a.Email)] = a.PasswordHash
	}
	return &authService{
		admins: byEmail,
		tokens: tokens,
	}
}

func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	hash, ok := s.admins[strings.ToLower(email)]
	if !ok {
		return "", domain.ErrAuth
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return "", domain.ErrAuth
	}

	token, err := s.tokens.GenerateSessionToken(email)
	if err != nil {
		logger.Error("Failed to sign session token", "error", err)
		return "", domain.ErrAuth
	}
	logger.Info("Admin signed in", "email", email)
	return token, nil
}

// Logout is stateless: the session is the token, ending it is the client
// discarding it.
func (s *authService) Logout(ctx context.Context) error {
	return nil
}
