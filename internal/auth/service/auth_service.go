package service

import (
	"context"

	"github.com/apexforge/studio-backend/internal/apperr"
	"github.com/apexforge/studio-backend/internal/auth/domain"
	"github.com/apexforge/studio-backend/internal/logger"
)

type AuthService struct {
	verifier *CredentialVerifier
	tokens   *TokenService
}

func NewAuthService(verifier *CredentialVerifier, tokens *TokenService) *AuthService {
	return &AuthService{
		verifier: verifier,
		tokens:   tokens,
	}
}

// Login exchanges admin credentials for a bearer token.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.Token, error) {
	admin, ok := s.verifier.Verify(ctx, username, password)
	if !ok {
		return nil, apperr.Unauthorized("Incorrect username or password")
	}

	token, err := s.tokens.Issue(*admin)
	if err != nil {
		return nil, err
	}

	logger.New(ctx).Infof("auth.login", "user=%s", admin.Username)
	return &domain.Token{AccessToken: token, TokenType: "bearer"}, nil
}

// Verify checks a bearer token and returns the admin username.
func (s *AuthService) Verify(token string) (string, error) {
	return s.tokens.Verify(token)
}
