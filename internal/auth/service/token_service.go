package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/apexforge/studio-backend/internal/apperr"
	"github.com/apexforge/studio-backend/internal/auth/domain"
)

const DefaultTokenTTL = 24 * time.Hour

const invalidCredentialsMsg = "Could not validate credentials"

// TokenService issues and verifies stateless HS256 access tokens. Changing
// the secret invalidates every outstanding token.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// SetClock replaces the time source. Tests only.
func (s *TokenService) SetClock(now func() time.Time) {
	s.now = now
}

// Issue signs a token whose subject is the admin username and which expires
// ttl after now.
func (s *TokenService) Issue(identity domain.AdminIdentity) (string, error) {
	if identity.Username == "" {
		return "", fmt.Errorf("issue token: empty username")
	}

	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   identity.Username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature, algorithm and expiry and returns the subject.
// A token is valid up to and including its expiry second. Every failure is
// an apperr Unauthorized.
func (s *TokenService) Verify(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (interface{}, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)
	if err != nil || !parsed.Valid {
		return "", &apperr.Error{Kind: apperr.ErrUnauthorized, Message: invalidCredentialsMsg, Err: err}
	}
	if claims.ExpiresAt == nil || s.now().After(claims.ExpiresAt.Time) {
		return "", &apperr.Error{Kind: apperr.ErrUnauthorized, Message: invalidCredentialsMsg, Err: jwt.ErrTokenExpired}
	}
	if claims.Subject == "" {
		return "", apperr.Unauthorized(invalidCredentialsMsg)
	}
	return claims.Subject, nil
}
