package service

import (
	"context"
	"crypto/subtle"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/apexforge/studio-backend/internal/auth/domain"
	"github.com/apexforge/studio-backend/internal/logger"
)

// CredentialVerifier checks a username/password pair against the identities
// served by an IdentityProvider.
type CredentialVerifier struct {
	identities domain.IdentityProvider
}

func NewCredentialVerifier(identities domain.IdentityProvider) *CredentialVerifier {
	return &CredentialVerifier{identities: identities}
}

// Verify returns the matching identity and true when the password matches
// either the bcrypt hash or, failing that, the bootstrap plaintext password.
// An unknown username fails before any hash comparison runs.
func (v *CredentialVerifier) Verify(ctx context.Context, username, password string) (*domain.AdminIdentity, bool) {
	admin, err := v.identities.Lookup(ctx, username)
	if err != nil {
		if !errors.Is(err, domain.ErrIdentityNotFound) {
			logger.New(ctx).Error("auth.lookup", err)
		}
		return nil, false
	}

	if admin.PasswordHash != "" &&
		bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) == nil {
		return admin, true
	}

	// BOOTSTRAP ONLY: plaintext fallback for first-run setup. Set
	// ADMIN_PASSWORD_HASH and clear ADMIN_PASSWORD to turn this off.
	if admin.BootstrapPassword != "" &&
		subtle.ConstantTimeCompare([]byte(password), []byte(admin.BootstrapPassword)) == 1 {
		logger.New(ctx).Warnf("auth.verify", "user=%s authenticated with bootstrap plaintext password", admin.Username)
		return admin, true
	}

	return nil, false
}

// HashPassword returns a bcrypt hash suitable for ADMIN_PASSWORD_HASH.
func HashPassword(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}
