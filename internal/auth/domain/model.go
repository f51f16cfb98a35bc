package domain

import (
	"context"
	"errors"
)

var ErrIdentityNotFound = errors.New("admin identity not found")

// AdminIdentity is an admin account as known to the process. It comes from
// configuration, not from the record store.
type AdminIdentity struct {
	Username     string
	PasswordHash string
	// BootstrapPassword is a plaintext password accepted only when the hash
	// does not match. It exists for first-run setup before a hash has been
	// configured; empty disables it.
	BootstrapPassword string
}

// IdentityProvider resolves admin identities by username.
type IdentityProvider interface {
	Lookup(ctx context.Context, username string) (*AdminIdentity, error)
}

// Token is the login response body.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
