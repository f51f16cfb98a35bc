package service

import (
	"context"

	"github.com/apexforge/studio-backend/internal/auth/domain"
)

// StaticIdentityProvider serves the single admin identity loaded from
// configuration at startup.
type StaticIdentityProvider struct {
	admin domain.AdminIdentity
}

func NewStaticIdentityProvider(admin domain.AdminIdentity) *StaticIdentityProvider {
	return &StaticIdentityProvider{admin: admin}
}

// Lookup compares usernames with ==, so the comparison is not constant-time.
func (p *StaticIdentityProvider) Lookup(_ context.Context, username string) (*domain.AdminIdentity, error) {
	if username == "" || username != p.admin.Username {
		return nil, domain.ErrIdentityNotFound
	}
	admin := p.admin
	return &admin, nil
}
