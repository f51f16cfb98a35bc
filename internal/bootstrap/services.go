package bootstrap

import (
	"github.com/apexforge/studio-backend/config"
	authdomain "github.com/apexforge/studio-backend/internal/auth/domain"
	authservice "github.com/apexforge/studio-backend/internal/auth/service"
	inquiryrepo "github.com/apexforge/studio-backend/internal/inquiries/repository"
	inquiryservice "github.com/apexforge/studio-backend/internal/inquiries/service"
	"github.com/apexforge/studio-backend/internal/notify"
	projectrepo "github.com/apexforge/studio-backend/internal/projects/repository"
	projectservice "github.com/apexforge/studio-backend/internal/projects/service"
	"github.com/apexforge/studio-backend/internal/storage"
)

// Services holds the application services shared by the HTTP handlers.
type Services struct {
	Auth      *authservice.AuthService
	Projects  *projectservice.ProjectService
	Inquiries *inquiryservice.InquiryService
}

func NewServices(cfg *config.Config, store storage.Store, notifier notify.Notifier) *Services {
	tokens := authservice.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	verifier := authservice.NewCredentialVerifier(authservice.NewStaticIdentityProvider(authdomain.AdminIdentity{
		Username:          cfg.Auth.AdminUser,
		PasswordHash:      cfg.Auth.PasswordHash,
		BootstrapPassword: cfg.Auth.BootstrapPassword,
	}))

	return &Services{
		Auth:     authservice.NewAuthService(verifier, tokens),
		Projects: projectservice.NewProjectService(projectrepo.NewProjectRepository(store)),
		Inquiries: inquiryservice.NewInquiryService(inquiryrepo.NewInquiryRepository(store), notifier, inquiryservice.NotifyOptions{
			From:    cfg.Notify.FromAddress,
			To:      cfg.Notify.ToAddress,
			Timeout: cfg.Notify.Timeout,
		}),
	}
}
