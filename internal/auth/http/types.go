package http

import "github.com/apexforge/studio-backend/internal/auth/service"

type Handler struct {
	authService *service.AuthService
}

func New(authService *service.AuthService) *Handler {
	return &Handler{
		authService: authService,
	}
}

// loginReq requires both keys; empty values reach the verifier and fail
// there with 401.
type loginReq struct {
	Username *string `json:"username" binding:"required"`
	Password *string `json:"password" binding:"required"`
}
