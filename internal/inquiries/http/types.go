package http

import (
	"github.com/apexforge/studio-backend/internal/inquiries/domain"
	"github.com/apexforge/studio-backend/internal/inquiries/service"
)

type Handler struct {
	svc *service.InquiryService
}

func New(svc *service.InquiryService) *Handler {
	return &Handler{svc: svc}
}

// email format is checked by the service so the message matches across callers
type createReq struct {
	Name    *string `json:"name" binding:"required"`
	Email   *string `json:"email" binding:"required"`
	Message *string `json:"message" binding:"required"`
}

func (r createReq) toDomain() domain.CreateInquiryRequest {
	return domain.CreateInquiryRequest{
		Name:    *r.Name,
		Email:   *r.Email,
		Message: *r.Message,
	}
}
