package http

import (
	"github.com/apexforge/studio-backend/internal/projects/domain"
	"github.com/apexforge/studio-backend/internal/projects/service"
)

// Handler bundles the dependencies for projects HTTP endpoints.
type Handler struct {
	svc *service.ProjectService
}

func New(svc *service.ProjectService) *Handler {
	return &Handler{svc: svc}
}

// createReq requires every field to be present; empty strings are allowed.
type createReq struct {
	Title       *string `json:"title" binding:"required"`
	Category    *string `json:"category" binding:"required"`
	Image       *string `json:"image" binding:"required"`
	Year        *string `json:"year" binding:"required"`
	Location    *string `json:"location" binding:"required"`
	Description *string `json:"description" binding:"required"`
}

func (r createReq) toDomain() domain.CreateProjectRequest {
	return domain.CreateProjectRequest{
		Title:       *r.Title,
		Category:    *r.Category,
		Image:       *r.Image,
		Year:        *r.Year,
		Location:    *r.Location,
		Description: *r.Description,
	}
}

// updateReq fields that are absent or null are left unchanged.
type updateReq struct {
	Title       *string `json:"title"`
	Category    *string `json:"category"`
	Image       *string `json:"image"`
	Year        *string `json:"year"`
	Location    *string `json:"location"`
	Description *string `json:"description"`
}

func (r updateReq) toDomain() domain.UpdateProjectRequest {
	return domain.UpdateProjectRequest{
		Title:       r.Title,
		Category:    r.Category,
		Image:       r.Image,
		Year:        r.Year,
		Location:    r.Location,
		Description: r.Description,
	}
}
