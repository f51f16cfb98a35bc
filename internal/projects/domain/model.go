package domain

import (
	"time"

	"github.com/apexforge/studio-backend/internal/apperr"
)

// ErrNotFound is returned when no project has the requested id.
var ErrNotFound = apperr.NotFound("Project not found")

// Project is a portfolio entry. ID and CreatedAt are assigned at creation
// and never change.
type Project struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	Image       string    `json:"image"`
	Year        string    `json:"year"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateProjectRequest carries every editable field of a new project.
type CreateProjectRequest struct {
	Title       string
	Category    string
	Image       string
	Year        string
	Location    string
	Description string
}

// UpdateProjectRequest is a partial update: nil fields are left unchanged.
type UpdateProjectRequest struct {
	Title       *string
	Category    *string
	Image       *string
	Year        *string
	Location    *string
	Description *string
}

// Fields returns the supplied fields keyed by their stored name.
func (r UpdateProjectRequest) Fields() map[string]string {
	out := make(map[string]string, 6)
	set := func(name string, v *string) {
		if v != nil {
			out[name] = *v
		}
	}
	set("title", r.Title)
	set("category", r.Category)
	set("image", r.Image)
	set("year", r.Year)
	set("location", r.Location)
	set("description", r.Description)
	return out
}
