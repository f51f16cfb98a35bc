package domain

import (
	"time"

	"github.com/apexforge/studio-backend/internal/apperr"
)

// ErrNotFound is returned when no inquiry has the requested id.
var ErrNotFound = apperr.NotFound("Inquiry not found")

// ContactInquiry is a message left by a site visitor. It is never edited.
type ContactInquiry struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateInquiryRequest struct {
	Name    string
	Email   string
	Message string
}
