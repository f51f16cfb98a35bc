package http

import "github.com/gin-gonic/gin"

// RegisterPublic attaches the contact form endpoint.
func (h *Handler) RegisterPublic(rg *gin.RouterGroup) {
	rg.POST("/contact", h.create)
}

// RegisterAdmin attaches inquiry management routes. rg must already carry
// the auth middleware.
func (h *Handler) RegisterAdmin(rg *gin.RouterGroup) {
	rg.GET("/inquiries", h.list)
	rg.DELETE("/inquiries/:id", h.delete)
}
