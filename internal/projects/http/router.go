package http

import "github.com/gin-gonic/gin"

// RegisterPublic attaches the unauthenticated project routes.
func (h *Handler) RegisterPublic(rg *gin.RouterGroup) {
	rg.GET("/projects", h.list)
}

// RegisterAdmin attaches the project routes that require a bearer token.
// The caller is responsible for installing the auth middleware on rg.
func (h *Handler) RegisterAdmin(rg *gin.RouterGroup) {
	rg.POST("/projects", h.create)
	rg.PUT("/projects/:id", h.update)
	rg.DELETE("/projects/:id", h.delete)
}
