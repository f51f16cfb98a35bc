package http

import "github.com/gin-gonic/gin"

// Register attaches the public auth routes (under /api/admin).
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/login", h.Login)
}
