package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	httpapi "github.com/apexforge/studio-backend/internal/api/http"
)

// Login exchanges admin credentials for an access token.
func (h *Handler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		httpapi.RespondBindError(c, err)
		return
	}

	token, err := h.authService.Login(c.Request.Context(), *req.Username, *req.Password)
	if err != nil {
		httpapi.RespondError(c, "auth.login", err)
		return
	}

	c.JSON(http.StatusOK, token)
}
