package http

import (
	"github.com/gin-gonic/gin"

	"github.com/apexforge/studio-backend/internal/apperr"
	"github.com/apexforge/studio-backend/internal/logger"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// RespondError maps err onto its status code and writes {"detail": ...}.
// Server-side failures are logged with their cause.
func RespondError(c *gin.Context, operation string, err error) {
	status := apperr.Status(err)
	if status >= 500 {
		logger.New(c.Request.Context()).Error(operation, err)
	}
	if status == 401 {
		c.Header("WWW-Authenticate", "Bearer")
	}
	c.AbortWithStatusJSON(status, ErrorResponse{Detail: apperr.Message(err)})
}

// RespondBindError reports a malformed request body as a validation error.
func RespondBindError(c *gin.Context, err error) {
	RespondError(c, "bind", apperr.Validation("invalid request body: "+err.Error(), err))
}
