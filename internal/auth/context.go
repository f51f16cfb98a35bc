package auth

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	CtxAdminUsername = "admin_username"
)

// AdminUsername extracts the admin username from the Gin context.
// This is set by middleware.BearerAuth.
func AdminUsername(c *gin.Context) string {
	return strings.TrimSpace(c.GetString(CtxAdminUsername))
}
