package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	httpapi "github.com/apexforge/studio-backend/internal/api/http"
	"github.com/apexforge/studio-backend/internal/apperr"
	"github.com/apexforge/studio-backend/internal/auth"
)

// TokenVerifier returns the subject of a valid token.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// BearerAuth rejects requests without a valid bearer token before they
// reach the handler, and stores the admin username in the Gin context.
func BearerAuth(tokens TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			httpapi.RespondError(c, "auth.bearer", apperr.Unauthorized("Not authenticated"))
			return
		}

		username, err := tokens.Verify(token)
		if err != nil {
			httpapi.RespondError(c, "auth.bearer", err)
			return
		}

		c.Set(auth.CtxAdminUsername, username)
		c.Next()
	}
}

// extractToken extracts the Bearer token from the Authorization header
func extractToken(c *gin.Context) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(c.GetHeader("Authorization")), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
