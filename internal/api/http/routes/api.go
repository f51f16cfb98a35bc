package routes

import (
	"github.com/gin-gonic/gin"

	httpapi "github.com/apexforge/studio-backend/internal/api/http"
	authhttp "github.com/apexforge/studio-backend/internal/auth/http"
	authmw "github.com/apexforge/studio-backend/internal/auth/middleware"
	inquiryhttp "github.com/apexforge/studio-backend/internal/inquiries/http"
	projecthttp "github.com/apexforge/studio-backend/internal/projects/http"
)

type APIDeps struct {
	Health    *httpapi.HealthHandler
	Auth      *authhttp.Handler
	Tokens    authmw.TokenVerifier
	Projects  *projecthttp.Handler
	Inquiries *inquiryhttp.Handler
}

// RegisterAPI mounts the public routes under /api and the admin routes under
// /api/admin. Everything in the admin group except login requires a bearer
// token.
func RegisterAPI(r gin.IRouter, dep APIDeps) {
	api := r.Group("/api")
	api.GET("/", dep.Health.Root)
	dep.Projects.RegisterPublic(api)
	dep.Inquiries.RegisterPublic(api)

	admin := api.Group("/admin")
	dep.Auth.Register(admin)

	protected := admin.Group("")
	protected.Use(authmw.BearerAuth(dep.Tokens))
	dep.Projects.RegisterAdmin(protected)
	dep.Inquiries.RegisterAdmin(protected)
}
