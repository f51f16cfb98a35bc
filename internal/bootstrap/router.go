package bootstrap

import (
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	httpapi "github.com/apexforge/studio-backend/internal/api/http"
	"github.com/apexforge/studio-backend/internal/api/http/middleware"
	"github.com/apexforge/studio-backend/internal/api/http/routes"
	authhttp "github.com/apexforge/studio-backend/internal/auth/http"
	inquiryhttp "github.com/apexforge/studio-backend/internal/inquiries/http"
	projecthttp "github.com/apexforge/studio-backend/internal/projects/http"
	"github.com/apexforge/studio-backend/internal/storage"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	CORSOrigins []string
	Store       storage.Store
	Services    *Services
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(cors.New(corsConfig(dep.CORSOrigins)))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Store)
	healthHandler.RegisterRoutes(r)

	routes.RegisterAPI(r, routes.APIDeps{
		Health:    healthHandler,
		Auth:      authhttp.New(dep.Services.Auth),
		Tokens:    dep.Services.Auth,
		Projects:  projecthttp.New(dep.Services.Projects),
		Inquiries: inquiryhttp.New(dep.Services.Inquiries),
	})

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", middleware.HeaderRequestID},
		ExposeHeaders: []string{middleware.HeaderRequestID},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}
