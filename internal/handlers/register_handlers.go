package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/SscSPs/multinav_crm/cmd/docs"
	portssvc "github.com/SscSPs/multinav_crm/internal/core/ports/services"
	"github.com/SscSPs/multinav_crm/internal/middleware"
	"github.com/SscSPs/multinav_crm/internal/platform/config"
	"github.com/SscSPs/multinav_crm/internal/utils"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	posthog *utils.PosthogClientWrapper,
) error {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	loginLimiter, err := middleware.NewMemoryLimiter(cfg.LoginRateLimit)
	if err != nil {
		return fmt.Errorf("invalid login rate limit %q: %w", cfg.LoginRateLimit, err)
	}

	auth := newAuthHandler(services, posthog)
	portal := newPortalHandler(services, posthog)
	public := r.Group("/api/v1")
	registerAuthRoutes(public, auth, loginLimiter)
	registerPortalLoginRoutes(public, portal, loginLimiter)
	registerGoogleOAuthRoutes(public, newGoogleOAuthHandler(cfg, services, posthog))

	setupAPIV1Routes(r, cfg, services, auth, portal, posthog)

	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAPIV1Routes configures the authenticated /api/v1 group and delegates
// to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	auth *authHandler,
	portal *portalHandler,
	posthog *utils.PosthogClientWrapper,
) {
	v1 := r.Group("/api/v1",
		middleware.AuthMiddleware(services.TokenService, cfg.DemoMode),
		middleware.PosthogMiddleware(posthog),
	)

	registerSessionRoutes(v1, auth)
	registerClientRoutes(v1, services.Client)
	registerActivityRoutes(v1, services.Activity)
	registerWorkforceRoutes(v1, services.Workforce)
	registerStaffRoutes(v1, services.Staff)
	registerReportingRoutes(v1, services.Reporting)
	registerDirectoryRoutes(v1, services)
	registerPortalRoutes(v1, portal)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
