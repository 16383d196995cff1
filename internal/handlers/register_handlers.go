package handlers

import (
	"github.com/earnbuddy/backend/cmd/docs"
	portssvc "github.com/earnbuddy/backend/internal/core/ports/services"
	"github.com/earnbuddy/backend/internal/middleware"
	"github.com/earnbuddy/backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	registerHomeRoutes(r)

	// Public surface: sign-in upsert, token issuance, landing-page reads
	registerPublicUserRoutes(r, services.User)
	registerAuthRoutes(r, services)
	registerPublicReadRoutes(r, services.Review, services.User)

	// Everything else requires a valid bearer token
	setupAuthenticatedRoutes(r, cfg, services)

	setupSwaggerRoutes(r, cfg)
}

// setupAuthenticatedRoutes configures the token-gated surface and delegates
// to the per-entity route registrations
func setupAuthenticatedRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	authed := r.Group("", middleware.AuthMiddleware(cfg.JWTSecret))

	registerUserRoutes(authed, services.User)
	RegisterTaskRoutes(authed, services.Task, services.User)
	registerSubmissionRoutes(authed, services.Submission, services.User)
	registerWithdrawalRoutes(authed, services.Withdrawal, services.User)
	RegisterPaymentRoutes(authed, services.Payment, services.User)
	registerStatsRoutes(authed, services.Stats, services.User)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
