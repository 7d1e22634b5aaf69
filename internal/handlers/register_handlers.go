package handlers

import (
	"github.com/ecodeed/academy_backend/cmd/docs"
	portssvc "github.com/ecodeed/academy_backend/internal/core/ports/services"
	"github.com/ecodeed/academy_backend/internal/middleware"
	"github.com/ecodeed/academy_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// through the service container.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	registerCustomValidators()

	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	setupAuthRoutes(r, services)
	setupCourseRoutes(r, services)
	setupSwaggerRoutes(r, cfg)
}

// setupAuthRoutes mounts the identity surface under /api/auth: public
// credential and social routes, the authenticated profile routes, and
// the admin user management routes.
func setupAuthRoutes(r *gin.Engine, services *portssvc.ServiceContainer) {
	public := r.Group("/api/auth")
	registerAuthRoutes(public, services)
	registerSocialRoutes(public, services)
	registerDeletionRoutes(public, services)

	authed := r.Group("/api/auth", middleware.AuthMiddleware(services.Token))
	registerLogoutRoute(authed, services)
	registerProfileRoutes(authed, services.User)

	admin := r.Group("/api/auth", middleware.AuthMiddleware(services.Token), middleware.RequireAdmin())
	registerAdminUserRoutes(admin, services.User)
}

// setupCourseRoutes mounts the catalog under /api/courses and progress
// tracking under /api/enrollments.
func setupCourseRoutes(r *gin.Engine, services *portssvc.ServiceContainer) {
	public := r.Group("/api/courses")
	registerCourseRoutes(public, services)

	management := r.Group("/api/courses", middleware.AuthMiddleware(services.Token), middleware.RequireCourseManager())
	registerCourseManagementRoutes(management, services)

	coursesAuthed := r.Group("/api/courses", middleware.AuthMiddleware(services.Token))
	enrollments := r.Group("/api/enrollments", middleware.AuthMiddleware(services.Token))
	registerEnrollmentRoutes(coursesAuthed, enrollments, services)
}

// setupSwaggerRoutes configures the swagger documentation routes.
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
