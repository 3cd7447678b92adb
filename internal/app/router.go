package app

import (
	"life_score_backend/docs"
	"life_score_backend/internal/config"
	"life_score_backend/internal/middleware"
	"life_score_backend/internal/model"
	"life_score_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
	}

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		authGroup.PUT("/profile", c.auth.UpdateProfile)

		authGroup.GET("/assessments", c.assessment.List)
		authGroup.GET("/assessments/:key/questions", c.assessment.Questions)
		authGroup.POST("/assessments/:key/submit", c.assessment.Submit)

		authGroup.GET("/symptoms", c.symptom.List)
		authGroup.GET("/biomarkers/flags", c.symptom.Flags)

		authGroup.GET("/scores", c.score.Get)
		authGroup.GET("/scores/history", c.score.History)
		authGroup.GET("/recommendation", c.score.Recommendation)
	}

	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.Clinician))
	{
		admin.GET("/users", c.admin.ListUsers)
		admin.GET("/users/:id/overview", c.admin.UserOverview)
		admin.GET("/users/:id/symptoms", c.admin.UserSymptoms)
		admin.GET("/users/:id/flags", c.admin.UserFlags)
		admin.POST("/users/:id/flags/:flagId/resolve", c.admin.ResolveFlag)
		admin.POST("/users/:id/report", c.admin.ExportReport)
	}
}
