package app

import (
	"trait_tracer_backend/docs"
	"trait_tracer_backend/internal/config"
	"trait_tracer_backend/internal/middleware"
	"trait_tracer_backend/internal/model"
	"trait_tracer_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c)

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		a.registerCommonRoutes(authGroup, c)
		a.registerRecruiterRoutes(authGroup, c)
		a.registerCandidateRoutes(authGroup, c)
	}
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)

		// The job board is browsable without an account.
		public.GET("/jobs", c.job.ListActive)
		public.GET("/jobs/:id", c.job.Get)
	}
}

func (a *App) registerCommonRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/me", c.auth.Me)
	rg.GET("/preferences", c.preference.Get)
	rg.PUT("/preferences", c.preference.Save)
}

func (a *App) registerRecruiterRoutes(rg *gin.RouterGroup, c *controllers) {
	recruiter := rg.Group("/")
	recruiter.Use(middleware.RoleMiddleware(model.Recruiter))
	{
		recruiter.POST("/organizations", c.organization.Create)
		recruiter.GET("/organizations", c.organization.List)
		recruiter.GET("/organizations/:id", c.organization.Get)
		recruiter.PUT("/organizations/:id", c.organization.Update)
		recruiter.DELETE("/organizations/:id", c.organization.Delete)
		recruiter.POST("/organizations/:id/logo", c.organization.UploadLogo)
		recruiter.GET("/organizations/:id/jobs", c.job.ListByOrganization)

		recruiter.POST("/jobs", c.job.Create)
		recruiter.PUT("/jobs/:id", c.job.Update)
		recruiter.DELETE("/jobs/:id", c.job.Deactivate)
		recruiter.GET("/jobs/:id/applications", c.application.ListForJob)

		recruiter.GET("/dashboard/organizations/:id", c.dashboard.Recruiter)
	}
}

func (a *App) registerCandidateRoutes(rg *gin.RouterGroup, c *controllers) {
	candidate := rg.Group("/")
	candidate.Use(middleware.RoleMiddleware(model.Candidate))
	{
		candidate.GET("/candidate/profile", c.application.GetProfile)
		candidate.PUT("/candidate/profile", c.application.SaveProfile)

		candidate.POST("/jobs/:id/apply", c.application.Apply)
		candidate.GET("/applications", c.application.ListMine)
		candidate.GET("/applications/:id", c.application.Get)

		candidate.POST("/applications/:id/assessment/start", c.assessment.Start)
		candidate.GET("/applications/:id/assessment", c.assessment.Result)
		candidate.PUT("/assessment/sessions/:id/answers", c.assessment.SaveAnswers)
		candidate.POST("/assessment/sessions/:id/submit", c.assessment.Submit)

		candidate.GET("/dashboard/candidate", c.dashboard.Candidate)
	}
}
