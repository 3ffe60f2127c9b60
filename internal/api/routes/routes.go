package routes

import (
	"net/http"

	"what-to-watch-backend/internal/api/handlers"
	"what-to-watch-backend/internal/api/middleware"
	"what-to-watch-backend/internal/config"
	"what-to-watch-backend/internal/repository"
	"what-to-watch-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application. Everything is
// wired here explicitly: the store handle is constructed once and handed to
// each handler, there are no module-level singletons.
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	// Browser pages are rendered from embedded templates
	router.SetHTMLTemplate(handlers.PageTemplates())

	// Dependency wiring
	validate := validator.New()
	opinionRepo := repository.NewOpinionRepository(db)
	opinionService := service.NewOpinionService(opinionRepo, validate)

	healthHandler := handlers.NewHealthHandler(db)
	opinionHandler := handlers.NewOpinionHandler(opinionService)
	webHandler := handlers.NewWebHandler(opinionService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Browser-facing routes
	router.GET("/", webHandler.Home)
	router.GET("/add", webHandler.AddOpinionForm)
	router.POST("/add", webHandler.AddOpinionSubmit)
	router.GET("/opinions/:id", webHandler.OpinionDetail)

	// JSON API routes; registered with the trailing slash the API contract
	// uses, requests without it are redirected by gin.
	api := router.Group("/api")
	{
		api.GET("/opinions/", opinionHandler.ListOpinions)
		api.POST("/opinions/", opinionHandler.CreateOpinion)
		api.GET("/opinions/:id/", opinionHandler.GetOpinion)
		api.PATCH("/opinions/:id/", opinionHandler.UpdateOpinion)
		api.DELETE("/opinions/:id/", opinionHandler.DeleteOpinion)
		api.GET("/get-random-opinion/", opinionHandler.GetRandomOpinion)
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"message": "endpoint not found",
		})
	})

	return router
}
