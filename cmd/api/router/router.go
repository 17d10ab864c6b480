package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	cors "github.com/rs/cors/wrapper/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"lunarly/cmd/api/auth"
	"lunarly/cmd/api/handlers"
	"lunarly/cmd/api/middleware"
	"lunarly/cmd/api/services"
	_ "lunarly/docs"
)

// Deps carries the constructed services into the router. They are built
// in main and passed down explicitly so the whole surface is testable
// without ambient singletons.
type Deps struct {
	JWT      *auth.JWTManager
	Dreams   *services.DreamService
	Analyses *services.AnalysisService
	Stats    *services.StatsService
	Export   *services.ExportService
}

func New(deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestTrace())
	r.Use(cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: false,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// v1 routes, all behind authentication
	api := r.Group("/api/v1")
	api.Use(middleware.RequireAuth(deps.JWT))
	{
		api.POST("/dreams", handlers.CreateDreamHandler(deps.Dreams))
		api.GET("/dreams", handlers.ListDreamsHandler(deps.Dreams))
		api.GET("/dreams/:id", handlers.GetDreamHandler(deps.Dreams))
		api.PUT("/dreams/:id", handlers.UpdateDreamHandler(deps.Dreams))
		api.DELETE("/dreams/:id", handlers.DeleteDreamHandler(deps.Dreams))

		api.POST("/analyses", handlers.AnalyzeDreamHandler(deps.Analyses))
		api.GET("/analyses/:id", handlers.GetAnalysisHandler(deps.Analyses))

		api.GET("/stats", handlers.GetStatsHandler(deps.Stats))
		api.GET("/export", handlers.ExportDreamsHandler(deps.Export))
	}

	return r
}
