package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"qatest-api/internal/adapter/gin/handler"
	"qatest-api/internal/adapter/gin/middleware"
)

// Config holds router-level settings.
type Config struct {
	ServiceName string
	DocsPath    string // filesystem path of the OpenAPI contract, empty disables the route
}

// SetupRouter configures and returns a Gin router with all routes and middleware
func SetupRouter(userHandler *handler.UserHandler, cfg Config, log *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware
	router.Use(middleware.Recovery(log))
	router.Use(middleware.RequestID())
	router.Use(middleware.AccessLog(log))
	router.Use(middleware.CORS())

	// Health check endpoint, outside the envelope contract
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": cfg.ServiceName,
		})
	})

	if cfg.DocsPath != "" {
		router.GET("/openapi.yaml", func(c *gin.Context) {
			c.File(cfg.DocsPath)
		})
	}

	router.GET("/", userHandler.Home)

	// The original service accepted both verbs for reset; its test suites
	// use POST.
	router.POST("/reset", userHandler.Reset)
	router.GET("/reset", userHandler.Reset)

	users := router.Group("/users")
	{
		users.GET("", userHandler.ListUsers)
		users.POST("", userHandler.CreateUser)
		users.GET("/:id", userHandler.GetUser)
		users.DELETE("/:id", userHandler.DeleteUser)
	}

	return router
}
