package server

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	ginhandler "qatest-api/internal/adapter/gin/handler"
	ginrouter "qatest-api/internal/adapter/gin/router"
	"qatest-api/internal/config"
)

// SetupGinServer creates and configures the Gin REST API server
func SetupGinServer(handler *ginhandler.UserHandler, cfg *config.Config, l *zap.Logger) *http.Server {
	// Setup Gin router with all middleware and routes
	router := ginrouter.SetupRouter(handler, ginrouter.Config{
		ServiceName: cfg.Logger.ServiceName,
		DocsPath:    cfg.App.DocsPath,
	}, l)

	addr := ":" + cfg.App.HTTPPort
	l.Info("Gin REST API configured", zap.String("address", addr))

	return &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 2 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}
