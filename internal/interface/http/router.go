package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orbislinks/faq-chat/internal/infra/config"
)

// NewRouter wires up the HTTP handlers and returns a configured server.
func NewRouter(cfg *config.Config, handler *Handler) *http.Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(
		gin.Recovery(),
		requestIDMiddleware(),
		requestLogger(handler.logger),
		errorHandlingMiddleware(handler.logger),
		corsMiddleware(cfg.HTTP.AllowedOrigins),
	)

	api := router.Group("/api")
	{
		api.POST("/chat", handler.Chat)
		api.GET("/chat/trending", handler.Trending)
	}

	router.GET("/healthz", handler.Health)

	// The chat widget itself; a single page with no routing.
	router.StaticFile("/", "./web/index.html")

	return &http.Server{
		Addr:           cfg.HTTP.Address,
		Handler:        router,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}
}
