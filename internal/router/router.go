package router

import (
	"github.com/cloudwego/hertz/pkg/app/server"

	"github.com/oreana/assistant-server/internal/handler"
	"github.com/oreana/assistant-server/internal/middleware"
)

// Setup registers middleware and all routes.
func Setup(
	h *server.Hertz,
	chatHandler *handler.ChatHandler,
	leadsHandler *handler.LeadsHandler,
	healthHandler *handler.HealthHandler,
) {
	h.Use(middleware.Recovery())
	h.Use(middleware.Logger())
	h.Use(middleware.CORS())

	h.GET("/ping", healthHandler.Ping)

	h.POST("/chat", chatHandler.Chat)

	leadsGroup := h.Group("/leads")
	{
		leadsGroup.GET("", leadsHandler.List)
		leadsGroup.GET("/export", leadsHandler.Export)
		leadsGroup.DELETE("", leadsHandler.Clear)
	}
}
