// Package http provides the HTTP handler layer for the chat API.
package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers all chat API routes.
// It creates a versioned API group and attaches the handler methods.
func RegisterRoutes(e *echo.Echo, h *ChatHandler) {
	// Health check endpoint (no version prefix)
	e.GET("/health", h.Health)

	// API v1 group
	api := e.Group("/api/v1")

	// Chat group
	chat := api.Group("/chat")
	chat.POST("/messages", h.PostMessage)
	chat.POST("/offers", h.SearchOffers)
}

// RegisterRoutesWithMiddleware registers routes with custom middleware.
// This allows for endpoint-specific middleware configuration.
func RegisterRoutesWithMiddleware(e *echo.Echo, h *ChatHandler, middleware ...echo.MiddlewareFunc) {
	// Health check endpoint (no version prefix, no middleware)
	e.GET("/health", h.Health)

	// API v1 group with middleware
	api := e.Group("/api/v1", middleware...)

	// Chat group
	chat := api.Group("/chat")
	chat.POST("/messages", h.PostMessage)
	chat.POST("/offers", h.SearchOffers)
}
