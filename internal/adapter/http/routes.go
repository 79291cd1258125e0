// Package http provides the HTTP handler layer for the unified travel
// search API.
package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers all unified search and key lifecycle routes.
// It creates a versioned API group and attaches the handler methods.
func RegisterRoutes(e *echo.Echo, search *SearchHandler, keys *KeysHandler) {
	// Health check endpoint (no version prefix)
	e.GET("/health", search.Health)

	// API v1 group
	api := e.Group("/api/v1")

	registerSearchRoutes(api, search)
	registerKeyRoutes(api, keys)
}

// RegisterRoutesWithMiddleware registers routes with custom middleware.
// This allows for endpoint-specific middleware configuration.
func RegisterRoutesWithMiddleware(e *echo.Echo, search *SearchHandler, keys *KeysHandler, middleware ...echo.MiddlewareFunc) {
	// Health check endpoint (no version prefix, no middleware)
	e.GET("/health", search.Health)

	// API v1 group with middleware
	api := e.Group("/api/v1", middleware...)

	registerSearchRoutes(api, search)
	registerKeyRoutes(api, keys)
}

func registerSearchRoutes(api *echo.Group, h *SearchHandler) {
	search := api.Group("/search")
	search.POST("", h.Search)
	search.GET("/suggest", h.Suggest)
}

func registerKeyRoutes(api *echo.Group, h *KeysHandler) {
	keys := api.Group("/keys")
	keys.POST("", h.Create)
	keys.GET("", h.List)
	keys.GET("/:id", h.Get)
	keys.DELETE("/:id", h.Delete)
	keys.POST("/:id/validate", h.Validate)
	keys.POST("/:id/rotate", h.Rotate)
	keys.POST("/:id/deactivate", h.Deactivate)
	keys.POST("/:id/reactivate", h.Reactivate)
	keys.POST("/:id/primary", h.SetPrimary)
}
