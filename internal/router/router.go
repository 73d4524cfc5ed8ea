// Package router builds the Echo instance: middleware stack, error handler
// and route table.
package router

import (
	"github.com/deppfellow/deck-api/internal/handler"
	"github.com/deppfellow/deck-api/internal/middleware"
	"github.com/deppfellow/deck-api/internal/server"
	"github.com/labstack/echo/v4"
)

// NewRouter wires middleware and routes around the handlers.
//
// Middleware order:
//
//	CORS -> secure headers -> request id -> New Relic -> tracing attributes
//	-> request logger context -> access log -> rate limit -> recover
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true

	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.RateLimit.Limit(),
		middlewares.Global.Recover(),
	)

	registerSystemRoutes(router, h)

	api := router.Group("/api")
	registerDeckRoutes(api, h)
	registerCardRoutes(api, h)

	return router
}
