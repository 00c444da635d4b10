// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and maps each path to its handler.
package router

import (
	"github.com/deppfellow/go-qa/internal/handler"
	"github.com/deppfellow/go-qa/internal/middleware"
	"github.com/deppfellow/go-qa/internal/server"
	"github.com/labstack/echo/v4"
)

// NewRouter builds the Echo instance with the global error handler, the
// middleware chain and every route.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true

	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	// Order matters: the context logger needs the request id and the New
	// Relic transaction, and the request logger needs the context logger.
	if middlewares.RateLimit.Enabled() {
		router.Use(middlewares.RateLimit.Limiter())
	}
	router.Use(
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
	)

	registerSystemRoutes(router, h)
	registerQARoutes(router, h)

	return router
}
