package middleware

import (
	"github.com/deppfellow/go-qa/internal/server"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// Middlewares groups every middleware component so the router is built
// from a single value.
type Middlewares struct {
	// Global holds CORS, request logging, recovery, secure headers,
	// the rate limiter and the global error handler.
	Global *GlobalMiddlewares

	// ContextEnhancer stores a request-scoped logger.
	ContextEnhancer *ContextEnhancer

	// Tracing is a no-op when New Relic is not configured.
	Tracing *TracingMiddleware

	RateLimit *RateLimitMiddleware
}

func NewMiddlewares(s *server.Server) *Middlewares {
	var nrApp *newrelic.Application
	if s.LoggerService != nil {
		nrApp = s.LoggerService.GetApplication()
	}

	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		ContextEnhancer: NewContextEnhancer(s),
		Tracing:         NewTracingMiddleware(s, nrApp),
		RateLimit:       NewRateLimitMiddleware(s),
	}
}
