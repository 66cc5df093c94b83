// ABOUTME: Huma API server configuration and setup
// ABOUTME: Provides OpenAPI documentation, middleware and route registration

package api

import (
	"net/http"

	"wpblog-api/api/handlers"
	"wpblog-api/api/middleware"
	"wpblog-api/core/interfaces"
	"wpblog-api/pkg/config"
	"wpblog-api/pkg/featureflags"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

const (
	apiTitle       = "WordPress Blog API"
	apiVersion     = "1.0.0"
	apiDescription = "Read-only access to WordPress posts, categories and authors, normalized for display"
)

// compressibleTypes are the response content types gzip/deflate encoded for clients that accept it
var compressibleTypes = []string{
	"application/json",
	"application/problem+json",
	"application/vnd.oai.openapi+json",
	"text/html",
}

// APIConfig holds configuration for the API
type APIConfig struct {
	Logger interfaces.Logger

	// RateLimiter enforces per-client limits when set. The caller owns it and stops it on shutdown.
	RateLimiter *middleware.RateLimiter
}

// corsHandler allows any origin to read; the API has no credentials or writes
func corsHandler() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader, "X-RateLimit-Limit", "Retry-After"},
		MaxAge:         300, // Maximum value not ignored by any of major browsers
	})
}

func humaConfig() huma.Config {
	config := huma.DefaultConfig(apiTitle, apiVersion)
	config.Info.Description = apiDescription
	return config
}

// NewAPI creates and configures a new Huma API instance.
// The OpenAPI spec is served at /openapi.json and the docs UI at /docs.
func NewAPI() (huma.API, chi.Router) {
	router := chi.NewRouter()
	router.Use(corsHandler())

	return humachi.New(router, humaConfig()), router
}

// NewAPIWithMiddleware creates a new API with middleware configured
func NewAPIWithMiddleware(cfg APIConfig) (huma.API, chi.Router) {
	router := chi.NewRouter()

	// CORS should be first so preflight requests are never limited
	router.Use(corsHandler())

	if cfg.Logger != nil {
		router.Use(middleware.RequestLoggingMiddleware(cfg.Logger))
	}

	if cfg.RateLimiter != nil {
		router.Use(middleware.RateLimitMiddleware(cfg.RateLimiter))
	}

	router.Use(chimiddleware.Compress(5, compressibleTypes...))

	return humachi.New(router, humaConfig()), router
}

// RegisterHandlers wires every content route onto api
func RegisterHandlers(api huma.API, content handlers.ContentService, blog config.BlogConfig, flags featureflags.Manager, logger interfaces.Logger) {
	handlers.NewHomeHandler(content, blog, flags).RegisterRoutes(api)
	handlers.NewPostHandler(content, blog, flags, logger).RegisterRoutes(api)
	handlers.NewTaxonomyHandler(content, blog, flags).RegisterRoutes(api)
}
