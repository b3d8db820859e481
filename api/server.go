// ABOUTME: Huma API server configuration and setup
// ABOUTME: Provides OpenAPI documentation, CORS and the request middleware chain

package api

import (
	"time"

	"newsfeed-api/api/middleware"
	"newsfeed-api/core/interfaces"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

const (
	// Title is the OpenAPI title of the service
	Title = "News Content API"

	// Version is the OpenAPI version of the service
	Version = "1.0.0"

	description = "Extracts the main article body, reader views and link previews from news pages"
)

// APIConfig holds configuration for the API
type APIConfig struct {
	Logger interfaces.Logger

	// RateLimiter is used as is when set; otherwise one is built from RateLimit and RateWindow
	RateLimiter *middleware.RateLimiter
	RateLimit   int           // requests per window
	RateWindow  time.Duration // rate limit window

	// CORSOrigins defaults to all origins
	CORSOrigins []string
}

// NewAPI creates and configures a new Huma API instance without middleware
func NewAPI() (huma.API, chi.Router) {
	return NewAPIWithMiddleware(APIConfig{})
}

// NewAPIWithMiddleware creates a new API with middleware configured
func NewAPIWithMiddleware(cfg APIConfig) (huma.API, chi.Router) {
	router := chi.NewRouter()

	// CORS must run first so preflight requests skip logging and limits
	router.Use(cors.Handler(corsOptions(cfg.CORSOrigins)))

	if cfg.Logger != nil {
		router.Use(middleware.RequestLoggingMiddleware(cfg.Logger))
	}

	limiter := cfg.RateLimiter
	if limiter == nil && cfg.RateLimit > 0 && cfg.RateWindow > 0 {
		limiter = middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
	}
	if limiter != nil {
		router.Use(middleware.RateLimitMiddleware(limiter))
	}

	config := huma.DefaultConfig(Title, Version)
	config.Info.Description = description

	// The OpenAPI spec is served at /openapi.json and the docs UI at /docs
	api := humachi.New(router, config)

	return api, router
}

func corsOptions(origins []string) cors.Options {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader, "X-RateLimit-Limit", "Retry-After"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}
}
