// ABOUTME: Main entry point for the News Content API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"newsfeed-api/api"
	"newsfeed-api/api/handlers"
	"newsfeed-api/api/middleware"
	"newsfeed-api/core/content"
	"newsfeed-api/core/interfaces"
	"newsfeed-api/core/preview"
	"newsfeed-api/core/reader"
	stdhttp "newsfeed-api/infrastructure/http/standard"
	lrlogger "newsfeed-api/infrastructure/logger/logrus"
	"newsfeed-api/pkg/config"
	"newsfeed-api/pkg/featureflags"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := lrlogger.NewLogger(lrlogger.Options{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
		Compress:   true,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Close()

	flags := featureflags.NewEnvManager("FEATURE_")

	logger.Info("Starting News Content API", map[string]interface{}{
		"port":       cfg.Server.Port,
		"cache_type": cfg.Cache.Type,
		"flags":      flags.GetAllFlags(),
	})

	if cfg.Fetch.InsecureSkipVerify {
		logger.Warn("TLS certificate verification is disabled for outbound fetches", map[string]interface{}{
			"setting": "FETCH_INSECURE_SKIP_VERIFY",
		})
	}

	ctx := context.Background()

	cache, closeCache := buildCache(ctx, cfg.Cache, flags, logger)
	defer closeCache()

	ext, err := buildExtractor(cfg.Extractor)
	if err != nil {
		logger.Error("Failed to build extractor rules", map[string]interface{}{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	httpClient := stdhttp.NewStandardHTTPClient(stdhttp.Options{
		Timeout:            cfg.Fetch.Timeout,
		UserAgent:          cfg.Fetch.UserAgent,
		InsecureSkipVerify: cfg.Fetch.InsecureSkipVerify,
		MaxBodyBytes:       cfg.Fetch.MaxBodyBytes,
		MaxRedirects:       cfg.Fetch.MaxRedirects,
		Logger:             logger,
	})

	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: httpClient,
		Logger:     logger,
	}

	contentService := content.NewService(deps, ext, content.Config{
		CacheTTL:         cfg.Content.CacheTTL,
		BatchConcurrency: cfg.Content.BatchConcurrency,
	})
	readerService := reader.NewService(deps)
	previewService := preview.NewService(deps, preview.Options{
		Timeout:            cfg.Fetch.Timeout,
		MaxBodyBytes:       int(cfg.Fetch.MaxBodyBytes),
		InsecureSkipVerify: cfg.Fetch.InsecureSkipVerify,
	})

	apiConfig := api.APIConfig{
		Logger:      logger,
		CORSOrigins: cfg.Server.CORSOrigins,
	}
	if flags.IsEnabled(ctx, featureflags.RateLimitEnabled) {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.Limit, cfg.RateLimit.Window)
		defer limiter.Stop()
		apiConfig.RateLimiter = limiter
	}
	humaAPI, router := api.NewAPIWithMiddleware(apiConfig)

	handlers.NewHealthHandler().RegisterRoutes(humaAPI)
	handlers.NewContentHandler(contentService, flags, cfg.Content.MaxBatchSize).RegisterRoutes(humaAPI)
	handlers.NewReaderHandler(readerService, flags, cfg.Content.MaxBatchSize).RegisterRoutes(humaAPI)
	handlers.NewPreviewHandler(previewService, flags).RegisterRoutes(humaAPI)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.Fetch.Timeout + 20*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("Shutting down server...", map[string]interface{}{
			"signal": sig.String(),
		})
	case err := <-serverErr:
		logger.Error("HTTP server error", map[string]interface{}{
			"error": err.Error(),
		})
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
	}

	logger.Info("Server stopped", nil)
}
