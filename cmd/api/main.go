// ABOUTME: Main entry point for the WordPress Blog API server
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

	"wpblog-api/api"
	"wpblog-api/api/middleware"
	"wpblog-api/core/content"
	coreerrors "wpblog-api/core/errors"
	"wpblog-api/core/interfaces"
	stdhttp "wpblog-api/infrastructure/http/standard"
	logruslogger "wpblog-api/infrastructure/logger/logrus"
	"wpblog-api/pkg/config"
	"wpblog-api/pkg/featureflags"
)

// loadConfig reads and validates the environment
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func main() {
	cfg, err := loadConfig()
	if err != nil {
		if coreerrors.IsConfiguration(err) {
			log.Fatalf("Invalid configuration: %v", err)
		}
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := logruslogger.New(logruslogger.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
	})
	defer logger.Close()

	flags := featureflags.NewEnvManager("FEATURE_")

	logger.Info("Starting WordPress Blog API", map[string]interface{}{
		"port":          cfg.Server.Port,
		"wordpress_api": cfg.WordPress.APIURL,
		"http_timeout":  cfg.WordPress.Timeout.String(),
		"features":      flags.GetAllFlags(),
	})

	deps := interfaces.Dependencies{
		HTTPClient: stdhttp.NewStandardHTTPClient(cfg.WordPress.Timeout),
		Logger:     logger,
	}
	contentService := content.NewService(cfg.WordPress.APIURL, deps)

	apiConfig := api.APIConfig{Logger: logger}
	if flags.IsEnabled(context.Background(), featureflags.RateLimit) && cfg.Server.RateLimit > 0 {
		limiter := middleware.NewRateLimiter(cfg.Server.RateLimit, cfg.Server.RateWindow)
		defer limiter.Stop()
		apiConfig.RateLimiter = limiter
	}
	humaAPI, router := api.NewAPIWithMiddleware(apiConfig)
	api.RegisterHandlers(humaAPI, contentService, cfg.Blog, flags, logger)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.WordPress.Timeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server stopped", nil)
}
