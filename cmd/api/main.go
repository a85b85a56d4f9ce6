// ABOUTME: Main entry point for the AI Pulse API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"aipulse-api/api"
	"aipulse-api/api/handlers"
	"aipulse-api/core/fetch"
	"aipulse-api/core/interfaces"
	"aipulse-api/core/pulse"
	stdhttp "aipulse-api/infrastructure/http/standard"
	logruslogger "aipulse-api/infrastructure/logger/logrus"
	"aipulse-api/pkg/config"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := logruslogger.NewLogger(cfg.LogLevel)
	logger.Info("Starting AI Pulse API", map[string]interface{}{
		"port":          cfg.Server.Port,
		"fetch_timeout": cfg.Fetch.TimeoutSeconds,
	})

	fetchTimeout := time.Duration(cfg.Fetch.TimeoutSeconds) * time.Second

	// The transport-level timeout is slightly wider than the per-attempt
	// context timeout so the context deadline is the one that fires.
	httpClient := stdhttp.NewStandardHTTPClient(fetchTimeout + 2*time.Second)

	deps := interfaces.Dependencies{
		HTTPClient: httpClient,
		Logger:     logger,
	}

	fetcher := fetch.NewClient(deps, fetch.DefaultProxies(), fetchTimeout)
	pulseService := pulse.NewService(deps, fetcher, nil)

	if cfg.Server.RefreshOnStart {
		go func() {
			pulseService.Refresh(context.Background())
		}()
	}

	apiConfig := api.APIConfig{
		Logger:     logger,
		RateLimit:  cfg.RateLimit.Limit,
		RateWindow: time.Duration(cfg.RateLimit.WindowSeconds) * time.Second,
	}
	humaAPI, router := api.NewAPI(apiConfig)

	pulseHandler := handlers.NewPulseHandler(pulseService)
	pulseHandler.RegisterRoutes(humaAPI)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

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
