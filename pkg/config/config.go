// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for the server, fetching, and logging

package config

import (
	"errors"
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Fetch contains feed fetching configuration
	Fetch FetchConfig

	// RateLimit contains API rate limiting configuration
	RateLimit RateLimitConfig

	// LogLevel controls logger verbosity (debug/info/warn/error)
	LogLevel string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// RefreshOnStart triggers one aggregation round at startup so the first
	// page request is served from a warm snapshot
	RefreshOnStart bool
}

// FetchConfig holds feed fetching configuration
type FetchConfig struct {
	// TimeoutSeconds bounds each single proxy attempt
	TimeoutSeconds int
}

// RateLimitConfig holds API rate limiting configuration
type RateLimitConfig struct {
	// Limit is the number of requests allowed per window per client
	Limit int

	// WindowSeconds is the rate limit window length
	WindowSeconds int
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:           getEnvOrDefault("PORT", "8080"),
			RefreshOnStart: getEnvAsBoolOrDefault("REFRESH_ON_START", true),
		},
		Fetch: FetchConfig{
			TimeoutSeconds: getEnvAsIntOrDefault("FETCH_TIMEOUT", 8),
		},
		RateLimit: RateLimitConfig{
			Limit:         getEnvAsIntOrDefault("RATE_LIMIT", 100),
			WindowSeconds: getEnvAsIntOrDefault("RATE_WINDOW", 60),
		},
		LogLevel: getEnvOrDefault("LOG_LEVEL", "info"),
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsBoolOrDefault returns the environment variable as bool or a default
func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Fetch.TimeoutSeconds < 1 {
		return errors.New("fetch timeout must be at least 1 second")
	}

	if c.RateLimit.Limit < 1 {
		return errors.New("rate limit must be at least 1 request per window")
	}

	if c.RateLimit.WindowSeconds < 1 {
		return errors.New("rate limit window must be at least 1 second")
	}

	return nil
}
