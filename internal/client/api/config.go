// Package api is a typed client for the portal's HTTP API.
package api

import (
	"os"
	"time"
)

// DefaultBaseURL is used when PORTAL_API_URL is unset.
const DefaultBaseURL = "http://localhost:8080"

// Config holds configuration for the portal API client.
type Config struct {
	BaseURL string        // Base URL of the API (e.g., "http://localhost:8080")
	Timeout time.Duration // HTTP request timeout
}

// LoadConfig loads client configuration from environment variables.
func LoadConfig() Config {
	cfg := Config{
		BaseURL: os.Getenv("PORTAL_API_URL"),
		Timeout: 10 * time.Second,
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if v := os.Getenv("PORTAL_API_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}
	return cfg
}
