package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type Config struct {
	APIBaseURL  string
	SessionDir  string
	Environment string
	LogLevel    string
	HTTPTimeout time.Duration
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		APIBaseURL:  getEnvWithDefault("API_BASE_URL", "http://localhost:8000"),
		SessionDir:  os.Getenv("SESSION_DIR"),
		Environment: getEnvWithDefault("ENVIRONMENT", "development"),
		LogLevel:    getEnvWithDefault("LOG_LEVEL", "info"),
	}

	timeoutSecs := getEnvWithDefault("HTTP_TIMEOUT_SECONDS", "30")
	secs, err := strconv.Atoi(timeoutSecs)
	if err != nil || secs <= 0 {
		return nil, fmt.Errorf("HTTP_TIMEOUT_SECONDS must be a positive integer, got %q", timeoutSecs)
	}
	cfg.HTTPTimeout = time.Duration(secs) * time.Second

	if cfg.SessionDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("SESSION_DIR not set and home directory unavailable: %w", err)
		}
		cfg.SessionDir = filepath.Join(home, ".boxcourt")
	}

	if cfg.APIBaseURL == "" {
		return nil, fmt.Errorf("API_BASE_URL is required")
	}

	return cfg, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
