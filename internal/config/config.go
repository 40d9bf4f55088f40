// Package config provides application configuration.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Port        string
	FrontendURL string

	// GeminiAPIKey authorizes calls to the model service. Required
	// unless UseMockLLM is set.
	GeminiAPIKey string
	ModelName    string
	// LLMTimeout bounds each relevance-validation and risk-analysis call.
	LLMTimeout time.Duration
	// UseMockLLM swaps the model service for a deterministic stand-in.
	UseMockLLM bool

	// SessionTTL is the retention window for idle sessions.
	SessionTTL time.Duration
	// SweepInterval is how often expired sessions are evicted.
	SweepInterval time.Duration
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		FrontendURL:   getEnv("FRONTEND_URL", ""),
		GeminiAPIKey:  getEnv("GEMINI_API_KEY", ""),
		ModelName:     getEnv("MODEL_NAME", "gemini-2.5-flash"),
		LLMTimeout:    getEnvDuration("LLM_TIMEOUT", 10*time.Second),
		UseMockLLM:    getEnvBool("USE_MOCK_LLM", false),
		SessionTTL:    getEnvDuration("SESSION_TTL", time.Hour),
		SweepInterval: getEnvDuration("SWEEP_INTERVAL", 5*time.Minute),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required configuration fields are set.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT cannot be empty")
	}
	if c.GeminiAPIKey == "" && !c.UseMockLLM {
		return fmt.Errorf("GEMINI_API_KEY must be set unless USE_MOCK_LLM is enabled")
	}
	if c.LLMTimeout <= 0 {
		return fmt.Errorf("LLM_TIMEOUT must be > 0")
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be > 0")
	}
	if c.SweepInterval <= 0 {
		return fmt.Errorf("SWEEP_INTERVAL must be > 0")
	}
	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.FrontendURL == "" ||
		strings.Contains(c.FrontendURL, "localhost") ||
		strings.Contains(c.FrontendURL, "127.0.0.1")
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return fallback
	}
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return d
}
