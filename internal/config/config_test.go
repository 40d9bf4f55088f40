package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("USE_MOCK_LLM", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.SessionTTL != time.Hour {
		t.Errorf("expected default session TTL 1h, got %v", cfg.SessionTTL)
	}
	if cfg.SweepInterval != 5*time.Minute {
		t.Errorf("expected default sweep interval 5m, got %v", cfg.SweepInterval)
	}
	if cfg.LLMTimeout != 10*time.Second {
		t.Errorf("expected default LLM timeout 10s, got %v", cfg.LLMTimeout)
	}
}

func TestLoadRequiresAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("USE_MOCK_LLM", "false")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when GEMINI_API_KEY is unset without mock mode")
	}
}

func TestLoadDurations(t *testing.T) {
	t.Setenv("USE_MOCK_LLM", "true")
	t.Setenv("SESSION_TTL", "2h")
	t.Setenv("SWEEP_INTERVAL", "30s")
	t.Setenv("LLM_TIMEOUT", "3s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.SessionTTL != 2*time.Hour {
		t.Errorf("expected 2h session TTL, got %v", cfg.SessionTTL)
	}
	if cfg.SweepInterval != 30*time.Second {
		t.Errorf("expected 30s sweep interval, got %v", cfg.SweepInterval)
	}
	if cfg.LLMTimeout != 3*time.Second {
		t.Errorf("expected 3s LLM timeout, got %v", cfg.LLMTimeout)
	}
}

func TestLoadInvalidDurationFallsBack(t *testing.T) {
	t.Setenv("USE_MOCK_LLM", "true")
	t.Setenv("SESSION_TTL", "not-a-duration")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.SessionTTL != time.Hour {
		t.Errorf("expected fallback to 1h, got %v", cfg.SessionTTL)
	}
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Port:          "8080",
			UseMockLLM:    true,
			LLMTimeout:    10 * time.Second,
			SessionTTL:    time.Hour,
			SweepInterval: 5 * time.Minute,
		}
	}

	if err := base().Validate(); err != nil {
		t.Errorf("expected valid config, got %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty port", func(c *Config) { c.Port = "" }},
		{"zero ttl", func(c *Config) { c.SessionTTL = 0 }},
		{"zero sweep interval", func(c *Config) { c.SweepInterval = 0 }},
		{"zero llm timeout", func(c *Config) { c.LLMTimeout = 0 }},
		{"no key no mock", func(c *Config) { c.UseMockLLM = false }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
