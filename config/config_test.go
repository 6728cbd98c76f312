package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("OPENAI_API_KEY", "")

	if err := Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	cfg := Get()

	if cfg.Port != "8080" {
		t.Errorf("port = %s, want 8080", cfg.Port)
	}
	if cfg.Environment != "development" {
		t.Errorf("environment = %s", cfg.Environment)
	}
	if cfg.AI.APIKey != "" {
		t.Error("API key should default to empty")
	}
	if cfg.AI.Model != "gpt-4o" {
		t.Errorf("model = %s", cfg.AI.Model)
	}
	if cfg.AI.Timeout != 30*time.Second {
		t.Errorf("timeout = %s", cfg.AI.Timeout)
	}
	if cfg.SimulatedLatency != 0 {
		t.Errorf("simulated latency = %s, want 0", cfg.SimulatedLatency)
	}
	if len(cfg.Security.AllowedOrigins) == 0 {
		t.Error("expected default allowed origins")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("AI_MODEL", "gpt-4o-mini")
	t.Setenv("AI_TIMEOUT", "5s")
	t.Setenv("SIMULATED_LATENCY", "1s")
	t.Setenv("ALLOWED_ORIGINS", "https://lab.example.com,https://staging.example.com")

	if err := Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	cfg := Get()

	if cfg.Port != "9090" {
		t.Errorf("port = %s", cfg.Port)
	}
	if cfg.AI.APIKey != "sk-test" {
		t.Errorf("api key = %s", cfg.AI.APIKey)
	}
	if cfg.AI.Model != "gpt-4o-mini" {
		t.Errorf("model = %s", cfg.AI.Model)
	}
	if cfg.AI.Timeout != 5*time.Second {
		t.Errorf("timeout = %s", cfg.AI.Timeout)
	}
	if cfg.SimulatedLatency != time.Second {
		t.Errorf("simulated latency = %s", cfg.SimulatedLatency)
	}
	if len(cfg.Security.AllowedOrigins) != 2 {
		t.Errorf("origins = %v", cfg.Security.AllowedOrigins)
	}
}
