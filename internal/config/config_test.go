package config_test

import (
	"testing"

	"github.com/orato-ai/orato/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg := config.Load()

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.ModelName != "gemini-2.5-flash" {
		t.Errorf("ModelName = %q", cfg.ModelName)
	}
	if cfg.AllowedOrigin != "*" {
		t.Errorf("AllowedOrigin = %q", cfg.AllowedOrigin)
	}
	if cfg.UseMockLLM {
		t.Errorf("UseMockLLM should default to false")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("ORATO_PORT", "9999")
	t.Setenv("ORATO_GEMINI_API_KEY", "test-key")
	t.Setenv("ORATO_ALLOWED_ORIGIN", "https://app.example.com")
	t.Setenv("ORATO_USE_MOCK_LLM", "1")

	cfg := config.Load()

	if cfg.Port != "9999" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.GeminiAPIKey != "test-key" {
		t.Errorf("GeminiAPIKey = %q", cfg.GeminiAPIKey)
	}
	if cfg.AllowedOrigin != "https://app.example.com" {
		t.Errorf("AllowedOrigin = %q", cfg.AllowedOrigin)
	}
	if !cfg.UseMockLLM {
		t.Errorf("UseMockLLM should be true")
	}
}
