package infra

import (
	"testing"
	"time"
)

func TestLoadConfigRequiresAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	if _, err := LoadConfig(); err == nil {
		t.Fatal("LoadConfig succeeded without GEMINI_API_KEY")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.AppEnv != "development" || cfg.Port != "8080" {
		t.Fatalf("defaults wrong: env=%q port=%q", cfg.AppEnv, cfg.Port)
	}
	if cfg.RetryMaxAttempts != 3 || cfg.RetryBaseDelay != 2*time.Second {
		t.Fatalf("retry defaults wrong: %d, %v", cfg.RetryMaxAttempts, cfg.RetryBaseDelay)
	}
	if cfg.UploadPollInterval != 3*time.Second || cfg.AnalysisTimeout != 120*time.Second {
		t.Fatalf("pipeline defaults wrong: %v, %v", cfg.UploadPollInterval, cfg.AnalysisTimeout)
	}
	if cfg.DefaultLocale != "id" {
		t.Fatalf("locale default = %q", cfg.DefaultLocale)
	}
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "*" {
		t.Fatalf("origin default = %v", cfg.AllowedOrigins)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("RETRY_MAX_ATTEMPTS", "5")
	t.Setenv("ANALYSIS_TIMEOUT_SECONDS", "30")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://studio.example, https://admin.example")
	t.Setenv("RENDER_MODEL", "custom-image-model")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.RetryMaxAttempts != 5 {
		t.Fatalf("RetryMaxAttempts = %d", cfg.RetryMaxAttempts)
	}
	if cfg.AnalysisTimeout != 30*time.Second {
		t.Fatalf("AnalysisTimeout = %v", cfg.AnalysisTimeout)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "https://admin.example" {
		t.Fatalf("AllowedOrigins = %v", cfg.AllowedOrigins)
	}
	if cfg.RenderModel != "custom-image-model" {
		t.Fatalf("RenderModel = %q", cfg.RenderModel)
	}
}
