package infra

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config represents application configuration loaded from environment variables.
type Config struct {
	AppEnv string
	Port   string

	GeminiAPIKey  string
	GeminiBaseURL string

	PlanModel      string
	RenderModel    string
	RenderProModel string
	SpeechModel    string
	AnalysisModel  string

	RetryMaxAttempts   int
	RetryBaseDelay     time.Duration
	UploadPollInterval time.Duration
	AnalysisTimeout    time.Duration

	DefaultLocale   string
	AllowedOrigins  []string
	RateLimitPerMin int
	ExportDir       string

	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration
	HTTPIdleTimeout  time.Duration
}

// LoadConfig loads configuration from environment variables and applies
// defaults where needed. Only the provider key is mandatory.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		AppEnv: getEnv("APP_ENV", "development"),
		Port:   getEnv("PORT", "8080"),

		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		GeminiBaseURL: getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com"),

		PlanModel:      os.Getenv("PLAN_MODEL"),
		RenderModel:    os.Getenv("RENDER_MODEL"),
		RenderProModel: os.Getenv("RENDER_PRO_MODEL"),
		SpeechModel:    os.Getenv("SPEECH_MODEL"),
		AnalysisModel:  os.Getenv("ANALYSIS_MODEL"),

		RetryMaxAttempts:   getEnvInt("RETRY_MAX_ATTEMPTS", 3),
		RetryBaseDelay:     time.Second * time.Duration(getEnvInt("RETRY_BASE_DELAY_SECONDS", 2)),
		UploadPollInterval: time.Second * time.Duration(getEnvInt("UPLOAD_POLL_SECONDS", 3)),
		AnalysisTimeout:    time.Second * time.Duration(getEnvInt("ANALYSIS_TIMEOUT_SECONDS", 120)),

		DefaultLocale:   getEnv("DEFAULT_LOCALE", "id"),
		AllowedOrigins:  getEnvList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		RateLimitPerMin: getEnvInt("RATE_LIMIT_PER_MINUTE", 60),
		ExportDir:       os.Getenv("EXPORT_DIR"),

		// Zero means "use the server defaults"; see NewHTTPServer.
		HTTPReadTimeout:  time.Second * time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 0)),
		HTTPWriteTimeout: time.Second * time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 0)),
		HTTPIdleTimeout:  time.Second * time.Duration(getEnvInt("HTTP_IDLE_TIMEOUT_SECONDS", 0)),
	}

	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvList(key string, fallback []string) []string {
	v, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
