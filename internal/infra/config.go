package infra

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config represents application configuration loaded from environment variables.
type Config struct {
	AppEnv           string
	Port             string
	GeminiAPIKey     string
	GeminiModel      string
	AllowedOrigins   []string
	DefaultLocale    string
	GeoIPDBPath      string
	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration
	HTTPIdleTimeout  time.Duration
	RateLimitPerMin  int
	GenerateBodyMax  int64
	EditBodyMax      int64
}

// LoadConfig loads configuration from environment variables and applies
// defaults where needed. GEMINI_API_KEY is deliberately optional here: a
// missing credential must surface as a per-request configuration error, not
// as a startup failure.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		AppEnv:           getEnv("APP_ENV", "development"),
		Port:             getEnv("PORT", "8080"),
		GeminiAPIKey:     strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		GeminiModel:      getEnv("GEMINI_MODEL", "gemini-2.5-flash-image-preview"),
		AllowedOrigins:   splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),
		DefaultLocale:    getEnv("DEFAULT_LOCALE", "zh"),
		GeoIPDBPath:      os.Getenv("GEOIP_DB_PATH"),
		HTTPReadTimeout:  time.Second * time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 15)),
		HTTPWriteTimeout: time.Second * time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 120)),
		HTTPIdleTimeout:  time.Second * time.Duration(getEnvInt("HTTP_IDLE_TIMEOUT_SECONDS", 60)),
		RateLimitPerMin:  getEnvInt("RATE_LIMIT_PER_MINUTE", 30),
		GenerateBodyMax:  getEnvInt64("GENERATE_BODY_MAX_BYTES", 1<<20),
		EditBodyMax:      getEnvInt64("EDIT_BODY_MAX_BYTES", 10<<20),
	}

	return cfg, nil
}

// CredentialConfigured reports whether the provider credential is present.
func (c *Config) CredentialConfigured() bool {
	return c != nil && c.GeminiAPIKey != ""
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

func getEnvInt64(key string, fallback int64) int64 {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.ParseInt(v, 10, 64); err == nil {
			return i
		}
	}
	return fallback
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
