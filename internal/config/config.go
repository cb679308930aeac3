package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	ServerPort string
	GinMode    string
	LogLevel   string
	// LogFormat is "pretty", "json" or empty. Empty lets the logger pick
	// based on whether stdout is a terminal.
	LogFormat string

	// SpreadsheetID identifies the workbook holding the settings sheet and
	// every question sheet.
	SpreadsheetID string
	// CredentialsFile is the path to the Google service-account key.
	CredentialsFile string

	// RedisURL enables the shared rate limiter when set.
	RedisURL           string
	RateLimitPerMinute int
	// AllowedOrigins controls HTTP CORS.
	// Empty slice means all origins are permitted.
	AllowedOrigins []string
	// TrustedProxies lists the proxy IPs/CIDRs whose X-Forwarded-For and
	// X-Real-IP headers are honored for the client IP. Empty trusts none,
	// so the rate limiter keys on the socket peer address.
	TrustedProxies []string
}

// Load reads configuration from environment variables with sensible defaults.
// It loads .env file if present but does not fail if missing.
func Load() *Config {
	_ = godotenv.Load() // .env is optional

	return &Config{
		ServerPort:         getEnv("PORT", "3000"),
		GinMode:            getEnv("GIN_MODE", "debug"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		LogFormat:          getEnv("LOG_FORMAT", ""),
		SpreadsheetID:      getEnv("SPREADSHEET_ID", ""),
		CredentialsFile:    getEnv("GOOGLE_APPLICATION_CREDENTIALS", ""),
		RedisURL:           getEnv("REDIS_URL", ""),
		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 120),
		AllowedOrigins:     parseOrigins(getEnv("ALLOWED_ORIGINS", "")),
		TrustedProxies:     parseList(getEnv("TRUSTED_PROXIES", "")),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// parseOrigins splits a comma-separated origins string into a trimmed slice.
// Returns nil (allow-all) if the input is empty.
func parseOrigins(raw string) []string {
	return parseList(raw)
}

func parseList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
