package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Issuer       string // Required: issuer claim for session tokens
	AdminKeyHash string // Optional: argon2id hash guarding the admin leads endpoint

	DatabaseFile         string        // Optional: path to SQLite database file (default: ./fitgate.db)
	SessionTTL           time.Duration // Optional: dashboard session token lifetime (default: 1h)
	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Idle-session purge interval (default: 5m)
	SessionMaxIdle       time.Duration // Idle time before an onboarding session is purged (default: 30m)
}

func LoadConfig() Config {
	cfg := Config{
		Issuer:               os.Getenv("FITGATE_ISSUER"),
		AdminKeyHash:         os.Getenv("FITGATE_ADMIN_KEY_HASH"), // Optional: empty disables /v1/admin
		DatabaseFile:         getEnvOrDefault("FITGATE_DATABASE_FILE", "fitgate.db"),
		SessionTTL:           getEnvDurationOrDefault("FITGATE_SESSION_TTL", time.Hour),
		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 5*time.Minute),
		SessionMaxIdle:       getEnvDurationOrDefault("FITGATE_SESSION_MAX_IDLE", 30*time.Minute),
	}

	if cfg.Issuer == "" {
		cfg.Issuer = "fitgate"
	}

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer minutes (for backwards compatibility)
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
