package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Issuer      string        // Required: expected issuer of identity provider tokens
	Audience    []string      // Optional: accepted audience values (default: none, audience not checked)
	JWKSURL     string        // Required: identity provider JWKS endpoint
	JWKSRefresh time.Duration // Optional: JWKS refresh interval (default: 15m)

	DatabaseFile         string        // Optional: path to SQLite database file (default: ./folio.db)
	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 1h)
	ContactRetention     time.Duration // How long contact messages are kept (default: 90 days)
}

func LoadConfig() Config {
	cfg := Config{
		Issuer:               os.Getenv("FOLIO_ISSUER"),
		JWKSURL:              os.Getenv("FOLIO_JWKS_URL"),
		JWKSRefresh:          getEnvDurationOrDefault("FOLIO_JWKS_REFRESH", 15*time.Minute),
		DatabaseFile:         getEnvOrDefault("FOLIO_DATABASE_FILE", "folio.db"),
		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
		ContactRetention:     getEnvDurationOrDefault("CONTACT_RETENTION", 90*24*time.Hour),
	}

	if aud := os.Getenv("FOLIO_AUDIENCE"); aud != "" {
		cfg.Audience = []string{aud}
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

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Plain integers are read as minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
