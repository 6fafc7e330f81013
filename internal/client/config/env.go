package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvServerURL      = "USERDECK_SERVER_URL"
	EnvAPIKey         = "USERDECK_API_KEY"
	EnvSessionDB      = "USERDECK_SESSION_DB"
	EnvRequestTimeout = "USERDECK_REQUEST_TIMEOUT"
	EnvLogLevel       = "USERDECK_LOG_LEVEL"
	EnvOutputFormat   = "USERDECK_OUTPUT_FORMAT"
)

// parseEnv overlays cfg with USERDECK_* variables. A .env file is loaded
// first when present; variables already set in the process win over it.
// USERDECK_REQUEST_TIMEOUT accepts a Go duration ("10s") or whole seconds.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	cfg.ServerURL = getEnv(EnvServerURL, cfg.ServerURL)
	cfg.APIKey = getEnv(EnvAPIKey, cfg.APIKey)
	cfg.SessionDB = getEnv(EnvSessionDB, cfg.SessionDB)
	cfg.LogLevel = getEnv(EnvLogLevel, cfg.LogLevel)
	cfg.OutputFormat = getEnv(EnvOutputFormat, cfg.OutputFormat)

	if v, ok := os.LookupEnv(EnvRequestTimeout); ok && v != "" {
		d, err := parseSecondsOrDuration(v)
		if err != nil {
			panic(fmt.Errorf("invalid %s: %w", EnvRequestTimeout, err))
		}
		cfg.RequestTimeout = d
	}
}

func getEnv(key, defaultValue string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return defaultValue
}

func parseSecondsOrDuration(v string) (time.Duration, error) {
	if n, err := strconv.Atoi(v); err == nil {
		return time.Duration(n) * time.Second, nil
	}
	return time.ParseDuration(v)
}
