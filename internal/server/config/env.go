package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvHTTPAddr         = "USERDECK_HTTP_ADDR"
	EnvBasePath         = "USERDECK_BASE_PATH"
	EnvSecretKey        = "USERDECK_SECRET_KEY"
	EnvTokenTTL         = "USERDECK_TOKEN_TTL"
	EnvOperatorEmail    = "USERDECK_OPERATOR_EMAIL"
	EnvOperatorPassword = "USERDECK_OPERATOR_PASSWORD"
	EnvPerPage          = "USERDECK_PER_PAGE"
	EnvAllowOrigins     = "USERDECK_ALLOW_ORIGINS"
)

// parseEnv overlays cfg with USERDECK_* variables, loading .env first when
// present. USERDECK_ALLOW_ORIGINS is comma separated.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	cfg.HTTPAddr = getEnv(EnvHTTPAddr, cfg.HTTPAddr)
	cfg.BasePath = getEnv(EnvBasePath, cfg.BasePath)
	cfg.SecretKey = getEnv(EnvSecretKey, cfg.SecretKey)
	cfg.OperatorEmail = getEnv(EnvOperatorEmail, cfg.OperatorEmail)
	cfg.OperatorPassword = getEnv(EnvOperatorPassword, cfg.OperatorPassword)

	if v := os.Getenv(EnvTokenTTL); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(fmt.Errorf("invalid %s: %w", EnvTokenTTL, err))
		}
		cfg.TokenTTL = d
	}

	if v := os.Getenv(EnvPerPage); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			panic(fmt.Errorf("invalid %s: %w", EnvPerPage, err))
		}
		cfg.PerPage = n
	}

	if v := os.Getenv(EnvAllowOrigins); v != "" {
		cfg.AllowOrigins = splitList(v)
	}
}

func getEnv(key, defaultValue string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return defaultValue
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
