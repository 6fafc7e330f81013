// Package config handles configuration for the stub directory server,
// including defaults, environment, a JSON or YAML file and command-line flags.
package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the directory server.
//
// Fields:
//   - HTTPAddr: bind address for the HTTP API.
//   - BasePath: prefix every route is mounted under, e.g. "/api".
//   - SecretKey: HMAC secret for signing tokens (HS256). Do not use the default in prod.
//   - TokenTTL: lifetime of issued tokens.
//   - OperatorEmail / OperatorPassword: the single account allowed to log in.
//   - PerPage: page size of GET /users.
//   - AllowOrigins: CORS origins allowed to call the API.
type Config struct {
	HTTPAddr         string
	BasePath         string
	SecretKey        string
	TokenTTL         time.Duration
	OperatorEmail    string
	OperatorPassword string
	PerPage          int
	AllowOrigins     []string
}

// LoadDefaults populates Config with development defaults that mirror the
// public reqres.in demo account.
func (c *Config) LoadDefaults() {
	c.HTTPAddr = ":8080"
	c.BasePath = "/api"
	c.SecretKey = "secretKey"
	c.TokenTTL = 60 * time.Minute
	c.OperatorEmail = "eve.holt@reqres.in"
	c.OperatorPassword = "cityslicka"
	c.PerPage = 6
	c.AllowOrigins = []string{"http://localhost:3000"}
}

// LoadConfig builds a Config from os.Args. It panics on unreadable config
// files and malformed values.
func LoadConfig() *Config {
	return Load(os.Args[1:])
}

// Load applies defaults, environment, config file and flags found in args.
func Load(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseFile(cfg, args)
	parseFlags(cfg, args)
	return cfg
}
