package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the console.
type Config struct {
	ServerURL      string
	APIKey         string
	SessionDB      string
	RequestTimeout time.Duration
	LogLevel       string
	OutputFormat   string
}

// LoadDefaults populates c with defaults pointing at a local stub server.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://127.0.0.1:8080/api"
	c.APIKey = ""
	c.SessionDB = ""
	c.RequestTimeout = 0
	c.LogLevel = "info"
	c.OutputFormat = "text"
}

// LoadConfig builds a Config from os.Args. It panics when a config file
// cannot be read or a flag or environment value is malformed.
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
