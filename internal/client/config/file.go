package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrijs2005/userdeck/internal/flagx"
	"github.com/dmitrijs2005/userdeck/internal/timex"
)

// FileConfig is the DTO for config files. Only non-zero fields are copied
// into Config, so a file may set a subset of the options.
type FileConfig struct {
	ServerURL      string         `json:"server_url" yaml:"server_url"`
	APIKey         string         `json:"api_key" yaml:"api_key"`
	SessionDB      string         `json:"session_db" yaml:"session_db"`
	RequestTimeout timex.Duration `json:"request_timeout" yaml:"request_timeout"`
	LogLevel       string         `json:"log_level" yaml:"log_level"`
	OutputFormat   string         `json:"output_format" yaml:"output_format"`
}

// parseFile overlays cfg with the file named by -c/-config in args.
// It panics on read or decode errors.
func parseFile(cfg *Config, args []string) {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var fc FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		panic(err)
	}

	if fc.ServerURL != "" {
		cfg.ServerURL = fc.ServerURL
	}
	if fc.APIKey != "" {
		cfg.APIKey = fc.APIKey
	}
	if fc.SessionDB != "" {
		cfg.SessionDB = fc.SessionDB
	}
	if fc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = fc.RequestTimeout.Duration
	}
	if fc.LogLevel != "" {
		cfg.LogLevel = fc.LogLevel
	}
	if fc.OutputFormat != "" {
		cfg.OutputFormat = fc.OutputFormat
	}
}
