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

// FileConfig is the DTO for config files. TokenTTL accepts "90m" style
// strings or integer nanoseconds.
type FileConfig struct {
	HTTPAddr         string         `json:"http_addr" yaml:"http_addr"`
	BasePath         string         `json:"base_path" yaml:"base_path"`
	SecretKey        string         `json:"secret_key" yaml:"secret_key"`
	TokenTTL         timex.Duration `json:"token_ttl" yaml:"token_ttl"`
	OperatorEmail    string         `json:"operator_email" yaml:"operator_email"`
	OperatorPassword string         `json:"operator_password" yaml:"operator_password"`
	PerPage          int            `json:"per_page" yaml:"per_page"`
	AllowOrigins     []string       `json:"allow_origins" yaml:"allow_origins"`
}

// parseFile overlays cfg with the file named by -c/-config in args. Empty
// fields in the file keep the current value. It panics on read or decode
// errors.
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

	if fc.HTTPAddr != "" {
		cfg.HTTPAddr = fc.HTTPAddr
	}
	if fc.BasePath != "" {
		cfg.BasePath = fc.BasePath
	}
	if fc.SecretKey != "" {
		cfg.SecretKey = fc.SecretKey
	}
	if fc.TokenTTL.Duration != 0 {
		cfg.TokenTTL = fc.TokenTTL.Duration
	}
	if fc.OperatorEmail != "" {
		cfg.OperatorEmail = fc.OperatorEmail
	}
	if fc.OperatorPassword != "" {
		cfg.OperatorPassword = fc.OperatorPassword
	}
	if fc.PerPage != 0 {
		cfg.PerPage = fc.PerPage
	}
	if len(fc.AllowOrigins) > 0 {
		cfg.AllowOrigins = fc.AllowOrigins
	}
}
