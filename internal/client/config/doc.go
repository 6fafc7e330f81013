// Package config loads runtime configuration for the userdeck console.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables USERDECK_*, optionally read from a .env file in
//     the working directory (see parseEnv).
//  3. Optional config file selected with -c or -config (see parseFile).
//     Files ending in .yaml or .yml are read as YAML, anything else as JSON.
//  4. Command-line flags (see parseFlags), which override everything else.
//
// Supported flags
//
//	-a string   base URL of the directory API
//	-k string   API key sent as x-api-key
//	-s string   path of the SQLite session database ("" keeps the session in memory)
//	-t int      HTTP request timeout in seconds (0 disables it)
//	-l string   log level: debug, info, warn, error
//	-f string   output format: text or json
//
// # File schema
//
//	{
//	  "server_url": "http://127.0.0.1:8080/api",
//	  "api_key": "",
//	  "session_db": "userdeck.db",
//	  "request_timeout": "10s",
//	  "log_level": "info",
//	  "output_format": "text"
//	}
package config
