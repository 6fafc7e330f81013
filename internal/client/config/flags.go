package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/userdeck/internal/flagx"
)

// parseFlags populates Config from the console flags found in args
// (see the package doc). Unrelated arguments are filtered out first.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-k", "-s", "-t", "-l", "-f"})

	fs := flag.NewFlagSet("userdeck", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.ServerURL, "a", cfg.ServerURL, "base URL of the directory API")
	fs.StringVar(&cfg.APIKey, "k", cfg.APIKey, "API key")
	fs.StringVar(&cfg.SessionDB, "s", cfg.SessionDB, "session database path")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.OutputFormat, "f", cfg.OutputFormat, "output format (text|json)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.RequestTimeout = time.Duration(*timeout) * time.Second
		}
	})
}
