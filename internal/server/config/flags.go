package config

import (
	"flag"
	"io"
	"strings"
	"time"

	"github.com/dmitrijs2005/userdeck/internal/flagx"
)

// parseFlags populates server Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   HTTP bind address (e.g. ":8080")
//	-b string   base path of the API (e.g. "/api")
//	-s string   token HMAC secret key
//	-t int      token validity, minutes
//	-e string   operator email
//	-p string   operator password
//	-n int      users per page
//	-o string   comma separated CORS origins
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-b", "-s", "-t", "-e", "-p", "-n", "-o"})

	fs := flag.NewFlagSet("userdeck-server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.HTTPAddr, "a", cfg.HTTPAddr, "address and port to run server")
	fs.StringVar(&cfg.BasePath, "b", cfg.BasePath, "base path")
	fs.StringVar(&cfg.SecretKey, "s", cfg.SecretKey, "secret key")
	ttl := fs.Int("t", int(cfg.TokenTTL.Minutes()), "token validity (in minutes)")
	fs.StringVar(&cfg.OperatorEmail, "e", cfg.OperatorEmail, "operator email")
	fs.StringVar(&cfg.OperatorPassword, "p", cfg.OperatorPassword, "operator password")
	fs.IntVar(&cfg.PerPage, "n", cfg.PerPage, "users per page")
	origins := fs.String("o", strings.Join(cfg.AllowOrigins, ","), "allowed CORS origins")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "t":
			cfg.TokenTTL = time.Duration(*ttl) * time.Minute
		case "o":
			cfg.AllowOrigins = splitList(*origins)
		}
	})
}
