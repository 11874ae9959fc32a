package config

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/recipebox/internal/client/services"
	"github.com/dmitrijs2005/recipebox/internal/flagx"
)

var knownFlags = []string{"-u", "-t", "-s", "-d", "-r", "-b", "-p", "-l"}

// parseFlags populates selected Config fields from command-line flags.
//
//	-u string   catalog base URL
//	-t int      request timeout (seconds)
//	-s string   store backend: sqlite, redis or memory
//	-d string   data directory for the sqlite store
//	-r string   redis address
//	-b int      redis database number
//	-p string   password policy: demo or verify
//	-l string   log level
//
// Only the flags above are looked at; everything else in args is ignored.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, knownFlags)

	fs := flag.NewFlagSet("recipebox", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.CatalogBaseURL, "u", cfg.CatalogBaseURL, "catalog base URL")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.Store, "s", cfg.Store, "store backend (sqlite|redis|memory)")
	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "data directory")
	fs.StringVar(&cfg.RedisAddr, "r", cfg.RedisAddr, "redis address")
	fs.IntVar(&cfg.RedisDB, "b", cfg.RedisDB, "redis database number")
	policy := fs.String("p", string(cfg.PasswordPolicy), "password policy (demo|verify)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug|info|warn|error)")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
	cfg.PasswordPolicy = services.PasswordPolicy(*policy)
	return nil
}
