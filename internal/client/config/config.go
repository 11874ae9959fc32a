package config

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/recipebox/internal/client/catalog"
	"github.com/dmitrijs2005/recipebox/internal/client/repositories/kv"
	"github.com/dmitrijs2005/recipebox/internal/client/services"
)

// Config holds runtime settings for the recipebox CLI.
//
// Units: RequestTimeout is a time.Duration; on the command line it is given
// in whole seconds.
type Config struct {
	CatalogBaseURL string
	RequestTimeout time.Duration

	Store         string
	DataDir       string
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	PasswordPolicy services.PasswordPolicy

	LogLevel  string
	LogFormat string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.CatalogBaseURL = catalog.DefaultBaseURL
	c.RequestTimeout = catalog.DefaultTimeout
	c.Store = kv.BackendSQLite
	c.DataDir = ".recipebox"
	c.RedisAddr = "127.0.0.1:6379"
	c.RedisPassword = ""
	c.PasswordPolicy = services.PolicyDemo
	c.LogLevel = "warn"
	c.LogFormat = "text"
}

// Validate rejects values no component can work with.
func (c *Config) Validate() error {
	switch c.Store {
	case kv.BackendSQLite, kv.BackendRedis, kv.BackendMemory:
	default:
		return fmt.Errorf("unknown store %q (want sqlite, redis or memory)", c.Store)
	}
	switch c.PasswordPolicy {
	case services.PolicyDemo, services.PolicyVerify:
	default:
		return fmt.Errorf("unknown password policy %q (want demo or verify)", c.PasswordPolicy)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q (want text or json)", c.LogFormat)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive, got %s", c.RequestTimeout)
	}
	if c.RedisDB < 0 {
		return fmt.Errorf("redis db must not be negative, got %d", c.RedisDB)
	}
	if c.CatalogBaseURL == "" {
		return fmt.Errorf("catalog base url is empty")
	}
	return nil
}

// LoadConfig builds a Config from defaults, then the JSON file named by
// -c/-config (if any), then command-line flags. Later sources take
// precedence. args excludes the program name.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
