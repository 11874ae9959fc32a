package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/recipebox/internal/client/services"
	"github.com/dmitrijs2005/recipebox/internal/flagx"
	"github.com/dmitrijs2005/recipebox/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Fields that
// are absent from the file leave the current value untouched.
type JsonConfig struct {
	CatalogBaseURL string          `json:"catalog_base_url"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
	Store          string          `json:"store"`
	DataDir        string          `json:"data_dir"`
	RedisAddr      string          `json:"redis_addr"`
	RedisPassword  string          `json:"redis_password"`
	RedisDB        *int            `json:"redis_db"`
	PasswordPolicy string          `json:"password_policy"`
	LogLevel       string          `json:"log_level"`
	LogFormat      string          `json:"log_format"`
}

// parseJson overlays cfg with the JSON file given by -c or -config. Without
// either flag it does nothing.
func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	setIf(&cfg.CatalogBaseURL, jc.CatalogBaseURL)
	setIf(&cfg.Store, jc.Store)
	setIf(&cfg.DataDir, jc.DataDir)
	setIf(&cfg.RedisAddr, jc.RedisAddr)
	setIf(&cfg.RedisPassword, jc.RedisPassword)
	setIf(&cfg.LogLevel, jc.LogLevel)
	setIf(&cfg.LogFormat, jc.LogFormat)
	if jc.RedisDB != nil {
		cfg.RedisDB = *jc.RedisDB
	}
	if jc.PasswordPolicy != "" {
		cfg.PasswordPolicy = services.PasswordPolicy(jc.PasswordPolicy)
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	return nil
}

func setIf(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
