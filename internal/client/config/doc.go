// Package config loads runtime configuration for the recipebox CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-u string   catalog base URL
//	-t int      request timeout (seconds)
//	-s string   store backend: sqlite, redis or memory
//	-d string   data directory for the sqlite store
//	-r string   redis address
//	-b int      redis database number
//	-p string   password policy: demo or verify
//	-l string   log level: debug, info, warn or error
//
// # JSON schema
//
// request_timeout uses timex.Duration, so it can be a string like "10s" or
// integer nanoseconds:
//
//	{
//	  "catalog_base_url": "https://www.themealdb.com/api/json/v1/1",
//	  "request_timeout": "10s",
//	  "store": "redis",
//	  "redis_addr": "127.0.0.1:6379",
//	  "redis_password": "",
//	  "redis_db": 0,
//	  "password_policy": "verify",
//	  "log_level": "info",
//	  "log_format": "json"
//	}
//
// Environment variables are not read.
package config
