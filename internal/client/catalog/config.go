// Package catalog is a read-only client for TheMealDB recipe catalog.
package catalog

import "time"

// DefaultBaseURL is the public TheMealDB v1 endpoint with the test API key.
const DefaultBaseURL = "https://www.themealdb.com/api/json/v1/1"

// DefaultTimeout bounds a whole catalog request.
const DefaultTimeout = 10 * time.Second

// DefaultRatePerSecond and DefaultBurst throttle outbound requests to the
// shared public API key.
const (
	DefaultRatePerSecond = 5
	DefaultBurst         = 5
)

// Config holds the catalog endpoint, per-request timeout and request rate.
// A zero RatePerSecond means the default; a negative one disables throttling.
type Config struct {
	BaseURL       string
	Timeout       time.Duration
	RatePerSecond float64
	Burst         int
}
