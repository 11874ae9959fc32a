package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/recipebox/internal/client/models"
	"github.com/dmitrijs2005/recipebox/internal/common"
	"github.com/dmitrijs2005/recipebox/internal/logging"
	"golang.org/x/time/rate"
)

// mealsResponse is the body of every catalog endpoint; meals is null when
// nothing matched.
type mealsResponse struct {
	Meals []models.Recipe `json:"meals"`
}

type Client struct {
	cfg     Config
	http    *http.Client
	limiter *rate.Limiter
	log     logging.Logger
}

func NewClient(cfg Config, httpClient *http.Client, log logging.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if httpClient == nil {
		httpClient = NewHTTPClient(cfg.Timeout)
	}
	return &Client{cfg: cfg, http: httpClient, limiter: newLimiter(cfg), log: log}
}

func newLimiter(cfg Config) *rate.Limiter {
	switch {
	case cfg.RatePerSecond < 0:
		return rate.NewLimiter(rate.Inf, 0)
	case cfg.RatePerSecond == 0:
		cfg.RatePerSecond = DefaultRatePerSecond
	}
	if cfg.Burst <= 0 {
		cfg.Burst = DefaultBurst
	}
	return rate.NewLimiter(rate.Limit(cfg.RatePerSecond), cfg.Burst)
}

// SearchRecipes looks recipes up by name. A blank query returns an empty
// list without touching the network.
func (c *Client) SearchRecipes(ctx context.Context, query string) ([]models.Recipe, error) {
	if strings.TrimSpace(query) == "" {
		return []models.Recipe{}, nil
	}
	return c.get(ctx, "search.php", url.Values{"s": {query}})
}

// GetRecipeByID fetches a single recipe. An empty result means not found.
func (c *Client) GetRecipeByID(ctx context.Context, id string) ([]models.Recipe, error) {
	if strings.TrimSpace(id) == "" {
		return []models.Recipe{}, nil
	}
	return c.get(ctx, "lookup.php", url.Values{"i": {id}})
}

func (c *Client) get(ctx context.Context, endpoint string, q url.Values) ([]models.Recipe, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrTransport, err)
	}

	u := fmt.Sprintf("%s/%s?%s", c.cfg.BaseURL, endpoint, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrTransport, err)
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrTransport, err)
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			c.log.Warn(ctx, "failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("%w: themealdb http %d", common.ErrTransport, res.StatusCode)
	}

	var body mealsResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %w", common.ErrTransport, endpoint, err)
	}

	c.log.Debug(ctx, "catalog request done", "endpoint", endpoint, "results", len(body.Meals))

	if body.Meals == nil {
		return []models.Recipe{}, nil
	}
	return body.Meals, nil
}
