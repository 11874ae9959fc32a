package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/dmitrijs2005/recipebox/internal/client/models"
	"github.com/dmitrijs2005/recipebox/internal/logging"
)

// Catalog is the read side of the recipe provider.
type Catalog interface {
	SearchRecipes(ctx context.Context, query string) ([]models.Recipe, error)
	GetRecipeByID(ctx context.Context, id string) ([]models.Recipe, error)
}

type SearchState int

const (
	SearchIdle SearchState = iota
	SearchLoading
	SearchSuccess
	SearchNotFound
	SearchFailed
)

func (s SearchState) String() string {
	switch s {
	case SearchIdle:
		return "idle"
	case SearchLoading:
		return "loading"
	case SearchSuccess:
		return "success"
	case SearchNotFound:
		return "not found"
	case SearchFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// FailedSearchNotice is shown instead of transport errors.
const FailedSearchNotice = "Failed to fetch recipes. Please try again."

// QuickCategories are the one-tap category searches.
var QuickCategories = []string{"Chicken", "Vegetarian", "Dessert", "Pasta"}

// ErrSearchSuperseded is returned for a search whose result arrived after a
// newer search had started. Its result is dropped.
var ErrSearchSuperseded = errors.New("search superseded by a newer one")

type SearchSnapshot struct {
	State      SearchState
	Query      string
	Results    []models.Recipe
	Notice     string
	Generation uint64
}

// SearchOrchestrator runs searches against the catalog. Only the latest
// search may change state; starting a new one cancels the one in flight.
type SearchOrchestrator struct {
	catalog Catalog
	library *Library
	prefs   *Preferences
	log     logging.Logger

	mu     sync.Mutex
	snap   SearchSnapshot
	cancel context.CancelFunc
}

func NewSearchOrchestrator(catalog Catalog, library *Library, prefs *Preferences, log logging.Logger) *SearchOrchestrator {
	return &SearchOrchestrator{catalog: catalog, library: library, prefs: prefs, log: log}
}

// Search looks up recipes matching query. A blank query changes nothing.
// The returned snapshot reflects the settled state of this search; if a newer
// search started in the meantime ErrSearchSuperseded is returned instead.
func (o *SearchOrchestrator) Search(ctx context.Context, query string) (SearchSnapshot, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return o.Snapshot(), nil
	}

	reqCtx, gen := o.begin(ctx, query)
	defer o.finish(gen)

	if _, err := o.prefs.IncrementSearchCount(ctx); err != nil {
		o.log.Warn(ctx, "search counter not saved", "error", err)
	}

	results, err := o.catalog.SearchRecipes(reqCtx, query)

	o.mu.Lock()
	defer o.mu.Unlock()

	if gen != o.snap.Generation {
		o.log.Debug(ctx, "discarding stale search result", "query", query, "generation", gen)
		return SearchSnapshot{}, ErrSearchSuperseded
	}

	switch {
	case err != nil:
		o.log.Error(ctx, "recipe search failed", "query", query, "error", err)
		o.snap.State = SearchFailed
		o.snap.Notice = FailedSearchNotice
	case len(results) == 0:
		o.snap.State = SearchNotFound
		o.snap.Notice = fmt.Sprintf("No recipes found for %q", query)
	default:
		o.snap.State = SearchSuccess
		o.snap.Results = results
		if err := o.library.AddToRecent(ctx, results[0]); err != nil {
			o.log.Warn(ctx, "recent list not saved", "error", err)
		}
	}
	return o.snapshot(), nil
}

// SearchByCategory searches using one of the quick category names.
func (o *SearchOrchestrator) SearchByCategory(ctx context.Context, category string) (SearchSnapshot, error) {
	return o.Search(ctx, category)
}

// ClearSearch cancels any search in flight and returns to idle.
func (o *SearchOrchestrator) ClearSearch() {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.cancel != nil {
		o.cancel()
		o.cancel = nil
	}
	o.snap = SearchSnapshot{State: SearchIdle, Generation: o.snap.Generation + 1}
}

func (o *SearchOrchestrator) Snapshot() SearchSnapshot {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.snapshot()
}

func (o *SearchOrchestrator) snapshot() SearchSnapshot {
	s := o.snap
	s.Results = slices.Clone(o.snap.Results)
	return s
}

// begin enters Loading under a fresh generation and cancels the previous
// request.
func (o *SearchOrchestrator) begin(ctx context.Context, query string) (context.Context, uint64) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.cancel != nil {
		o.cancel()
	}
	reqCtx, cancel := context.WithCancel(ctx)
	o.cancel = cancel

	o.snap = SearchSnapshot{
		State:      SearchLoading,
		Query:      query,
		Generation: o.snap.Generation + 1,
	}
	return reqCtx, o.snap.Generation
}

func (o *SearchOrchestrator) finish(gen uint64) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if gen == o.snap.Generation && o.cancel != nil {
		o.cancel()
		o.cancel = nil
	}
}
