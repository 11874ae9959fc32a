package services

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/dmitrijs2005/recipebox/internal/client/models"
	"github.com/dmitrijs2005/recipebox/internal/client/records"
	"github.com/dmitrijs2005/recipebox/internal/client/repositories/kv"
	"github.com/dmitrijs2005/recipebox/internal/common"
	"github.com/dmitrijs2005/recipebox/internal/logging"
)

// MaxRecent bounds the recent recipes list.
const MaxRecent = 5

// Library keeps the user's favorites, recently viewed recipes and shopping
// list. Every mutation rewrites the whole value.
type Library struct {
	mu    sync.Mutex
	store kv.Store
	log   logging.Logger
}

func NewLibrary(store kv.Store, log logging.Logger) *Library {
	return &Library{store: store, log: log}
}

func (l *Library) favorites(ctx context.Context) []string {
	return load(ctx, l.store, l.log, records.KeyFavorites, records.DecodeFavorites, nil)
}

func (l *Library) recent(ctx context.Context) []models.Recipe {
	return load(ctx, l.store, l.log, records.KeyRecent, records.DecodeRecent, nil)
}

func (l *Library) shopping(ctx context.Context) []models.ShoppingItem {
	return load(ctx, l.store, l.log, records.KeyShoppingList, records.DecodeShoppingList, nil)
}

func (l *Library) shoppingForUpdate(ctx context.Context) ([]models.ShoppingItem, error) {
	return loadForUpdate(ctx, l.store, l.log, records.KeyShoppingList, records.DecodeShoppingList, nil)
}

// ToggleFavorite adds id when absent and removes it when present. It
// returns the new membership.
func (l *Library) ToggleFavorite(ctx context.Context, id string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	favs, err := loadForUpdate(ctx, l.store, l.log, records.KeyFavorites, records.DecodeFavorites, nil)
	if err != nil {
		return false, err
	}
	member := false
	if i := slices.Index(favs, id); i >= 0 {
		favs = slices.Delete(favs, i, i+1)
	} else {
		favs = append(favs, id)
		member = true
	}

	if favs == nil {
		favs = []string{}
	}
	if err := save(ctx, l.store, records.KeyFavorites, records.EncodeFavorites, favs); err != nil {
		return !member, fmt.Errorf("save favorites: %w", err)
	}
	return member, nil
}

func (l *Library) IsFavorite(ctx context.Context, id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Contains(l.favorites(ctx), id)
}

func (l *Library) Favorites(ctx context.Context) []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.favorites(ctx)
}

// AddToRecent moves (or inserts) r at the front of the recent list and
// truncates it to MaxRecent entries.
func (l *Library) AddToRecent(ctx context.Context, r models.Recipe) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	recent, err := loadForUpdate(ctx, l.store, l.log, records.KeyRecent, records.DecodeRecent, nil)
	if err != nil {
		return err
	}
	recent = slices.DeleteFunc(recent, func(x models.Recipe) bool { return x.ID == r.ID })
	recent = append([]models.Recipe{r}, recent...)
	if len(recent) > MaxRecent {
		recent = recent[:MaxRecent]
	}

	if err := save(ctx, l.store, records.KeyRecent, records.EncodeRecent, recent); err != nil {
		return fmt.Errorf("save recent: %w", err)
	}
	return nil
}

// Recent returns the recent list, most recent first.
func (l *Library) Recent(ctx context.Context) []models.Recipe {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.recent(ctx)
}

func (l *Library) ClearRecent(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := save(ctx, l.store, records.KeyRecent, records.EncodeRecent, []models.Recipe{}); err != nil {
		return fmt.Errorf("save recent: %w", err)
	}
	return nil
}

// AddIngredientsToShoppingList appends the items whose ingredient is not yet
// on the list (case-insensitive). The list is written once for the whole
// batch. It returns how many items were added.
func (l *Library) AddIngredientsToShoppingList(ctx context.Context, items []models.Ingredient) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	list, err := l.shoppingForUpdate(ctx)
	if err != nil {
		return 0, err
	}
	seen := make(map[string]struct{}, len(list)+len(items))
	for _, it := range list {
		seen[strings.ToLower(it.Ingredient)] = struct{}{}
	}

	added := 0
	for _, it := range items {
		k := strings.ToLower(it.Ingredient)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		list = append(list, models.ShoppingItem{Ingredient: it.Ingredient, Measure: it.Measure})
		added++
	}

	if list == nil {
		list = []models.ShoppingItem{}
	}
	if err := save(ctx, l.store, records.KeyShoppingList, records.EncodeShoppingList, list); err != nil {
		return 0, fmt.Errorf("save shopping list: %w", err)
	}
	return added, nil
}

func (l *Library) ShoppingList(ctx context.Context) []models.ShoppingItem {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.shopping(ctx)
}

// SetShoppingItemChecked marks the item matching ingredient
// (case-insensitive). common.ErrNotFound is returned when no item matches.
func (l *Library) SetShoppingItemChecked(ctx context.Context, ingredient string, checked bool) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	list, err := l.shoppingForUpdate(ctx)
	if err != nil {
		return err
	}
	i := slices.IndexFunc(list, func(it models.ShoppingItem) bool {
		return strings.EqualFold(it.Ingredient, ingredient)
	})
	if i < 0 {
		return fmt.Errorf("shopping item %q: %w", ingredient, common.ErrNotFound)
	}
	list[i].Checked = checked

	if err := save(ctx, l.store, records.KeyShoppingList, records.EncodeShoppingList, list); err != nil {
		return fmt.Errorf("save shopping list: %w", err)
	}
	return nil
}

func (l *Library) ClearShoppingList(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := save(ctx, l.store, records.KeyShoppingList, records.EncodeShoppingList, []models.ShoppingItem{}); err != nil {
		return fmt.Errorf("save shopping list: %w", err)
	}
	return nil
}
