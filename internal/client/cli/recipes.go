package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/recipebox/internal/client/services"
)

// Search runs a catalog search and prints its outcome.
func (a *App) Search(ctx context.Context, query string) error {
	snap, err := a.search.Search(ctx, query)
	if errors.Is(err, services.ErrSearchSuperseded) {
		return nil
	}
	if err != nil {
		return err
	}
	a.printSearch(ctx, snap)
	return nil
}

// Category searches one of the quick categories. The name is matched
// case-insensitively.
func (a *App) Category(ctx context.Context, name string) error {
	for _, c := range services.QuickCategories {
		if strings.EqualFold(c, name) {
			snap, err := a.search.SearchByCategory(ctx, c)
			if errors.Is(err, services.ErrSearchSuperseded) {
				return nil
			}
			if err != nil {
				return err
			}
			a.printSearch(ctx, snap)
			return nil
		}
	}
	a.println("Categories:", strings.Join(services.QuickCategories, ", "))
	return nil
}

// Tag searches the catalog for a tag taken from a recipe page.
func (a *App) Tag(ctx context.Context, tag string) error {
	return a.Search(ctx, tag)
}

// Show prints the full recipe.
func (a *App) Show(ctx context.Context, id string) error {
	rd, err := a.detail.Load(ctx, id)
	if err != nil {
		return err
	}
	a.printDetail(rd)
	return nil
}

// Share prints a link to the recipe and a message to send with it.
func (a *App) Share(ctx context.Context, id string) error {
	sh, err := a.detail.Share(ctx, id)
	if err != nil {
		return err
	}
	a.println(sh.Text)
	a.println(sh.URL)
	return nil
}

func (a *App) Favorite(ctx context.Context, id string) error {
	on, err := a.library.ToggleFavorite(ctx, id)
	if err != nil {
		return err
	}
	if on {
		a.println("Added to favorites.")
	} else {
		a.println("Removed from favorites.")
	}
	return nil
}

func (a *App) Favorites(ctx context.Context) error {
	favs := a.library.Favorites(ctx)
	if len(favs) == 0 {
		a.println("You haven't added any recipes to favorites yet.")
		return nil
	}
	a.printf("You have %d favorite recipes:\n", len(favs))
	for _, id := range favs {
		a.println("  " + id)
	}
	return nil
}

func (a *App) Recent(ctx context.Context) error {
	recent := a.library.Recent(ctx)
	if len(recent) == 0 {
		a.println("No recent recipes.")
		return nil
	}
	a.printRecipes(ctx, recent)
	return nil
}

func (a *App) ClearRecent(ctx context.Context) error {
	if err := a.library.ClearRecent(ctx); err != nil {
		return err
	}
	a.println("Recent recipes cleared.")
	return nil
}
