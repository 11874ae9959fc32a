package cli

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/recipebox/internal/client/catalog"
	"github.com/dmitrijs2005/recipebox/internal/client/models"
	"github.com/dmitrijs2005/recipebox/internal/client/services"
)

// listTagLimit caps the tags shown next to a recipe in lists.
const listTagLimit = 3

const noInstructions = "No instructions available."

func (a *App) printSearch(ctx context.Context, snap services.SearchSnapshot) {
	switch snap.State {
	case services.SearchSuccess:
		a.printf("%d recipes for %q:\n", len(snap.Results), snap.Query)
		a.printRecipes(ctx, snap.Results)
	case services.SearchNotFound, services.SearchFailed:
		a.println(snap.Notice)
	}
}

func (a *App) printRecipes(ctx context.Context, recipes []models.Recipe) {
	for _, r := range recipes {
		line := "  " + r.ID + "  " + r.Name
		if tags := catalog.Tags(r, listTagLimit); len(tags) > 0 {
			line += "  [" + strings.Join(tags, ", ") + "]"
		}
		if a.library.IsFavorite(ctx, r.ID) {
			line += "  *"
		}
		a.println(line)
	}
}

func (a *App) printDetail(rd *services.RecipeDetail) {
	r := rd.Recipe
	title := r.Name
	if rd.IsFavorite {
		title += "  *"
	}
	a.println(title)

	var meta []string
	for _, s := range []string{r.Category, r.Area} {
		if s != "" {
			meta = append(meta, s)
		}
	}
	if len(meta) > 0 {
		a.println(strings.Join(meta, " / "))
	}
	if len(rd.Tags) > 0 {
		a.println("Tags: " + strings.Join(rd.Tags, ", "))
	}

	a.println()
	a.println("Ingredients:")
	for _, in := range rd.Ingredients {
		if in.Measure != "" {
			a.printf("  - %s %s\n", in.Measure, in.Ingredient)
		} else {
			a.printf("  - %s\n", in.Ingredient)
		}
	}

	a.println()
	a.println("Instructions:")
	if s := strings.TrimSpace(r.Instructions); s != "" {
		a.println(s)
	} else {
		a.println(noInstructions)
	}
	if r.YoutubeURL != "" {
		a.println("Video:  " + r.YoutubeURL)
	}
	if r.Source != "" {
		a.println("Source: " + r.Source)
	}
}
