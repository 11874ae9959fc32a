package services

import (
	"context"
	"fmt"
	"net/url"

	"github.com/dmitrijs2005/recipebox/internal/client/catalog"
	"github.com/dmitrijs2005/recipebox/internal/client/models"
	"github.com/dmitrijs2005/recipebox/internal/common"
	"github.com/dmitrijs2005/recipebox/internal/logging"
)

// DetailTagLimit caps the tags shown on a recipe page.
const DetailTagLimit = 6

// ShareBaseURL is the public recipe page a shared link points at.
const ShareBaseURL = "https://www.themealdb.com/meal/"

// SharedRecipe is what a user passes on: a link and a one-line message.
type SharedRecipe struct {
	URL  string
	Text string
}

type RecipeDetail struct {
	Recipe      models.Recipe
	Ingredients []models.Ingredient
	Tags        []string
	IsFavorite  bool
}

// DetailService loads a single recipe for a signed-in user.
type DetailService struct {
	catalog Catalog
	library *Library
	session *Session
	log     logging.Logger
}

func NewDetailService(c Catalog, library *Library, session *Session, log logging.Logger) *DetailService {
	return &DetailService{catalog: c, library: library, session: session, log: log}
}

// Load fetches recipe id. It fails with common.ErrUnauthorized without a
// session and with common.ErrNotFound when the catalog has no such recipe.
func (d *DetailService) Load(ctx context.Context, id string) (*RecipeDetail, error) {
	if d.session.Current(ctx) == nil {
		return nil, common.ErrUnauthorized
	}

	meals, err := d.catalog.GetRecipeByID(ctx, id)
	if err != nil {
		d.log.Error(ctx, "recipe lookup failed", "id", id, "error", err)
		return nil, err
	}
	if len(meals) == 0 {
		return nil, fmt.Errorf("recipe %q: %w", id, common.ErrNotFound)
	}

	r := meals[0]
	return &RecipeDetail{
		Recipe:      r,
		Ingredients: catalog.ExtractIngredients(r),
		Tags:        catalog.Tags(r, DetailTagLimit),
		IsFavorite:  d.library.IsFavorite(ctx, r.ID),
	}, nil
}

// AddToShoppingList puts the recipe's ingredients on the shopping list and
// returns how many were new.
func (d *DetailService) AddToShoppingList(ctx context.Context, rd *RecipeDetail) (int, error) {
	return d.library.AddIngredientsToShoppingList(ctx, rd.Ingredients)
}

// Share builds the link and message for recipe id. It has the same failure
// modes as Load.
func (d *DetailService) Share(ctx context.Context, id string) (SharedRecipe, error) {
	rd, err := d.Load(ctx, id)
	if err != nil {
		return SharedRecipe{}, err
	}
	return SharedRecipe{
		URL:  ShareBaseURL + url.PathEscape(rd.Recipe.ID),
		Text: "Check out this delicious recipe: " + rd.Recipe.Name,
	}, nil
}
