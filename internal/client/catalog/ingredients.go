package catalog

import (
	"strings"

	"github.com/dmitrijs2005/recipebox/internal/client/models"
)

// ExtractIngredients returns the non-blank ingredient slots of r in slot
// order, each paired with its trimmed measure.
func ExtractIngredients(r models.Recipe) []models.Ingredient {
	out := make([]models.Ingredient, 0, models.IngredientSlots)
	for i := 0; i < models.IngredientSlots; i++ {
		name := strings.TrimSpace(r.Ingredients[i])
		if name == "" {
			continue
		}
		out = append(out, models.Ingredient{
			Ingredient: name,
			Measure:    strings.TrimSpace(r.Measures[i]),
		})
	}
	return out
}

// Tags splits the comma-joined tag string and keeps at most limit entries.
// limit <= 0 means no limit.
func Tags(r models.Recipe, limit int) []string {
	var tags []string
	for _, t := range strings.Split(r.Tags, ",") {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		tags = append(tags, t)
		if limit > 0 && len(tags) == limit {
			break
		}
	}
	return tags
}
