package models

import (
	"encoding/json"
	"fmt"
)

// IngredientSlots is the fixed number of ingredient/measure pairs a catalog
// record carries.
const IngredientSlots = 20

// Recipe is a read-only catalog record. On the wire ingredient slots are
// flattened into strIngredient1..20 / strMeasure1..20; in Go they are arrays
// indexed from zero.
type Recipe struct {
	ID           string `json:"idMeal"`
	Name         string `json:"strMeal"`
	Thumbnail    string `json:"strMealThumb"`
	Category     string `json:"strCategory"`
	Area         string `json:"strArea"`
	Tags         string `json:"strTags"`
	Instructions string `json:"strInstructions"`
	YoutubeURL   string `json:"strYoutube"`
	Source       string `json:"strSource"`

	Ingredients [IngredientSlots]string `json:"-"`
	Measures    [IngredientSlots]string `json:"-"`
}

// recipeFields mirrors Recipe without its methods to avoid recursion.
type recipeFields Recipe

func ingredientKey(i int) string { return fmt.Sprintf("strIngredient%d", i+1) }
func measureKey(i int) string    { return fmt.Sprintf("strMeasure%d", i+1) }

// slotValue decodes a slot that may be missing, null or a string.
func slotValue(v json.RawMessage) string {
	var s *string
	if len(v) == 0 || json.Unmarshal(v, &s) != nil || s == nil {
		return ""
	}
	return *s
}

func (r *Recipe) UnmarshalJSON(b []byte) error {
	var base recipeFields
	if err := json.Unmarshal(b, &base); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	for i := 0; i < IngredientSlots; i++ {
		base.Ingredients[i] = slotValue(raw[ingredientKey(i)])
		base.Measures[i] = slotValue(raw[measureKey(i)])
	}

	*r = Recipe(base)
	return nil
}

func (r Recipe) MarshalJSON() ([]byte, error) {
	b, err := json.Marshal(recipeFields(r))
	if err != nil {
		return nil, err
	}

	out := make(map[string]any, 9+2*IngredientSlots)
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	for i := 0; i < IngredientSlots; i++ {
		out[ingredientKey(i)] = r.Ingredients[i]
		out[measureKey(i)] = r.Measures[i]
	}
	return json.Marshal(out)
}

// Ingredient is one non-empty ingredient slot of a recipe.
type Ingredient struct {
	Ingredient string `json:"ingredient"`
	Measure    string `json:"measure"`
}

// ShoppingItem is a shopping list line.
type ShoppingItem struct {
	Ingredient string `json:"ingredient"`
	Measure    string `json:"measure"`
	Checked    bool   `json:"checked"`
}
