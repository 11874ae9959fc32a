package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/recipebox/internal/common"
)

// Shop adds the ingredients of recipe id to the shopping list.
func (a *App) Shop(ctx context.Context, id string) error {
	rd, err := a.detail.Load(ctx, id)
	if err != nil {
		return err
	}
	n, err := a.detail.AddToShoppingList(ctx, rd)
	if err != nil {
		return err
	}
	a.printf("Added %d ingredients from %s to your shopping list.\n", n, rd.Recipe.Name)
	return nil
}

func (a *App) ShoppingList(ctx context.Context) error {
	list := a.library.ShoppingList(ctx)
	if len(list) == 0 {
		a.println("Your shopping list is empty.")
		return nil
	}
	for _, it := range list {
		mark := " "
		if it.Checked {
			mark = "x"
		}
		line := fmt.Sprintf("  [%s] %s", mark, it.Ingredient)
		if it.Measure != "" {
			line += " (" + it.Measure + ")"
		}
		a.println(line)
	}
	return nil
}

// Check flips the checked mark of a shopping list item.
func (a *App) Check(ctx context.Context, ingredient string) error {
	for _, it := range a.library.ShoppingList(ctx) {
		if !strings.EqualFold(it.Ingredient, ingredient) {
			continue
		}
		if err := a.library.SetShoppingItemChecked(ctx, it.Ingredient, !it.Checked); err != nil {
			return err
		}
		if it.Checked {
			a.printf("Unchecked %s.\n", it.Ingredient)
		} else {
			a.printf("Checked %s.\n", it.Ingredient)
		}
		return nil
	}
	return fmt.Errorf("%q is not on your shopping list: %w", ingredient, common.ErrNotFound)
}
