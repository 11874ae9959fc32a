package cli

import (
	"context"
)

// Theme toggles between light and dark.
func (a *App) Theme(ctx context.Context) error {
	th, err := a.prefs.ToggleTheme(ctx)
	if err != nil {
		return err
	}
	a.printf("Theme: %s\n", th)
	return nil
}

// Photo shows the photo status without an argument, removes it with "-",
// and otherwise loads the image file at arg.
func (a *App) Photo(ctx context.Context, arg string) error {
	switch arg {
	case "":
		if p, ok := a.prefs.Photo(ctx); ok {
			a.printf("Profile photo set (%d bytes).\n", len(p))
		} else {
			a.println("No profile photo.")
		}
		return nil
	case "-":
		if err := a.prefs.RemovePhoto(ctx); err != nil {
			return err
		}
		a.println("Profile photo removed.")
		return nil
	default:
		if err := a.prefs.PhotoFromFile(ctx, arg); err != nil {
			return err
		}
		a.println("Profile photo updated.")
		return nil
	}
}

// Tip prints the current cooking tip, advancing first when next is set.
func (a *App) Tip(_ context.Context, next bool) error {
	tip := a.tips.Current()
	if next {
		tip = a.tips.Next()
	}
	a.println("Tip: " + tip)
	return nil
}

func (a *App) Stats(ctx context.Context) error {
	checked := 0
	list := a.library.ShoppingList(ctx)
	for _, it := range list {
		if it.Checked {
			checked++
		}
	}

	a.printf("Searches:      %d\n", a.prefs.SearchCount(ctx))
	a.printf("Favorites:     %d\n", len(a.library.Favorites(ctx)))
	a.printf("Recent:        %d\n", len(a.library.Recent(ctx)))
	a.printf("Shopping list: %d (%d checked)\n", len(list), checked)
	return nil
}
