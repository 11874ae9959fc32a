// Package records is the serialization contract for everything recipebox
// keeps in the key-value store: one key constant and one Encode/Decode pair
// per stored entity.
//
// Structured values are written as a versioned JSON envelope
//
//	{"v":1,"data":<value>}
//
// and decoders also accept the bare JSON written by earlier releases. Scalar
// preferences (theme, search counter, photo) are stored as plain text.
package records

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/recipebox/internal/client/models"
)

// Store keys.
const (
	KeyUsers        = "recipe_app_users"
	KeyCurrentUser  = "current_user"
	KeyFavorites    = "recipe_favorites"
	KeyRecent       = "recipe_recent"
	KeySearchCount  = "recipe_search_count"
	KeyTheme        = "theme"
	KeyUserPhoto    = "user_photo"
	KeyShoppingList = "recipe_shopping_list"
)

// SchemaVersion is written into every envelope.
const SchemaVersion = 1

var ErrUnsupportedVersion = errors.New("unsupported record version")

type envelope struct {
	V    int             `json:"v"`
	Data json.RawMessage `json:"data"`
}

func encode[T any](v T) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	b, err := json.Marshal(envelope{V: SchemaVersion, Data: data})
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decode[T any](raw string) (T, error) {
	var out T

	trimmed := bytes.TrimSpace([]byte(raw))
	if len(trimmed) == 0 {
		return out, errors.New("empty record")
	}

	if trimmed[0] == '{' {
		var env envelope
		if err := json.Unmarshal(trimmed, &env); err == nil && env.V > 0 && env.Data != nil {
			if env.V > SchemaVersion {
				return out, fmt.Errorf("%w: %d", ErrUnsupportedVersion, env.V)
			}
			if err := json.Unmarshal(env.Data, &out); err != nil {
				return out, err
			}
			return out, nil
		}
	}

	// legacy bare JSON
	if err := json.Unmarshal(trimmed, &out); err != nil {
		return out, err
	}
	return out, nil
}

func EncodeUsers(users []models.StoredUser) (string, error) { return encode(users) }

func DecodeUsers(raw string) ([]models.StoredUser, error) {
	return decode[[]models.StoredUser](raw)
}

func EncodeSession(u models.User) (string, error) { return encode(u) }

// DecodeSession rejects records without an id or email; such a session is
// treated as absent.
func DecodeSession(raw string) (models.User, error) {
	u, err := decode[models.User](raw)
	if err != nil {
		return models.User{}, err
	}
	if u.ID == "" || u.Email == "" {
		return models.User{}, errors.New("incomplete session record")
	}
	return u, nil
}

func EncodeFavorites(ids []string) (string, error) { return encode(ids) }

func DecodeFavorites(raw string) ([]string, error) { return decode[[]string](raw) }

func EncodeRecent(recipes []models.Recipe) (string, error) { return encode(recipes) }

func DecodeRecent(raw string) ([]models.Recipe, error) { return decode[[]models.Recipe](raw) }

func EncodeShoppingList(items []models.ShoppingItem) (string, error) { return encode(items) }

func DecodeShoppingList(raw string) ([]models.ShoppingItem, error) {
	return decode[[]models.ShoppingItem](raw)
}

func EncodeSearchCount(n int) string { return strconv.Itoa(n) }

func DecodeSearchCount(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("negative search count %d", n)
	}
	return n, nil
}

func EncodeTheme(t models.Theme) string { return string(t) }

func DecodeTheme(raw string) (models.Theme, error) {
	switch models.Theme(strings.TrimSpace(raw)) {
	case models.ThemeDark:
		return models.ThemeDark, nil
	case models.ThemeLight:
		return models.ThemeLight, nil
	default:
		return models.ThemeLight, fmt.Errorf("unknown theme %q", raw)
	}
}
