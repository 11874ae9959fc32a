package cli

import (
	"bufio"
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dmitrijs2005/recipebox/internal/client/catalog"
	"github.com/dmitrijs2005/recipebox/internal/client/config"
	"github.com/dmitrijs2005/recipebox/internal/client/repositories/kv"
	"github.com/dmitrijs2005/recipebox/internal/client/services"
	"github.com/dmitrijs2005/recipebox/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const teriyakiJSON = `{"meals":[{"idMeal":"52772","strMeal":"Teriyaki Chicken Casserole",` +
	`"strCategory":"Chicken","strArea":"Japanese","strTags":"Meat,Casserole",` +
	`"strInstructions":"Preheat oven to 350.","strIngredient1":"soy sauce","strMeasure1":"3/4 cup",` +
	`"strIngredient2":"water","strMeasure2":"1/2 cup","strIngredient3":"","strMeasure3":null}]}`

const bareJSON = `{"meals":[{"idMeal":"60000","strMeal":"Plain Toast","strInstructions":"",` +
	`"strIngredient1":"bread","strMeasure1":"1 slice"}]}`

func catalogServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		q := r.URL.Query()
		switch {
		case r.URL.Path == "/search.php" && strings.EqualFold(q.Get("s"), "chicken"),
			r.URL.Path == "/lookup.php" && q.Get("i") == "52772":
			_, _ = w.Write([]byte(teriyakiJSON))
		case r.URL.Path == "/lookup.php" && q.Get("i") == "60000":
			_, _ = w.Write([]byte(bareJSON))
		case r.URL.Path == "/search.php" && q.Get("s") == "boom":
			http.Error(w, "down", http.StatusBadGateway)
		default:
			_, _ = w.Write([]byte(`{"meals":null}`))
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

// piped makes GetPassword read from the line reader.
func piped(t *testing.T) {
	t.Helper()
	orig := isTerminal
	isTerminal = func(int) bool { return false }
	t.Cleanup(func() { isTerminal = orig })
}

func newTestApp(t *testing.T, store kv.Store, input string) (*App, *bytes.Buffer) {
	t.Helper()
	piped(t)
	srv := catalogServer(t)

	cfg := &config.Config{}
	cfg.LoadDefaults()

	cat := catalog.NewClient(catalog.Config{BaseURL: srv.URL}, srv.Client(), logging.Nop())
	var out bytes.Buffer
	return newApp(cfg, logging.Nop(), store, cat, bufio.NewReader(strings.NewReader(input)), &out), &out
}

func script(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}

func TestApp_FullSession(t *testing.T) {
	store := kv.NewMemoryStore()
	app, out := newTestApp(t, store, script(
		"search chicken",
		"register", "a@b.com", "abcdef", "Ann",
		"help",
		"search chicken",
		"search nothing-like-this",
		"search boom",
		"show 52772",
		"fav 52772",
		"shop 52772",
		"shop 52772",
		"list",
		"check SOY SAUCE",
		"check saffron",
		"stats",
		"theme",
		"recent",
		"logout",
		"favs",
		"exit",
	))

	app.Run(context.Background())
	got := out.String()

	assert.Contains(t, got, "Please log in first.")
	assert.Contains(t, got, "Welcome, Ann!")
	assert.Contains(t, got, helpLoggedIn)
	assert.Contains(t, got, `1 recipes for "chicken":`)
	assert.Contains(t, got, "52772  Teriyaki Chicken Casserole  [Meat, Casserole]")
	assert.Contains(t, got, `No recipes found for "nothing-like-this"`)
	assert.Contains(t, got, services.FailedSearchNotice)
	assert.NotContains(t, got, "502")
	assert.Contains(t, got, "Chicken / Japanese")
	assert.Contains(t, got, "  - 3/4 cup soy sauce")
	assert.Contains(t, got, "Preheat oven to 350.")
	assert.Contains(t, got, "Added to favorites.")
	assert.Contains(t, got, "Added 2 ingredients from Teriyaki Chicken Casserole")
	assert.Contains(t, got, "Added 0 ingredients from Teriyaki Chicken Casserole")
	assert.Contains(t, got, "  [ ] soy sauce (3/4 cup)")
	assert.Contains(t, got, "Checked soy sauce.")
	assert.Contains(t, got, `"saffron" is not on your shopping list`)
	assert.Contains(t, got, "Searches:      3")
	assert.Contains(t, got, "Favorites:     1")
	assert.Contains(t, got, "Theme: dark")
	assert.Contains(t, got, "Logged out.")
	assert.Contains(t, got, "Bye!")

	// favs after logout is rejected, not dispatched
	tail := got[strings.Index(got, "Logged out."):]
	assert.Contains(t, tail, "Please log in first.")
}

func TestApp_LoginWithDemoPassword(t *testing.T) {
	store := kv.NewMemoryStore()

	first, _ := newTestApp(t, store, script("register", "a@b.com", "abcdef", "Ann", "logout", "exit"))
	first.Run(context.Background())

	app, out := newTestApp(t, store, script(
		"login", "a@b.com", "abcdef",
		"login", "a@b.com", services.DemoPassword,
		"exit",
	))
	app.Run(context.Background())

	got := out.String()
	assert.Contains(t, got, "Error: invalid email or password")
	assert.Contains(t, got, "Welcome back, Ann!")
}

func TestApp_RegisterValidationMessage(t *testing.T) {
	app, out := newTestApp(t, kv.NewMemoryStore(), script("register", "not-an-email", "abcdef", "Ann", "exit"))
	app.Run(context.Background())

	assert.Contains(t, out.String(), "Error: please enter a valid email address")
}

func TestApp_SessionRestoredOnStart(t *testing.T) {
	store := kv.NewMemoryStore()
	first, _ := newTestApp(t, store, script("register", "a@b.com", "abcdef", "Ann", "exit"))
	first.Run(context.Background())

	app, out := newTestApp(t, store, script("exit"))
	require.True(t, app.isLoggedIn(context.Background()))
	app.Run(context.Background())
	assert.Contains(t, out.String(), "Welcome back, Ann!")
	assert.Contains(t, out.String(), "rb (a@b.com light)> ")
}

func TestApp_GetStatus(t *testing.T) {
	app, _ := newTestApp(t, kv.NewMemoryStore(), "")
	assert.Empty(t, app.getStatus(context.Background()))
}

func TestApp_TagShareAndTips(t *testing.T) {
	app, out := newTestApp(t, kv.NewMemoryStore(), script(
		"register", "a@b.com", "abcdef", "Ann",
		"tag Chicken",
		"share 52772",
		"share 1",
		"show 60000",
		"tip",
		"tip next",
		"tip",
		"stats",
		"exit",
	))
	app.Run(context.Background())
	got := out.String()

	assert.Contains(t, got, `1 recipes for "Chicken":`)
	assert.Contains(t, got, "Check out this delicious recipe: Teriyaki Chicken Casserole\n"+
		services.ShareBaseURL+"52772\n")
	assert.Contains(t, got, `Error: recipe "1": not found`)
	assert.Contains(t, got, "Instructions:\n"+noInstructions+"\n")
	assert.Equal(t, 2, strings.Count(got, "Tip: "+services.CookingTips[1]))
	assert.Equal(t, 1, strings.Count(got, "Tip: "+services.CookingTips[0]))
	assert.Contains(t, got, "Searches:      1")
}
