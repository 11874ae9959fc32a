package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/recipebox/internal/client/catalog"
	"github.com/dmitrijs2005/recipebox/internal/client/config"
	"github.com/dmitrijs2005/recipebox/internal/client/repositories/kv"
	"github.com/dmitrijs2005/recipebox/internal/client/services"
	"github.com/dmitrijs2005/recipebox/internal/logging"
)

type App struct {
	config *config.Config
	log    logging.Logger
	store  kv.Store

	authService services.AuthService
	library     *services.Library
	prefs       *services.Preferences
	search      *services.SearchOrchestrator
	detail      *services.DetailService
	tips        *services.Tips

	reader *bufio.Reader
	out    io.Writer
}

// NewApp opens the configured store and builds the services on top of it.
// Logs go to stderr so they do not mix with REPL output.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	log := logging.New(os.Stderr, c.LogLevel, c.LogFormat)

	store, err := kv.Open(ctx, kv.Options{
		Backend:       c.Store,
		DataDir:       c.DataDir,
		RedisAddr:     c.RedisAddr,
		RedisPassword: c.RedisPassword,
		RedisDB:       c.RedisDB,
	})
	if err != nil {
		log.Error(ctx, "error opening store", "store", c.Store, "error", err)
		return nil, err
	}

	cat := catalog.NewClient(catalog.Config{BaseURL: c.CatalogBaseURL, Timeout: c.RequestTimeout}, nil, log)
	return newApp(c, log, store, cat, bufio.NewReader(os.Stdin), os.Stdout), nil
}

func newApp(c *config.Config, log logging.Logger, store kv.Store, cat services.Catalog, in *bufio.Reader, out io.Writer) *App {
	session := services.NewSession(store, log)
	library := services.NewLibrary(store, log)
	prefs := services.NewPreferences(store, log)

	return &App{
		config:      c,
		log:         log,
		store:       store,
		authService: services.NewAuthService(store, session, c.PasswordPolicy, log),
		library:     library,
		prefs:       prefs,
		search:      services.NewSearchOrchestrator(cat, library, prefs, log),
		detail:      services.NewDetailService(cat, library, session, log),
		tips:        services.NewTips(),
		reader:      in,
		out:         out,
	}
}

// Run blocks in the REPL and closes the store on return.
func (a *App) Run(ctx context.Context) {
	defer func() {
		if err := a.store.Close(); err != nil {
			a.log.Warn(ctx, "error closing store", "error", err)
		}
	}()

	a.println("Welcome to recipebox (type 'help' for commands)")
	if u := a.authService.CurrentUser(ctx); u != nil {
		a.printf("Welcome back, %s!\n", u.Name)
	}
	runREPL(ctx, a, func() string { return a.getStatus(ctx) }, a.reader, a.out)
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	return a.authService.IsLoggedIn(ctx)
}

func (a *App) getStatus(ctx context.Context) string {
	u := a.authService.CurrentUser(ctx)
	if u == nil {
		return ""
	}
	return fmt.Sprintf("(%s %s)", u.Email, a.prefs.Theme(ctx))
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
