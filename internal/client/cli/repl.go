package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/recipebox/internal/common"
)

// execIface is the command surface the REPL dispatches to. The real App
// satisfies it; tests provide a recording stub.
type execIface interface {
	isLoggedIn(ctx context.Context) bool

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error

	Search(ctx context.Context, query string) error
	Category(ctx context.Context, name string) error
	Show(ctx context.Context, id string) error
	Share(ctx context.Context, id string) error
	Tag(ctx context.Context, tag string) error
	Favorite(ctx context.Context, id string) error
	Favorites(ctx context.Context) error
	Recent(ctx context.Context) error
	ClearRecent(ctx context.Context) error

	Shop(ctx context.Context, id string) error
	ShoppingList(ctx context.Context) error
	Check(ctx context.Context, ingredient string) error

	Theme(ctx context.Context) error
	Photo(ctx context.Context, arg string) error
	Stats(ctx context.Context) error
	Tip(ctx context.Context, next bool) error
}

const (
	helpLoggedOut = "Available commands: register, login, exit"
	helpLoggedIn  = "Available commands: search <q>, cat <category>, tag <tag>, show <id>, share <id>, fav <id>, favs, recent, clearrecent, " +
		"shop <id>, list, check <ingredient>, theme, photo [path|-], stats, tip [next], logout, exit"
)

// runREPL reads commands from in until EOF, "exit"/"quit" or ctx is done.
//
// The first token is the command, the rest of the line is its argument.
// Commands other than help, register, login and exit require a session.
// Errors from handlers are turned into a one-line message; the loop keeps
// going.
func runREPL(ctx context.Context, a execIface, statusFn func() string, in *bufio.Reader, out io.Writer) {
	for {
		if ctx.Err() != nil {
			return
		}
		fmt.Fprintf(out, "rb%s> ", prefixSpace(statusFn()))

		line, err := in.ReadString('\n')
		if err != nil && line == "" {
			fmt.Fprintln(out)
			return
		}

		cmd, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
		arg = strings.TrimSpace(arg)
		if cmd == "" {
			continue
		}

		switch cmd {
		case "exit", "quit":
			fmt.Fprintln(out, "Bye!")
			return
		case "help":
			if a.isLoggedIn(ctx) {
				fmt.Fprintln(out, helpLoggedIn)
			} else {
				fmt.Fprintln(out, helpLoggedOut)
			}
			continue
		case "register":
			report(out, a.Register(ctx))
			continue
		case "login":
			report(out, a.Login(ctx))
			continue
		}

		if !a.isLoggedIn(ctx) {
			if isKnown(cmd) {
				fmt.Fprintln(out, "Please log in first.")
			} else {
				fmt.Fprintln(out, "Unknown command:", cmd)
			}
			continue
		}

		switch cmd {
		case "search":
			report(out, withArg(out, arg, "search <query>", func() error { return a.Search(ctx, arg) }))
		case "cat":
			report(out, withArg(out, arg, "cat <category>", func() error { return a.Category(ctx, arg) }))
		case "tag":
			report(out, withArg(out, arg, "tag <tag>", func() error { return a.Tag(ctx, arg) }))
		case "show":
			report(out, withArg(out, arg, "show <id>", func() error { return a.Show(ctx, arg) }))
		case "share":
			report(out, withArg(out, arg, "share <id>", func() error { return a.Share(ctx, arg) }))
		case "fav":
			report(out, withArg(out, arg, "fav <id>", func() error { return a.Favorite(ctx, arg) }))
		case "favs":
			report(out, a.Favorites(ctx))
		case "recent":
			report(out, a.Recent(ctx))
		case "clearrecent":
			report(out, a.ClearRecent(ctx))
		case "shop":
			report(out, withArg(out, arg, "shop <id>", func() error { return a.Shop(ctx, arg) }))
		case "list":
			report(out, a.ShoppingList(ctx))
		case "check":
			report(out, withArg(out, arg, "check <ingredient>", func() error { return a.Check(ctx, arg) }))
		case "theme":
			report(out, a.Theme(ctx))
		case "photo":
			report(out, a.Photo(ctx, arg))
		case "stats":
			report(out, a.Stats(ctx))
		case "tip":
			switch arg {
			case "":
				report(out, a.Tip(ctx, false))
			case "next":
				report(out, a.Tip(ctx, true))
			default:
				fmt.Fprintln(out, "Usage: tip [next]")
			}
		case "logout":
			report(out, a.Logout(ctx))
		default:
			fmt.Fprintln(out, "Unknown command:", cmd)
		}
	}
}

var sessionCommands = map[string]struct{}{
	"search": {}, "cat": {}, "tag": {}, "show": {}, "share": {}, "fav": {}, "favs": {}, "recent": {}, "clearrecent": {},
	"shop": {}, "list": {}, "check": {}, "theme": {}, "photo": {}, "stats": {}, "tip": {}, "logout": {},
}

func isKnown(cmd string) bool {
	_, ok := sessionCommands[cmd]
	return ok
}

func withArg(out io.Writer, arg, usage string, fn func() error) error {
	if arg == "" {
		fmt.Fprintln(out, "Usage:", usage)
		return nil
	}
	return fn()
}

func prefixSpace(s string) string {
	if s == "" {
		return ""
	}
	return " " + s
}

// report prints err the way a user should see it.
func report(out io.Writer, err error) {
	if err == nil {
		return
	}
	fmt.Fprintln(out, "Error:", userMessage(err))
}

func userMessage(err error) string {
	switch {
	case errors.Is(err, common.ErrValidation):
		return strings.TrimPrefix(err.Error(), common.ErrValidation.Error()+": ")
	case errors.Is(err, common.ErrInvalidCredentials),
		errors.Is(err, common.ErrDuplicateUser),
		errors.Is(err, common.ErrNotFound):
		return err.Error()
	case errors.Is(err, common.ErrUnauthorized):
		return "please log in first"
	case errors.Is(err, common.ErrTransport):
		return "the recipe catalog is unavailable, please try again"
	default:
		return err.Error()
	}
}
