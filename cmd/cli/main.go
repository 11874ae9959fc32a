package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/recipebox/internal/buildinfo"
	"github.com/dmitrijs2005/recipebox/internal/client/cli"
	"github.com/dmitrijs2005/recipebox/internal/client/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	app, err := cli.NewApp(ctx, cfg)
	if err != nil {
		stop()
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
