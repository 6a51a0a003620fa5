package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/introapp/freshintro/internal/buildinfo"
	"github.com/introapp/freshintro/internal/client/cli"
	"github.com/introapp/freshintro/internal/client/config"
	"github.com/introapp/freshintro/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}
}
