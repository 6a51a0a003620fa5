package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/introapp/freshintro/internal/devstub"
	"github.com/introapp/freshintro/internal/logging"
)

func main() {
	cfg := devstub.LoadConfig()
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	srv := devstub.NewServer(cfg, logger)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("%v", err)
	}
}
