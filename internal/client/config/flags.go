package config

import (
	"flag"
	"os"
	"time"

	"github.com/introapp/freshintro/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-o string   backend origin (default from Config)
//	-f string   local database file path (default from Config)
//	-s int      draft save delay in milliseconds (default from Config)
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-o", "-f", "-s"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.BackendOrigin, "o", cfg.BackendOrigin, "backend origin, e.g. http://localhost:8000")
	fs.StringVar(&cfg.DatabasePath, "f", cfg.DatabasePath, "local database file path")
	saveDelayMs := fs.Int("s", int(cfg.SaveDelay.Milliseconds()), "draft save delay (in milliseconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.SaveDelay = time.Duration(*saveDelayMs) * time.Millisecond
}
