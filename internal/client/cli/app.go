package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/introapp/freshintro/internal/client/client"
	"github.com/introapp/freshintro/internal/client/config"
	"github.com/introapp/freshintro/internal/client/repositories/drafts"
	"github.com/introapp/freshintro/internal/client/repositories/images"
	"github.com/introapp/freshintro/internal/client/services"
	"github.com/introapp/freshintro/internal/logging"

	_ "modernc.org/sqlite"
)

type App struct {
	config *config.Config
	api    *client.HTTPClient
	drafts *services.DraftService
	repos  *client.Repositories
	log    logging.Logger
	reader *bufio.Reader

	// degraded means the local database could not be opened and edits only
	// live in memory for this run
	degraded bool
}

func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	app := &App{config: c, log: log, reader: bufio.NewReader(os.Stdin)}

	var imageRepo images.Repository
	var draftRepo drafts.Repository

	repos, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Warn(ctx, "local storage unavailable, edits will not survive a restart", "error", err)
		app.degraded = true
		imageRepo = images.NewMemoryRepository()
		draftRepo = drafts.NewMemoryRepository()
	} else {
		app.repos = repos
		imageRepo = repos.Images
		draftRepo = repos.Drafts
	}

	api, err := client.NewHTTPClient(c.BackendOrigin, nil, log)
	if err != nil {
		return nil, err
	}
	app.api = api

	app.drafts = services.NewDraftService(api, imageRepo, draftRepo, services.Options{
		MaxImages:      c.MaxImages,
		MaxInterests:   c.MaxInterests,
		MaxInterestLen: c.MaxInterestLen,
		RequiredFields: c.RequiredFields,
		SaveDelay:      c.SaveDelay,
		MaxUploadBytes: c.MaxUploadBytes,
		MaxImageWidth:  c.MaxImageWidth,
	}, log)

	return app, nil
}

// Run authenticates, hydrates the editing session and enters the REPL.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	if err := a.Login(ctx); err != nil {
		return err
	}

	if err := a.drafts.Bootstrap(ctx); err != nil {
		return err
	}

	a.Root(ctx)
	return nil
}

func (a *App) Close() {
	if a.repos != nil {
		_ = a.repos.DB.Close()
	}
}
