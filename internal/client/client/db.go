package client

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/introapp/freshintro/internal/client/migrations"
	"github.com/introapp/freshintro/internal/client/repositories/drafts"
	"github.com/introapp/freshintro/internal/client/repositories/images"
	"github.com/introapp/freshintro/internal/common"
	"github.com/introapp/freshintro/internal/filex"
	"github.com/pressly/goose/v3"
)

// Repositories bundles the local persistence layers of the editor: the
// staged-image store and the draft cache share one SQLite database.
type Repositories struct {
	Images images.Repository
	Drafts drafts.Repository
	DB     *sql.DB
}

// RunMigrations applies the embedded goose migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens (creating if necessary) the local editor database at dsn,
// migrates it, and returns the repository bundle. Callers treat a failure
// here as local-storage-unavailable and fall back to in-memory repositories.
func InitDatabase(ctx context.Context, dsn string) (*Repositories, error) {
	// file DSNs get their parent directory created up front; URI DSNs
	// (in-memory test databases) are left alone
	if !strings.Contains(dsn, "?") {
		if _, err := filex.EnsureDir(filepath.Dir(dsn)); err != nil {
			return nil, fmt.Errorf("%w: %v", common.ErrStorageUnavailable, err)
		}
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrStorageUnavailable, err)
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: %v", common.ErrStorageUnavailable, err)
	}

	return &Repositories{
		Images: images.NewSQLiteRepository(db),
		Drafts: drafts.NewSQLiteRepository(db),
		DB:     db,
	}, nil
}
