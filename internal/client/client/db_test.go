package client

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/introapp/freshintro/internal/client/models"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite" // pure-Go SQLite driver
)

func TestInitDatabase_MigratesAndWires(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "editor.db")

	repos, err := InitDatabase(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = repos.DB.Close() })

	// both repositories must be usable against the migrated schema
	require.NoError(t, repos.Images.Put(ctx, []models.StagedImage{
		models.NewStagedImage("a.jpg", "image/jpeg", []byte("x")),
	}))
	got, err := repos.Images.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)

	require.NoError(t, repos.Drafts.SaveStep(ctx, 2))
	step, ok, err := repos.Drafts.LoadStep(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 2, step)
}

func TestInitDatabase_Reopen(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "editor.db")

	repos, err := InitDatabase(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, repos.Drafts.SaveDraft(ctx, &models.ProfileDraft{Bio: "persisted"}))
	require.NoError(t, repos.DB.Close())

	// migrations must be idempotent and data must survive
	repos, err = InitDatabase(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = repos.DB.Close() })

	draft, ok, err := repos.Drafts.LoadDraft(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "persisted", draft.Bio)
}
