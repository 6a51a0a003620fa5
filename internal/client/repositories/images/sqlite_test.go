package images

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/introapp/freshintro/internal/client/models"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE IF NOT EXISTS staged_images (
  seq INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  content_type TEXT NOT NULL,
  data BLOB NOT NULL,
  preview TEXT NOT NULL
);
`)
	require.NoError(t, err)
	return db
}

func img(name string) models.StagedImage {
	return models.NewStagedImage(name, "image/jpeg", []byte("bytes-of-"+name))
}

func names(imgs []models.StagedImage) []string {
	out := make([]string, 0, len(imgs))
	for _, i := range imgs {
		out = append(out, i.Name)
	}
	return out
}

func TestSQLiteRepository_PutPreservesOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteRepository(setupDB(t))

	require.NoError(t, repo.Put(ctx, []models.StagedImage{img("a.jpg"), img("b.jpg")}))
	require.NoError(t, repo.Put(ctx, []models.StagedImage{img("c.jpg")}))

	got, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"a.jpg", "b.jpg", "c.jpg"}, names(got))
	require.Equal(t, []byte("bytes-of-a.jpg"), got[0].Data)
}

func TestSQLiteRepository_ReplaceAll(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteRepository(setupDB(t))

	require.NoError(t, repo.Put(ctx, []models.StagedImage{img("a.jpg"), img("b.jpg")}))
	require.NoError(t, repo.ReplaceAll(ctx, []models.StagedImage{img("b.jpg"), img("a.jpg")}))

	got, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"b.jpg", "a.jpg"}, names(got))
}

func TestSQLiteRepository_RemoveAt(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteRepository(setupDB(t))

	require.NoError(t, repo.Put(ctx, []models.StagedImage{img("a.jpg"), img("b.jpg"), img("c.jpg")}))
	require.NoError(t, repo.RemoveAt(ctx, 1))

	got, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"a.jpg", "c.jpg"}, names(got))

	// out of range leaves contents untouched
	require.NoError(t, repo.RemoveAt(ctx, 5))
	require.NoError(t, repo.RemoveAt(ctx, -1))
	got, err = repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
}

func TestSQLiteRepository_RemoveByPreview(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteRepository(setupDB(t))

	a, b := img("a.jpg"), img("b.jpg")
	require.NoError(t, repo.Put(ctx, []models.StagedImage{a, b}))
	require.NoError(t, repo.RemoveByPreview(ctx, a.Preview))

	got, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"b.jpg"}, names(got))

	// unknown preview is a no-op
	require.NoError(t, repo.RemoveByPreview(ctx, "data:image/jpeg;base64,unknown"))
	got, err = repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestSQLiteRepository_Clear(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteRepository(setupDB(t))

	require.NoError(t, repo.Put(ctx, []models.StagedImage{img("a.jpg")}))
	require.NoError(t, repo.Clear(ctx))

	got, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestMemoryRepository_MatchesSQLiteBehavior(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	require.NoError(t, repo.Put(ctx, []models.StagedImage{img("a.jpg"), img("b.jpg"), img("c.jpg")}))
	require.NoError(t, repo.RemoveAt(ctx, 0))
	require.NoError(t, repo.RemoveByPreview(ctx, img("c.jpg").Preview))

	got, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"b.jpg"}, names(got))

	require.NoError(t, repo.ReplaceAll(ctx, []models.StagedImage{img("z.jpg")}))
	got, err = repo.GetAll(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"z.jpg"}, names(got))

	require.NoError(t, repo.Clear(ctx))
	got, err = repo.GetAll(ctx)
	require.NoError(t, err)
	require.Empty(t, got)
}
