package images

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/introapp/freshintro/internal/client/models"
	"github.com/introapp/freshintro/internal/dbx"
)

// SQLiteRepository implements Repository on top of the client's local SQLite
// database. Insertion order is preserved through the autoincrement seq column.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository returns a SQLiteRepository bound to the given database.
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func insertImages(ctx context.Context, tx dbx.DBTX, imgs []models.StagedImage) error {
	query := `INSERT INTO staged_images (name, content_type, data, preview) VALUES (?, ?, ?, ?)`
	for _, img := range imgs {
		if _, err := tx.ExecContext(ctx, query, img.Name, img.ContentType, img.Data, img.Preview); err != nil {
			return fmt.Errorf("failed to insert staged image %s: %w", img.Name, err)
		}
	}
	return nil
}

// Put appends images after the current contents.
func (r *SQLiteRepository) Put(ctx context.Context, imgs []models.StagedImage) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return insertImages(ctx, tx, imgs)
	})
}

// ReplaceAll clears the table and inserts imgs in order, atomically.
func (r *SQLiteRepository) ReplaceAll(ctx context.Context, imgs []models.StagedImage) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM staged_images`); err != nil {
			return fmt.Errorf("failed to clear staged images: %w", err)
		}
		return insertImages(ctx, tx, imgs)
	})
}

// GetAll returns all staged images ordered by insertion.
func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.StagedImage, error) {
	query := `SELECT name, content_type, data, preview FROM staged_images ORDER BY seq`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select staged images: %w", err)
	}
	defer rows.Close()

	var result []models.StagedImage
	for rows.Next() {
		var img models.StagedImage
		if err := rows.Scan(&img.Name, &img.ContentType, &img.Data, &img.Preview); err != nil {
			return nil, err
		}
		result = append(result, img)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// RemoveAt deletes the image at the given zero-based position.
func (r *SQLiteRepository) RemoveAt(ctx context.Context, index int) error {
	if index < 0 {
		return nil
	}
	query := `DELETE FROM staged_images WHERE seq = (SELECT seq FROM staged_images ORDER BY seq LIMIT 1 OFFSET ?)`
	if _, err := r.db.ExecContext(ctx, query, index); err != nil {
		return fmt.Errorf("failed to remove staged image at %d: %w", index, err)
	}
	return nil
}

// RemoveByPreview deletes the first image whose preview matches.
func (r *SQLiteRepository) RemoveByPreview(ctx context.Context, preview string) error {
	query := `DELETE FROM staged_images WHERE seq = (SELECT seq FROM staged_images WHERE preview = ? ORDER BY seq LIMIT 1)`
	if _, err := r.db.ExecContext(ctx, query, preview); err != nil {
		return fmt.Errorf("failed to remove staged image by preview: %w", err)
	}
	return nil
}

// Clear empties the store.
func (r *SQLiteRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM staged_images`); err != nil {
		return fmt.Errorf("failed to clear staged images: %w", err)
	}
	return nil
}
