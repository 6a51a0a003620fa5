package images

import (
	"context"

	"github.com/introapp/freshintro/internal/client/models"
)

// Repository describes ordered storage for staged images. Callers are
// expected to serialize mutations; concurrent writers get last-write-wins
// semantics, not point-in-time consistency.
type Repository interface {
	// Put appends images after the current contents.
	Put(ctx context.Context, imgs []models.StagedImage) error

	// ReplaceAll clears the store and inserts imgs in the given order. Used
	// to re-synchronize after a reorder and to prime the store on hydration.
	ReplaceAll(ctx context.Context, imgs []models.StagedImage) error

	// GetAll returns current contents in insertion order.
	GetAll(ctx context.Context) ([]models.StagedImage, error)

	// RemoveAt deletes the image at the given zero-based position. Out-of-range
	// indexes are a no-op.
	RemoveAt(ctx context.Context, index int) error

	// RemoveByPreview deletes the first image whose preview matches. Previews
	// are content-derived, so a match identifies the image.
	RemoveByPreview(ctx context.Context, preview string) error

	// Clear empties the store.
	Clear(ctx context.Context) error
}
