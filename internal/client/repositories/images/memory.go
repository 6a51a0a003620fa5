package images

import (
	"context"
	"sync"

	"github.com/introapp/freshintro/internal/client/models"
)

// MemoryRepository is an in-memory Repository. The draft service falls back
// to it when the local database cannot be opened (quota, locked file,
// read-only volume); staged images then do not survive a restart.
type MemoryRepository struct {
	mu   sync.Mutex
	imgs []models.StagedImage
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Put(ctx context.Context, imgs []models.StagedImage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.imgs = append(r.imgs, imgs...)
	return nil
}

func (r *MemoryRepository) ReplaceAll(ctx context.Context, imgs []models.StagedImage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.imgs = append([]models.StagedImage(nil), imgs...)
	return nil
}

func (r *MemoryRepository) GetAll(ctx context.Context) ([]models.StagedImage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.StagedImage(nil), r.imgs...), nil
}

func (r *MemoryRepository) RemoveAt(ctx context.Context, index int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if index < 0 || index >= len(r.imgs) {
		return nil
	}
	r.imgs = append(r.imgs[:index], r.imgs[index+1:]...)
	return nil
}

func (r *MemoryRepository) RemoveByPreview(ctx context.Context, preview string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, img := range r.imgs {
		if img.Preview == preview {
			r.imgs = append(r.imgs[:i], r.imgs[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *MemoryRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.imgs = nil
	return nil
}
