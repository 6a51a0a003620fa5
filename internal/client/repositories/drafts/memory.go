package drafts

import (
	"context"
	"sync"

	"github.com/introapp/freshintro/internal/client/models"
)

// MemoryRepository is the in-memory fallback used when local storage is
// unavailable. Drafts kept here do not survive a restart.
type MemoryRepository struct {
	mu    sync.Mutex
	draft *models.ProfileDraft
	step  int
	// separate flags: a stored step without a stored draft must still read
	// back as absent-draft, present-step
	hasDraft bool
	hasStep  bool
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) SaveDraft(ctx context.Context, draft *models.ProfileDraft) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copy := *draft
	r.draft = &copy
	r.hasDraft = true
	return nil
}

func (r *MemoryRepository) LoadDraft(ctx context.Context) (*models.ProfileDraft, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.hasDraft {
		return nil, false, nil
	}
	copy := *r.draft
	return &copy, true, nil
}

func (r *MemoryRepository) SaveStep(ctx context.Context, step int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.step = step
	r.hasStep = true
	return nil
}

func (r *MemoryRepository) LoadStep(ctx context.Context) (int, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.step, r.hasStep, nil
}

func (r *MemoryRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.draft = nil
	r.hasDraft = false
	r.step = 0
	r.hasStep = false
	return nil
}
