package drafts

import (
	"context"

	"github.com/introapp/freshintro/internal/client/models"
)

// Repository persists the profile draft and the wizard step between runs.
// Load methods report absence via the ok return instead of an error;
// corrupted stored data counts as absent.
type Repository interface {
	// SaveDraft stores the draft, replacing any previous one.
	SaveDraft(ctx context.Context, draft *models.ProfileDraft) error

	// LoadDraft returns the stored draft, or ok=false when none is stored
	// or the stored text cannot be parsed.
	LoadDraft(ctx context.Context) (*models.ProfileDraft, bool, error)

	// SaveStep stores the current wizard step.
	SaveStep(ctx context.Context, step int) error

	// LoadStep returns the stored step, or ok=false when absent/unparsable.
	LoadStep(ctx context.Context) (int, bool, error)

	// Clear removes both the draft and the step.
	Clear(ctx context.Context) error
}
