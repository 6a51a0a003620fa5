package drafts

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/introapp/freshintro/internal/client/models"
	"github.com/introapp/freshintro/internal/dbx"
)

const (
	keyDraft = "draft"
	keyStep  = "step"
)

// SQLiteRepository implements Repository over the metadata key-value table
// of the client's local database.
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) set(ctx context.Context, key, value string) error {
	query := `INSERT INTO metadata (key, value) VALUES (?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value`
	if _, err := r.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to upsert %s: %w", key, err)
	}
	return nil
}

func (r *SQLiteRepository) get(ctx context.Context, key string) (string, bool, error) {
	var value string
	row := r.db.QueryRowContext(ctx, `SELECT value FROM metadata WHERE key = ?`, key)
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return value, true, nil
}

// SaveDraft stores the draft as JSON text.
func (r *SQLiteRepository) SaveDraft(ctx context.Context, draft *models.ProfileDraft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to marshal draft: %w", err)
	}
	return r.set(ctx, keyDraft, string(data))
}

// LoadDraft returns the stored draft. Unparsable text counts as absent.
func (r *SQLiteRepository) LoadDraft(ctx context.Context) (*models.ProfileDraft, bool, error) {
	value, ok, err := r.get(ctx, keyDraft)
	if err != nil || !ok {
		return nil, false, err
	}

	var draft models.ProfileDraft
	if err := json.Unmarshal([]byte(value), &draft); err != nil {
		return nil, false, nil
	}
	return &draft, true, nil
}

// SaveStep stores the wizard step.
func (r *SQLiteRepository) SaveStep(ctx context.Context, step int) error {
	return r.set(ctx, keyStep, strconv.Itoa(step))
}

// LoadStep returns the stored wizard step. Unparsable text counts as absent.
func (r *SQLiteRepository) LoadStep(ctx context.Context) (int, bool, error) {
	value, ok, err := r.get(ctx, keyStep)
	if err != nil || !ok {
		return 0, false, err
	}

	step, err := strconv.Atoi(value)
	if err != nil {
		return 0, false, nil
	}
	return step, true, nil
}

// Clear removes the draft and the step.
func (r *SQLiteRepository) Clear(ctx context.Context) error {
	query := `DELETE FROM metadata WHERE key IN (?, ?)`
	if _, err := r.db.ExecContext(ctx, query, keyDraft, keyStep); err != nil {
		return fmt.Errorf("failed to clear draft cache: %w", err)
	}
	return nil
}
