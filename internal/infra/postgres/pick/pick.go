package infra_postgres_pick

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/moviedrafter/core/internal/model"
)

var ErrDuplicatePick = errors.New("movie already picked in draft")

// Repository is the append-only pick ledger. The (draft_id, movie_id) unique
// constraint is the authority on duplicates; usecase-level validation only
// narrows the window.
type Repository struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Save(ctx context.Context, pick model.Pick) error {
	pickDB := FromDomain(pick)

	query := `
		INSERT INTO draft_picks (draft_id, participant, category, movie_id, movie_title)
		VALUES (:draft_id, :participant, :category, :movie_id, :movie_title)
		ON CONFLICT (draft_id, movie_id) DO NOTHING
	`

	result, err := r.db.NamedExecContext(ctx, query, pickDB)
	if err != nil {
		return fmt.Errorf("failed to save pick: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrDuplicatePick
	}

	return nil
}

func (r *Repository) ListByDraft(ctx context.Context, draftID uuid.UUID) ([]model.Pick, error) {
	query := `
		SELECT draft_id, participant, category, movie_id, movie_title
		FROM draft_picks
		WHERE draft_id = $1
		ORDER BY picked_at
	`

	var picksDB []PickDB
	err := r.db.SelectContext(ctx, &picksDB, query, draftID)
	if err != nil {
		return nil, fmt.Errorf("failed to query picks: %w", err)
	}

	picks := make([]model.Pick, len(picksDB))
	for i, pickDB := range picksDB {
		picks[i] = pickDB.ToDomain()
	}

	return picks, nil
}

func (r *Repository) PickedIDs(ctx context.Context, draftID uuid.UUID) ([]int, error) {
	query := `
		SELECT movie_id
		FROM draft_picks
		WHERE draft_id = $1
		ORDER BY picked_at
	`

	var ids []int
	err := r.db.SelectContext(ctx, &ids, query, draftID)
	if err != nil {
		return nil, fmt.Errorf("failed to query picked ids: %w", err)
	}

	return ids, nil
}
