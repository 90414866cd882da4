package infra_postgres_speccategory

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/moviedrafter/core/internal/model"
)

type Repository struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// LoadByActor returns the curated spec categories for an actor. The lookup
// tries an exact match first and falls back to a case-insensitive exact
// match. Both tiers compare the full name: a partial name never resolves,
// since it could hit several different actors and merge their lists. An
// unknown actor yields a nil map, not an error.
func (r *Repository) LoadByActor(ctx context.Context, actorName string) (model.SpecCategoryMap, error) {
	query := `
		SELECT actor_name, category_name, movie_tmdb_ids, description
		FROM actor_spec_categories
		WHERE actor_name = $1
	`

	var rowsDB []SpecCategoryDB
	err := r.db.SelectContext(ctx, &rowsDB, query, actorName)
	if err != nil {
		return nil, fmt.Errorf("failed to query spec categories: %w", err)
	}

	if len(rowsDB) == 0 {
		fallback := `
			SELECT actor_name, category_name, movie_tmdb_ids, description
			FROM actor_spec_categories
			WHERE actor_name ILIKE $1
		`
		err = r.db.SelectContext(ctx, &rowsDB, fallback, actorName)
		if err != nil {
			return nil, fmt.Errorf("failed to query spec categories: %w", err)
		}
	}

	rows := make([]model.SpecCategoryRow, len(rowsDB))
	for i, rowDB := range rowsDB {
		rows[i] = rowDB.ToDomain()
	}

	return model.BuildSpecCategoryMap(rows), nil
}
