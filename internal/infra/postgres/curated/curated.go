package infra_postgres_curated

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/moviedrafter/core/internal/model"
)

// Repository stores the hand-curated movie pools of spec drafts. A movie
// belongs to a draft once; its category assignments live in a separate join
// table because one movie may satisfy several custom categories.
type Repository struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Store(ctx context.Context, draftID uuid.UUID, m *model.Movie, categories []string) error {
	movieDB := FromDomain(draftID, m)

	query := `
		INSERT INTO spec_draft_movies (
			draft_id, tmdb_id, title, year, genre_ids, vote_average, vote_count,
			oscar_status, has_oscar, is_blockbuster, budget, revenue, poster_path, overview
		)
		VALUES (
			:draft_id, :tmdb_id, :title, :year, :genre_ids, :vote_average, :vote_count,
			:oscar_status, :has_oscar, :is_blockbuster, :budget, :revenue, :poster_path, :overview
		)
		ON CONFLICT (draft_id, tmdb_id) DO UPDATE SET
			title = EXCLUDED.title,
			year = EXCLUDED.year,
			genre_ids = EXCLUDED.genre_ids,
			vote_average = EXCLUDED.vote_average,
			vote_count = EXCLUDED.vote_count,
			oscar_status = EXCLUDED.oscar_status,
			has_oscar = EXCLUDED.has_oscar,
			is_blockbuster = EXCLUDED.is_blockbuster,
			budget = EXCLUDED.budget,
			revenue = EXCLUDED.revenue,
			poster_path = EXCLUDED.poster_path,
			overview = EXCLUDED.overview
	`

	_, err := r.db.NamedExecContext(ctx, query, movieDB)
	if err != nil {
		return fmt.Errorf("failed to store curated movie: %w", err)
	}

	for _, category := range categories {
		_, err = r.db.ExecContext(ctx, `
			INSERT INTO spec_draft_movie_categories (draft_id, tmdb_id, category_name)
			VALUES ($1, $2, $3)
			ON CONFLICT DO NOTHING
		`, draftID, movieDB.TMDBID, category)
		if err != nil {
			return fmt.Errorf("failed to store curated category: %w", err)
		}
	}

	return nil
}

func (r *Repository) LoadByDraft(ctx context.Context, draftID uuid.UUID) ([]*model.Movie, error) {
	query := `
		SELECT draft_id, tmdb_id, title, year, genre_ids, vote_average, vote_count,
			oscar_status, has_oscar, is_blockbuster, budget, revenue, poster_path, overview
		FROM spec_draft_movies
		WHERE draft_id = $1
		ORDER BY title
	`

	var moviesDB []CuratedMovieDB
	err := r.db.SelectContext(ctx, &moviesDB, query, draftID)
	if err != nil {
		return nil, fmt.Errorf("failed to query curated movies: %w", err)
	}

	return toDomainList(moviesDB), nil
}

func (r *Repository) LoadByDraftAndCategory(ctx context.Context, draftID uuid.UUID, category string) ([]*model.Movie, error) {
	query := `
		SELECT m.draft_id, m.tmdb_id, m.title, m.year, m.genre_ids, m.vote_average,
			m.vote_count, m.oscar_status, m.has_oscar, m.is_blockbuster, m.budget,
			m.revenue, m.poster_path, m.overview
		FROM spec_draft_movies m
		JOIN spec_draft_movie_categories c
			ON c.draft_id = m.draft_id AND c.tmdb_id = m.tmdb_id
		WHERE m.draft_id = $1 AND c.category_name = $2
		ORDER BY m.title
	`

	var moviesDB []CuratedMovieDB
	err := r.db.SelectContext(ctx, &moviesDB, query, draftID, category)
	if err != nil {
		return nil, fmt.Errorf("failed to query curated movies by category: %w", err)
	}

	return toDomainList(moviesDB), nil
}

func toDomainList(moviesDB []CuratedMovieDB) []*model.Movie {
	movies := make([]*model.Movie, len(moviesDB))
	for i, movieDB := range moviesDB {
		domainMovie := movieDB.ToDomain()
		movies[i] = &domainMovie
	}
	return movies
}
