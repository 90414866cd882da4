package infra_postgres_speccategory

import (
	"github.com/lib/pq"

	"github.com/moviedrafter/core/internal/model"
)

type SpecCategoryDB struct {
	ActorName    string        `db:"actor_name"`
	CategoryName string        `db:"category_name"`
	MovieTMDBIDs pq.Int64Array `db:"movie_tmdb_ids"`
	Description  string        `db:"description"`
}

func (s *SpecCategoryDB) ToDomain() model.SpecCategoryRow {
	ids := make([]int, len(s.MovieTMDBIDs))
	for i, id := range s.MovieTMDBIDs {
		ids[i] = int(id)
	}
	return model.SpecCategoryRow{
		CategoryName: s.CategoryName,
		MovieTMDBIDs: ids,
		Description:  s.Description,
	}
}
