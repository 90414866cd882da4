package infra_postgres_curated

import (
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/moviedrafter/core/internal/model"
	"github.com/moviedrafter/core/internal/service/genre_lexicon"
)

type CuratedMovieDB struct {
	DraftID       uuid.UUID     `db:"draft_id"`
	TMDBID        int           `db:"tmdb_id"`
	Title         string        `db:"title"`
	Year          int           `db:"year"`
	GenreIDs      pq.Int64Array `db:"genre_ids"`
	VoteAverage   float64       `db:"vote_average"`
	VoteCount     int           `db:"vote_count"`
	OscarStatus   string        `db:"oscar_status"`
	HasOscar      bool          `db:"has_oscar"`
	IsBlockbuster bool          `db:"is_blockbuster"`
	Budget        int64         `db:"budget"`
	Revenue       int64         `db:"revenue"`
	PosterPath    string        `db:"poster_path"`
	Overview      string        `db:"overview"`
}

func (m *CuratedMovieDB) ToDomain() model.Movie {
	ids := make([]int, len(m.GenreIDs))
	for i, id := range m.GenreIDs {
		ids[i] = int(id)
	}
	return model.Movie{
		ID:            m.TMDBID,
		TMDBID:        m.TMDBID,
		Title:         m.Title,
		Year:          m.Year,
		Genre:         genre_lexicon.JoinGenres(ids),
		VoteAverage:   m.VoteAverage,
		VoteCount:     m.VoteCount,
		OscarStatus:   model.OscarStatus(m.OscarStatus),
		HasOscar:      m.HasOscar,
		IsBlockbuster: m.IsBlockbuster,
		Budget:        m.Budget,
		Revenue:       m.Revenue,
		PosterPath:    m.PosterPath,
		Overview:      m.Overview,
	}
}

func FromDomain(draftID uuid.UUID, m *model.Movie) CuratedMovieDB {
	genreIDs := make(pq.Int64Array, 0, 4)
	for _, token := range strings.Fields(m.Genre) {
		for _, id := range genre_lexicon.IDsByName(token) {
			genreIDs = append(genreIDs, int64(id))
		}
	}
	return CuratedMovieDB{
		DraftID:       draftID,
		TMDBID:        m.ProviderID(),
		Title:         m.Title,
		Year:          m.Year,
		GenreIDs:      genreIDs,
		VoteAverage:   m.VoteAverage,
		VoteCount:     m.VoteCount,
		OscarStatus:   string(m.OscarStatus),
		HasOscar:      m.HasOscar,
		IsBlockbuster: m.IsBlockbuster,
		Budget:        m.Budget,
		Revenue:       m.Revenue,
		PosterPath:    m.PosterPath,
		Overview:      m.Overview,
	}
}
