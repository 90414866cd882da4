package infra_provider

import (
	"github.com/moviedrafter/core/internal/model"
)

type listRequest struct {
	Category         string `json:"category"`
	SearchQuery      string `json:"searchQuery,omitempty"`
	MovieSearchQuery string `json:"movieSearchQuery,omitempty"`
	Page             int    `json:"page,omitempty"`
	PageLimit        int    `json:"pageLimit,omitempty"`
	FetchAll         bool   `json:"fetchAll,omitempty"`
}

type listResponse struct {
	Results []MovieDTO `json:"results"`
	Movies  []MovieDTO `json:"movies"`
}

type MovieDTO struct {
	ID            int     `json:"id"`
	TMDBID        int     `json:"tmdb_id"`
	Title         string  `json:"title"`
	Year          int     `json:"year"`
	Genre         string  `json:"genre"`
	VoteAverage   float64 `json:"vote_average"`
	VoteCount     int     `json:"vote_count"`
	OscarStatus   string  `json:"oscar_status"`
	HasOscar      bool    `json:"has_oscar"`
	IsBlockbuster bool    `json:"is_blockbuster"`
	Budget        int64   `json:"budget"`
	Revenue       int64   `json:"revenue"`
	PosterPath    string  `json:"poster_path"`
	Overview      string  `json:"overview"`
}

func (m *MovieDTO) ToDomain() model.Movie {
	return model.Movie{
		ID:            m.ID,
		TMDBID:        m.TMDBID,
		Title:         m.Title,
		Year:          m.Year,
		Genre:         m.Genre,
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
