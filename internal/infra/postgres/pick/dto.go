package infra_postgres_pick

import (
	"github.com/google/uuid"

	"github.com/moviedrafter/core/internal/model"
)

type PickDB struct {
	DraftID     uuid.UUID `db:"draft_id"`
	Participant string    `db:"participant"`
	Category    string    `db:"category"`
	MovieID     int       `db:"movie_id"`
	MovieTitle  string    `db:"movie_title"`
}

func (p *PickDB) ToDomain() model.Pick {
	return model.Pick{
		DraftID:     p.DraftID,
		Participant: p.Participant,
		Category:    p.Category,
		MovieID:     p.MovieID,
		MovieTitle:  p.MovieTitle,
	}
}

func FromDomain(pick model.Pick) PickDB {
	return PickDB{
		DraftID:     pick.DraftID,
		Participant: pick.Participant,
		Category:    pick.Category,
		MovieID:     pick.MovieID,
		MovieTitle:  pick.MovieTitle,
	}
}
