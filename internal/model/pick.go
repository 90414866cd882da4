package model

import "github.com/google/uuid"

// Pick is one drafted movie in a draft. The already-picked set of a draft is
// the set of ProviderID values of its picks; it only ever grows while the
// draft runs.
type Pick struct {
	DraftID     uuid.UUID
	Participant string
	Category    string
	MovieID     int
	MovieTitle  string
}

// MovieQuery is the request shape of the movie listing provider.
type MovieQuery struct {
	Theme            Theme
	SearchQuery      string
	MovieSearchQuery string
	Page             int
	PageLimit        int
	FetchAll         bool
}
