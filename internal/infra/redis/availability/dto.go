package infra_availability_cache

import (
	"github.com/moviedrafter/core/internal/model"
)

type AvailabilityResultDB struct {
	CategoryID   string   `json:"category_id"`
	Available    bool     `json:"available"`
	MovieCount   int      `json:"movie_count"`
	SampleMovies []string `json:"sample_movies,omitempty"`
	Status       string   `json:"status"`
	Reason       string   `json:"reason,omitempty"`
	IsEstimate   bool     `json:"is_estimate,omitempty"`
}

func (r *AvailabilityResultDB) ToDomain() model.AvailabilityResult {
	return model.AvailabilityResult{
		CategoryID:   r.CategoryID,
		Available:    r.Available,
		MovieCount:   r.MovieCount,
		SampleMovies: r.SampleMovies,
		Status:       model.AvailabilityStatus(r.Status),
		Reason:       r.Reason,
		IsEstimate:   r.IsEstimate,
	}
}

func FromDomain(result *model.AvailabilityResult) AvailabilityResultDB {
	return AvailabilityResultDB{
		CategoryID:   result.CategoryID,
		Available:    result.Available,
		MovieCount:   result.MovieCount,
		SampleMovies: result.SampleMovies,
		Status:       string(result.Status),
		Reason:       result.Reason,
		IsEstimate:   result.IsEstimate,
	}
}
