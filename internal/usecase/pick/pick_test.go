package usecase_pick

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/moviedrafter/core/internal/model"
	curated_mocks "github.com/moviedrafter/core/internal/usecase/pick/mocks/pick/curated"
	provider_mocks "github.com/moviedrafter/core/internal/usecase/pick/mocks/pick/provider"
	spec_mocks "github.com/moviedrafter/core/internal/usecase/pick/mocks/pick/speccategory"
)

type SelectorUnitSuite struct {
	suite.Suite
}

type resources struct {
	selector *Selector
	provider *provider_mocks.MovieProvider
	curated  *curated_mocks.CuratedRepository
	specs    *spec_mocks.SpecCategoryRepository
	ctx      context.Context
}

func initResources(t provider.T) *resources {
	movieProvider := provider_mocks.NewMovieProvider(t)
	curatedRepo := curated_mocks.NewCuratedRepository(t)
	specRepo := spec_mocks.NewSpecCategoryRepository(t)

	selector := New(movieProvider, curatedRepo, specRepo,
		WithRand(rand.New(rand.NewSource(1))),
	)

	return &resources{
		selector: selector,
		provider: movieProvider,
		curated:  curatedRepo,
		specs:    specRepo,
		ctx:      context.Background(),
	}
}

type MovieBuilder struct {
	m model.Movie
}

func NewMovieBuilder(id int) *MovieBuilder {
	return &MovieBuilder{
		m: model.Movie{
			ID:          id,
			TMDBID:      id,
			Title:       "Test Movie",
			Year:        2001,
			Genre:       "drama",
			VoteAverage: 7.0,
			VoteCount:   500,
		},
	}
}

func (b *MovieBuilder) WithGenre(genre string) *MovieBuilder {
	b.m.Genre = genre
	return b
}

func (b *MovieBuilder) WithYear(year int) *MovieBuilder {
	b.m.Year = year
	return b
}

func (b *MovieBuilder) WithRating(avg float64, count int) *MovieBuilder {
	b.m.VoteAverage = avg
	b.m.VoteCount = count
	return b
}

func (b *MovieBuilder) WithOscar(status model.OscarStatus) *MovieBuilder {
	b.m.OscarStatus = status
	return b
}

func (b *MovieBuilder) Build() *model.Movie {
	m := b.m
	return &m
}

func yearOptions(picked []int, active []string) Options {
	return Options{
		Theme:            model.ThemeYear,
		Option:           "2001",
		CurrentCategory:  "Drama/Romance",
		AlreadyPickedIDs: picked,
		ActiveCategories: active,
	}
}

func (s *SelectorUnitSuite) TestSelect(t provider.T) {
	t.Run("Should never return an already picked movie", func(t provider.T) {
		r := initResources(t)
		pool := []*model.Movie{
			NewMovieBuilder(1).Build(),
			NewMovieBuilder(2).Build(),
			NewMovieBuilder(3).Build(),
		}
		r.provider.On("ListMovies", r.ctx, mock.Anything).Return(pool, nil).Once()

		got := r.selector.Select(r.ctx, yearOptions([]int{1, 3}, []string{"Drama/Romance"}))

		assert.NotNil(t, got)
		assert.Equal(t, 2, got.ProviderID())
	})

	t.Run("Should return nil when every movie is already picked", func(t provider.T) {
		r := initResources(t)
		pool := []*model.Movie{
			NewMovieBuilder(1).Build(),
			NewMovieBuilder(2).Build(),
		}
		r.provider.On("ListMovies", r.ctx, mock.Anything).Return(pool, nil).Once()

		got := r.selector.Select(r.ctx, yearOptions([]int{1, 2}, []string{"Drama/Romance"}))

		assert.Nil(t, got)
	})

	t.Run("Should return nil when the provider fails", func(t provider.T) {
		r := initResources(t)
		r.provider.On("ListMovies", r.ctx, mock.Anything).
			Return(nil, errors.New("upstream down")).Once()

		got := r.selector.Select(r.ctx, yearOptions(nil, []string{"Drama/Romance"}))

		assert.Nil(t, got)
	})

	t.Run("Should keep only movies eligible for the current category", func(t provider.T) {
		r := initResources(t)
		pool := []*model.Movie{
			NewMovieBuilder(1).WithGenre("comedy").Build(),
			NewMovieBuilder(2).WithGenre("drama").WithRating(5.0, 200).Build(),
			NewMovieBuilder(3).WithGenre("horror").Build(),
		}
		r.provider.On("ListMovies", r.ctx, mock.Anything).Return(pool, nil).Once()

		opts := yearOptions(nil, []string{"Drama/Romance", "Comedy", "Horror/Thriller"})
		got := r.selector.Select(r.ctx, opts)

		assert.NotNil(t, got)
		assert.Equal(t, 2, got.ProviderID())
	})

	t.Run("Should fall back to the unfiltered pool when no movie fits the category", func(t provider.T) {
		r := initResources(t)
		pool := make([]*model.Movie, 0, 5)
		ids := map[int]struct{}{}
		for i := 1; i <= 5; i++ {
			pool = append(pool, NewMovieBuilder(i).WithGenre("western").Build())
			ids[i] = struct{}{}
		}
		r.provider.On("ListMovies", r.ctx, mock.Anything).Return(pool, nil).Once()

		got := r.selector.Select(r.ctx, yearOptions(nil, []string{"Drama/Romance"}))

		assert.NotNil(t, got)
		_, ok := ids[got.ProviderID()]
		assert.True(t, ok)
	})

	t.Run("Should still pick when the active category list is missing", func(t provider.T) {
		r := initResources(t)
		pool := []*model.Movie{
			NewMovieBuilder(1).WithGenre("drama").Build(),
			NewMovieBuilder(2).WithGenre("comedy").Build(),
		}
		r.provider.On("ListMovies", r.ctx, mock.Anything).Return(pool, nil).Once()

		got := r.selector.Select(r.ctx, yearOptions(nil, nil))

		assert.NotNil(t, got)
		assert.Equal(t, 1, got.ProviderID())
	})
}

func (s *SelectorUnitSuite) TestQualityRanking(t provider.T) {
	t.Run("Should take a clear winner outright", func(t provider.T) {
		r := initResources(t)
		pool := []*model.Movie{
			NewMovieBuilder(1).WithRating(5.0, 200).Build(),
			NewMovieBuilder(2).WithRating(9.0, 6000).WithOscar(model.OscarWinner).Build(),
			NewMovieBuilder(3).WithRating(5.5, 200).Build(),
		}
		r.provider.On("ListMovies", r.ctx, mock.Anything).Return(pool, nil).Once()

		got := r.selector.Select(r.ctx, yearOptions(nil, []string{"Drama/Romance"}))

		assert.NotNil(t, got)
		assert.Equal(t, 2, got.ProviderID())
	})

	t.Run("Should pick among close candidates only", func(t provider.T) {
		r := initResources(t)
		// Scores: 70, 69, 30. Movies 1 and 2 are within the 5-point margin,
		// movie 3 is far behind and must never be selected.
		pool := []*model.Movie{
			NewMovieBuilder(1).WithRating(7.0, 200).Build(),
			NewMovieBuilder(2).WithRating(6.9, 200).Build(),
			NewMovieBuilder(3).WithRating(3.0, 200).Build(),
		}
		r.provider.On("ListMovies", r.ctx, mock.Anything).Return(pool, nil)

		for i := 0; i < 10; i++ {
			got := r.selector.Select(r.ctx, yearOptions(nil, []string{"Drama/Romance"}))
			assert.NotNil(t, got)
			assert.Contains(t, []int{1, 2}, got.ProviderID())
		}
	})

	t.Run("Should break exact ties toward the 1990-2020 sweet spot", func(t provider.T) {
		r := initResources(t)
		// All four score identically, so the year tie-break decides who makes
		// the top three; the out-of-range 1960 movie must be cut before the
		// randomized close-candidate pick.
		pool := []*model.Movie{
			NewMovieBuilder(4).WithYear(1960).WithRating(0, 0).Build(),
			NewMovieBuilder(1).WithYear(2015).WithRating(0, 0).Build(),
			NewMovieBuilder(2).WithYear(2012).WithRating(0, 0).Build(),
			NewMovieBuilder(3).WithYear(2018).WithRating(0, 0).Build(),
		}
		r.provider.On("ListMovies", r.ctx, mock.Anything).Return(pool, nil)

		for i := 0; i < 10; i++ {
			got := r.selector.Select(r.ctx, Options{
				Theme:  model.ThemeYear,
				Option: "any",
			})
			assert.NotNil(t, got)
			assert.NotEqual(t, 4, got.ProviderID())
		}
	})
}

func (s *SelectorUnitSuite) TestQualityScore(t provider.T) {
	testCases := []struct {
		name     string
		movie    *model.Movie
		expected float64
	}{
		{
			name:     "Should weight trusted ratings at full strength",
			movie:    &model.Movie{VoteAverage: 8.0, VoteCount: 100},
			expected: 80,
		},
		{
			name:     "Should add volume bonuses at 1000 and 5000 votes",
			movie:    &model.Movie{VoteAverage: 8.0, VoteCount: 5000},
			expected: 90,
		},
		{
			name:     "Should halve the weight of untrusted ratings",
			movie:    &model.Movie{VoteAverage: 8.0, VoteCount: 99},
			expected: 40,
		},
		{
			name:     "Should add oscar, blockbuster, money and era bonuses",
			movie:    &model.Movie{OscarStatus: model.OscarWinner, IsBlockbuster: true, Budget: 50_000_000, Revenue: 100_000_000, Year: 2000},
			expected: 32,
		},
		{
			name:     "Should count a bare oscar flag as a nomination",
			movie:    &model.Movie{HasOscar: true},
			expected: 10,
		},
		{
			name:     "Should prefer the reported status over the flag",
			movie:    &model.Movie{HasOscar: true, OscarStatus: model.OscarNone},
			expected: 0,
		},
		{
			name:     "Should score an empty movie as zero",
			movie:    &model.Movie{},
			expected: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			assert.InDelta(t, tc.expected, QualityScore(tc.movie), 1e-9)
		})
	}
}

func (s *SelectorUnitSuite) TestSpecDraftPool(t provider.T) {
	draftID := uuid.New()

	t.Run("Should use the category-filtered curated pool when it exists", func(t provider.T) {
		r := initResources(t)
		pool := []*model.Movie{NewMovieBuilder(10).Build()}
		r.curated.On("LoadByDraftAndCategory", r.ctx, draftID, "Heist Movies").
			Return(pool, nil).Once()

		got := r.selector.Select(r.ctx, Options{
			Theme:           model.ThemeSpecDraft,
			Option:          draftID.String(),
			CurrentCategory: "Heist Movies",
		})

		assert.NotNil(t, got)
		assert.Equal(t, 10, got.ProviderID())
	})

	t.Run("Should fall back to the whole curated list without custom categories", func(t provider.T) {
		r := initResources(t)
		r.curated.On("LoadByDraftAndCategory", r.ctx, draftID, "Heist Movies").
			Return(nil, nil).Once()
		r.curated.On("LoadByDraft", r.ctx, draftID).
			Return([]*model.Movie{NewMovieBuilder(11).Build()}, nil).Once()

		got := r.selector.Select(r.ctx, Options{
			Theme:           model.ThemeSpecDraft,
			Option:          draftID.String(),
			CurrentCategory: "Heist Movies",
		})

		assert.NotNil(t, got)
		assert.Equal(t, 11, got.ProviderID())
	})

	t.Run("Should return nil for an invalid draft id", func(t provider.T) {
		r := initResources(t)

		got := r.selector.Select(r.ctx, Options{
			Theme:  model.ThemeSpecDraft,
			Option: "not-a-uuid",
		})

		assert.Nil(t, got)
	})
}

func (s *SelectorUnitSuite) TestPersonSpecCategories(t provider.T) {
	t.Run("Should honor spec categories on person drafts", func(t provider.T) {
		r := initResources(t)
		pool := []*model.Movie{
			NewMovieBuilder(1).WithGenre("western").Build(),
			NewMovieBuilder(2).WithGenre("western").Build(),
		}
		specs := model.BuildSpecCategoryMap([]model.SpecCategoryRow{
			{CategoryName: "Best Picture Winners", MovieTMDBIDs: []int{2}},
		})
		r.provider.On("ListMovies", r.ctx, mock.Anything).Return(pool, nil).Once()
		r.specs.On("LoadByActor", r.ctx, "Clark Gable").Return(specs, nil).Once()

		got := r.selector.Select(r.ctx, Options{
			Theme:            model.ThemePeople,
			Option:           "Clark Gable|1234",
			CurrentCategory:  "Best Picture Winners",
			ActiveCategories: []string{"Best Picture Winners", "Comedy"},
		})

		assert.NotNil(t, got)
		assert.Equal(t, 2, got.ProviderID())
	})

	t.Run("Should return nil when the spec category lookup fails", func(t provider.T) {
		r := initResources(t)
		pool := []*model.Movie{NewMovieBuilder(1).Build()}
		r.provider.On("ListMovies", r.ctx, mock.Anything).Return(pool, nil).Once()
		r.specs.On("LoadByActor", r.ctx, "Clark Gable").
			Return(nil, errors.New("store down")).Once()

		got := r.selector.Select(r.ctx, Options{
			Theme:            model.ThemePeople,
			Option:           "Clark Gable",
			CurrentCategory:  "Best Picture Winners",
			ActiveCategories: []string{"Best Picture Winners"},
		})

		assert.Nil(t, got)
	})
}

func TestSelectorUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(SelectorUnitSuite))
}
