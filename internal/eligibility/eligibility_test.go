package eligibility

import (
	"testing"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"

	"github.com/moviedrafter/core/internal/model"
)

type EligibilityUnitSuite struct {
	suite.Suite
}

func allCategories() []string {
	all := make([]string, 0, 18)
	all = append(all, model.GenreCategories...)
	all = append(all, model.DecadeCategories...)
	all = append(all, model.CategoryAcademyAward, model.CategoryBlockbuster)
	return all
}

func (s *EligibilityUnitSuite) TestDecadeCategory(t provider.T) {
	t.Run("Should bucket every year 1930-2029 into exactly one contiguous decade", func(t provider.T) {
		expected := map[int]string{
			1930: "30's", 1945: "40's", 1959: "50's", 1960: "60's",
			1979: "70's", 1980: "80's", 1999: "90's", 2000: "2000's",
			2015: "2010's", 2029: "2020's",
		}
		for year, label := range expected {
			assert.Equal(t, label, DecadeCategory(year), "year %d", year)
		}

		// Contiguity: each year maps to the same label as its decade start.
		for year := 1930; year <= 2029; year++ {
			label := DecadeCategory(year)
			assert.NotEmpty(t, label, "year %d", year)
			assert.Equal(t, DecadeCategory(year-year%10), label, "year %d", year)
		}
	})

	t.Run("Should return no decade outside 1930-2029", func(t provider.T) {
		for _, year := range []int{0, 1899, 1929, 2030, 2077} {
			assert.Empty(t, DecadeCategory(year), "year %d", year)
		}
	})
}

func (s *EligibilityUnitSuite) TestHasGenreToken(t provider.T) {
	testCases := []struct {
		name    string
		genre   string
		keyword string
		match   bool
	}{
		{"Should match exact single token", "comedy", "comedy", true},
		{"Should match token inside multi-word genre", "action comedy", "action", true},
		{"Should match second token", "action comedy", "comedy", true},
		{"Should not match substring of another token", "animation", "action", false},
		{"Should not match across token boundary", "dr ama", "drama", false},
		{"Should match hyphenated sci-fi token", "sci-fi thriller", "sci-fi", true},
		{"Should be case-insensitive on the genre side", "Action Adventure", "adventure", true},
		{"Should not match empty genre", "", "drama", false},
		{"Should ignore surrounding whitespace", "  drama  ", "drama", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			assert.Equal(t, tc.match, HasGenreToken(tc.genre, tc.keyword))
		})
	}
}

func (s *EligibilityUnitSuite) TestEligibleCategories(t provider.T) {
	testCases := []struct {
		name     string
		movie    *model.Movie
		active   []string
		expected []string
	}{
		{
			name:     "Should combine genre and decade categories",
			movie:    &model.Movie{Genre: "Action Adventure", Year: 2015},
			active:   []string{"Action/Adventure", "2010's", "Comedy"},
			expected: []string{"Action/Adventure", "2010's"},
		},
		{
			name:     "Should not let animation leak into action via substring",
			movie:    &model.Movie{Genre: "Animation", Year: 1995, OscarStatus: model.OscarWinner},
			active:   []string{"Animated", "Academy Award Nominee or Winner", "Action/Adventure"},
			expected: []string{"Animated", "Academy Award Nominee or Winner"},
		},
		{
			name:     "Should trust the blockbuster flag without recomputing thresholds",
			movie:    &model.Movie{Revenue: 60_000_000, IsBlockbuster: true},
			active:   []string{model.CategoryBlockbuster},
			expected: []string{model.CategoryBlockbuster},
		},
		{
			name:     "Should not add blockbuster on revenue alone",
			movie:    &model.Movie{Revenue: 900_000_000, IsBlockbuster: false},
			active:   []string{model.CategoryBlockbuster},
			expected: nil,
		},
		{
			name:     "Should accept oscar via stale boolean flag",
			movie:    &model.Movie{HasOscar: true, OscarStatus: model.OscarNone},
			active:   []string{model.CategoryAcademyAward},
			expected: []string{model.CategoryAcademyAward},
		},
		{
			name:     "Should accept oscar via status when flag is stale",
			movie:    &model.Movie{HasOscar: false, OscarStatus: model.OscarNominee},
			active:   []string{model.CategoryAcademyAward},
			expected: []string{model.CategoryAcademyAward},
		},
		{
			name:     "Should match several genre categories at once",
			movie:    &model.Movie{Genre: "drama thriller comedy", Year: 1987},
			active:   allCategories(),
			expected: []string{"Drama/Romance", "Horror/Thriller", "Comedy", "80's"},
		},
		{
			name:     "Should yield nothing for a movie without genre or year",
			movie:    &model.Movie{Title: "Unknown"},
			active:   allCategories(),
			expected: nil,
		},
		{
			name:     "Should never return a category absent from the active list",
			movie:    &model.Movie{Genre: "horror", Year: 1955, IsBlockbuster: true, HasOscar: true},
			active:   []string{"Comedy"},
			expected: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			got := EligibleCategories(tc.movie, tc.active, model.ThemeYear, nil)
			assert.ElementsMatch(t, tc.expected, got)

			activeSet := make(map[string]struct{})
			for _, c := range tc.active {
				activeSet[c] = struct{}{}
			}
			for _, c := range got {
				_, ok := activeSet[c]
				assert.True(t, ok, "category %q not in active list", c)
			}
		})
	}

	t.Run("Should return nothing for a nil movie", func(t provider.T) {
		assert.Empty(t, EligibleCategories(nil, allCategories(), model.ThemeYear, nil))
	})

	t.Run("Should be idempotent for identical arguments", func(t provider.T) {
		m := &model.Movie{Genre: "action drama", Year: 1994, HasOscar: true}
		first := EligibleCategories(m, allCategories(), model.ThemeYear, nil)
		second := EligibleCategories(m, allCategories(), model.ThemeYear, nil)
		assert.ElementsMatch(t, first, second)
	})
}

func (s *EligibilityUnitSuite) TestSpecCategoryPass(t provider.T) {
	specs := model.BuildSpecCategoryMap([]model.SpecCategoryRow{
		{CategoryName: "Best Picture Winners", MovieTMDBIDs: []int{500, 501}},
		{CategoryName: "Cult Classics", MovieTMDBIDs: []int{700}},
	})
	active := []string{"Best Picture Winners", "Cult Classics", "Comedy"}

	t.Run("Should add spec category when the movie id is curated", func(t provider.T) {
		m := &model.Movie{ID: 500}
		got := EligibleCategories(m, active, model.ThemePeople, specs)
		assert.ElementsMatch(t, []string{"Best Picture Winners"}, got)
	})

	t.Run("Should prefer the explicit provider id over the general id", func(t provider.T) {
		m := &model.Movie{ID: 999, TMDBID: 700}
		got := EligibleCategories(m, active, model.ThemePeople, specs)
		assert.ElementsMatch(t, []string{"Cult Classics"}, got)
	})

	t.Run("Should skip the spec pass on non-person themes", func(t provider.T) {
		m := &model.Movie{ID: 500}
		got := EligibleCategories(m, active, model.ThemeYear, specs)
		assert.Empty(t, got)
	})

	t.Run("Should skip spec categories missing from the active list", func(t provider.T) {
		m := &model.Movie{ID: 700}
		got := EligibleCategories(m, []string{"Comedy"}, model.ThemePeople, specs)
		assert.Empty(t, got)
	})
}

func (s *EligibilityUnitSuite) TestMatchesCategory(t provider.T) {
	testCases := []struct {
		name     string
		movie    *model.Movie
		category string
		match    bool
	}{
		{"Should match decade by year range", &model.Movie{Year: 1985}, "80's", true},
		{"Should not match neighboring decade", &model.Movie{Year: 1990}, "80's", false},
		{"Should match genre token", &model.Movie{Genre: "comedy horror"}, "Horror/Thriller", true},
		{"Should not match genre substring", &model.Movie{Genre: "animation"}, "Action/Adventure", false},
		{"Should match oscar via either signal", &model.Movie{OscarStatus: model.OscarWinner}, model.CategoryAcademyAward, true},
		{"Should match blockbuster via revenue fallback", &model.Movie{Revenue: 55_000_000}, model.CategoryBlockbuster, true},
		{"Should not match unknown category", &model.Movie{Genre: "comedy"}, "Best Picture Winners", false},
		{"Should not match nil movie", nil, "Comedy", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			assert.Equal(t, tc.match, MatchesCategory(tc.movie, tc.category))
		})
	}
}

func TestEligibilityUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(EligibilityUnitSuite))
}
