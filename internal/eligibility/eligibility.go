// Package eligibility decides which scoring categories a movie may legally
// be drafted into. Everything here is pure: no I/O, safe for concurrent use.
package eligibility

import (
	"github.com/moviedrafter/core/internal/model"
)

// genreCategoryTokens maps each genre-keyed category to the whole-word
// tokens that qualify a movie for it. Matching is exact-token only:
// "animation" must never satisfy a category keyed on "action".
var genreCategoryTokens = map[string][]string{
	model.CategoryActionAdventure: {"action", "adventure"},
	model.CategoryAnimated:        {"animation", "animated"},
	model.CategoryComedy:          {"comedy"},
	model.CategoryDramaRomance:    {"drama", "romance"},
	model.CategorySciFiFantasy:    {"sci-fi", "fantasy"},
	model.CategoryHorrorThriller:  {"horror", "thriller"},
}

// decadeLabels keys each decade category by its starting year.
var decadeLabels = map[int]string{
	1930: model.CategoryDecade30s,
	1940: model.CategoryDecade40s,
	1950: model.CategoryDecade50s,
	1960: model.CategoryDecade60s,
	1970: model.CategoryDecade70s,
	1980: model.CategoryDecade80s,
	1990: model.CategoryDecade90s,
	2000: model.CategoryDecade2000s,
	2010: model.CategoryDecade2010s,
	2020: model.CategoryDecade2020s,
}

// decadeStarts is the reverse of decadeLabels.
var decadeStarts = func() map[string]int {
	m := make(map[string]int, len(decadeLabels))
	for start, label := range decadeLabels {
		m[label] = start
	}
	return m
}()

// DecadeCategory returns the single decade bucket for a release year, or ""
// for years outside 1930-2029. Buckets are contiguous and non-overlapping.
func DecadeCategory(year int) string {
	if year < 1930 || year > 2029 {
		return ""
	}
	return decadeLabels[year-year%10]
}

// HasGenreToken reports whether keyword appears as a whole
// whitespace-delimited token of the lower-cased genre string. Substring
// containment does not count.
func HasGenreToken(genre, keyword string) bool {
	m := model.Movie{Genre: genre}
	_, ok := m.GenreTokens()[keyword]
	return ok
}

// EligibleCategories returns the subset of active categories the movie
// qualifies for. theme and specs extend the check with actor-specific spec
// categories; pass model.ThemeAll and nil when they do not apply. The result
// is always a subset of active, deduplicated, in no particular order.
func EligibleCategories(m *model.Movie, active []string, theme model.Theme, specs model.SpecCategoryMap) []string {
	if m == nil || len(active) == 0 {
		return nil
	}

	activeSet := make(map[string]struct{}, len(active))
	for _, c := range active {
		activeSet[c] = struct{}{}
	}

	var out []string
	seen := make(map[string]struct{})
	add := func(c string) {
		if _, ok := activeSet[c]; !ok {
			return
		}
		if _, dup := seen[c]; dup {
			return
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}

	// Spec categories are curated id lists, only meaningful on person drafts.
	if theme.IsPersonBased() && len(specs) > 0 {
		id := m.ProviderID()
		for name := range specs {
			if specs.Contains(name, id) {
				add(name)
			}
		}
	}

	if d := DecadeCategory(m.Year); d != "" {
		add(d)
	}

	tokens := m.GenreTokens()
	for _, category := range model.GenreCategories {
		for _, kw := range genreCategoryTokens[category] {
			if _, ok := tokens[kw]; ok {
				add(category)
				break
			}
		}
	}

	// The two award signals are OR'd, not AND'd, to tolerate one of them
	// being stale.
	if _, ok := activeSet[model.CategoryAcademyAward]; ok {
		if m.HasOscar || m.OscarStatus == model.OscarWinner || m.OscarStatus == model.OscarNominee {
			add(model.CategoryAcademyAward)
		}
	}

	if _, ok := activeSet[model.CategoryBlockbuster]; ok && m.IsBlockbuster {
		add(model.CategoryBlockbuster)
	}

	return out
}

// MatchesCategory is the simplified per-category predicate used by the
// availability analyzer: year range, genre token, Oscar and
// blockbuster-or-revenue checks, with no spec-category pass. Unknown
// category names never match.
func MatchesCategory(m *model.Movie, category string) bool {
	if m == nil {
		return false
	}

	if tokens, ok := genreCategoryTokens[category]; ok {
		have := m.GenreTokens()
		for _, kw := range tokens {
			if _, ok := have[kw]; ok {
				return true
			}
		}
		return false
	}

	if start, ok := decadeStarts[category]; ok {
		return m.Year >= start && m.Year <= start+9
	}

	switch category {
	case model.CategoryAcademyAward:
		return m.HasOscar || m.OscarStatus == model.OscarWinner || m.OscarStatus == model.OscarNominee
	case model.CategoryBlockbuster:
		return m.IsBlockbuster || m.Revenue >= 50_000_000
	default:
		return false
	}
}
