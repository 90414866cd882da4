package model

import "strings"

// Theme is the organizing principle of a draft.
type Theme string

const (
	ThemePeople    Theme = "people"
	ThemeYear      Theme = "year"
	ThemeAll       Theme = "all"
	ThemeSpecDraft Theme = "spec-draft"
)

// NormalizeTheme folds the legacy 'person' spelling into ThemePeople.
func NormalizeTheme(s string) Theme {
	switch s {
	case "people", "person":
		return ThemePeople
	case "year":
		return ThemeYear
	case "spec-draft":
		return ThemeSpecDraft
	default:
		return ThemeAll
	}
}

func (t Theme) IsPersonBased() bool {
	return t == ThemePeople
}

// ProviderCategory maps the theme to the category parameter the movie
// listing provider expects.
func (t Theme) ProviderCategory() string {
	switch t {
	case ThemePeople:
		return "person"
	case ThemeYear:
		return "year"
	default:
		return "all"
	}
}

// CleanPersonOption strips the legacy "Name|tmdb_id" encoding some stored
// drafts carry in their person option.
func CleanPersonOption(option string) string {
	if i := strings.IndexByte(option, '|'); i >= 0 {
		return option[:i]
	}
	return option
}

// Scoring category vocabulary. Names are wire-level identifiers shared with
// stored drafts; do not rename.
const (
	CategoryActionAdventure = "Action/Adventure"
	CategoryAnimated        = "Animated"
	CategoryComedy          = "Comedy"
	CategoryDramaRomance    = "Drama/Romance"
	CategorySciFiFantasy    = "Sci-Fi/Fantasy"
	CategoryHorrorThriller  = "Horror/Thriller"

	CategoryDecade30s   = "30's"
	CategoryDecade40s   = "40's"
	CategoryDecade50s   = "50's"
	CategoryDecade60s   = "60's"
	CategoryDecade70s   = "70's"
	CategoryDecade80s   = "80's"
	CategoryDecade90s   = "90's"
	CategoryDecade2000s = "2000's"
	CategoryDecade2010s = "2010's"
	CategoryDecade2020s = "2020's"

	// Always-eligible categories. Whether a movie qualifies depends only on
	// its own award/box-office flags, never on the draft theme.
	CategoryAcademyAward = "Academy Award Nominee or Winner"
	CategoryBlockbuster  = "Blockbuster (minimum of $50 Mil)"
)

// GenreCategories lists the six genre-keyed categories.
var GenreCategories = []string{
	CategoryActionAdventure,
	CategoryAnimated,
	CategoryComedy,
	CategoryDramaRomance,
	CategorySciFiFantasy,
	CategoryHorrorThriller,
}

// DecadeCategories lists the ten decade buckets in chronological order.
var DecadeCategories = []string{
	CategoryDecade30s,
	CategoryDecade40s,
	CategoryDecade50s,
	CategoryDecade60s,
	CategoryDecade70s,
	CategoryDecade80s,
	CategoryDecade90s,
	CategoryDecade2000s,
	CategoryDecade2010s,
	CategoryDecade2020s,
}
