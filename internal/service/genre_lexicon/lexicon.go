package genre_lexicon

import "strings"

// TMDB genre id to canonical English name.
var names = map[int]string{
	28:    "Action",
	12:    "Adventure",
	16:    "Animation",
	35:    "Comedy",
	80:    "Crime",
	99:    "Documentary",
	18:    "Drama",
	10751: "Family",
	14:    "Fantasy",
	36:    "History",
	27:    "Horror",
	10402: "Music",
	9648:  "Mystery",
	10749: "Romance",
	// 878 stays hyphenated as a single word so the genre string keeps
	// "sci-fi" as one whole token.
	878:   "Sci-Fi",
	10770: "TV Movie",
	53:    "Thriller",
	10752: "War",
	37:    "Western",
}

const unknownGenre = "Unknown"

// Name returns the canonical genre name for a provider genre id.
func Name(id int) string {
	if n, ok := names[id]; ok {
		return n
	}
	return unknownGenre
}

// IDsByName returns every genre id whose name matches, case-insensitively.
func IDsByName(name string) []int {
	var ids []int
	for id, n := range names {
		if strings.EqualFold(n, name) {
			ids = append(ids, id)
		}
	}
	return ids
}

// JoinGenres renders a genre id list as the space-joined genre string the
// Movie record carries. Unknown ids are skipped rather than rendered, so a
// curated movie with no recognizable genres ends up with an empty string.
func JoinGenres(ids []int) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		if n, ok := names[id]; ok {
			parts = append(parts, n)
		}
	}
	return strings.Join(parts, " ")
}
