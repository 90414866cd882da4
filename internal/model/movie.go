package model

import "strings"

// OscarStatus is the provider's award enumeration. The empty string means
// the provider did not report a status at all.
type OscarStatus string

const (
	OscarUnknown OscarStatus = ""
	OscarNone    OscarStatus = "none"
	OscarNominee OscarStatus = "nominee"
	OscarWinner  OscarStatus = "winner"
)

// Movie is the provider-facing movie record. Zero values are the documented
// defaults: Year 0 means unknown release year, VoteCount 0 means no votes,
// Budget/Revenue 0 mean unreported amounts.
//
// Genre preserves the external contract exactly: one or more
// lowercase-comparable genre words joined by spaces, not a structured list.
// Use GenreTokens to parse it once at the boundary.
type Movie struct {
	ID     int
	TMDBID int
	Title  string
	Year   int
	Genre  string

	VoteAverage float64
	VoteCount   int

	// OscarStatus and HasOscar come from different enrichment passes and can
	// disagree when one of them is stale. Eligibility ORs them; scoring
	// prefers OscarStatus (see EffectiveOscarStatus).
	OscarStatus OscarStatus
	HasOscar    bool

	// IsBlockbuster is precomputed upstream from budget/revenue thresholds.
	// The $50M floor is not recomputed here.
	IsBlockbuster bool
	Budget        int64
	Revenue       int64

	PosterPath string
	Overview   string
}

// ProviderID prefers the explicit TMDB id and falls back to the general id.
func (m *Movie) ProviderID() int {
	if m.TMDBID != 0 {
		return m.TMDBID
	}
	return m.ID
}

// GenreTokens lower-cases, trims and splits the genre string on whitespace
// into a set of whole-word tokens. A missing genre yields an empty set.
func (m *Movie) GenreTokens() map[string]struct{} {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(m.Genre)))
	tokens := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		tokens[f] = struct{}{}
	}
	return tokens
}

// EffectiveOscarStatus resolves the two award signals into one value for
// scoring. A reported status wins; a bare HasOscar flag counts as a
// nomination since the flag does not distinguish wins.
func (m *Movie) EffectiveOscarStatus() OscarStatus {
	switch m.OscarStatus {
	case OscarWinner, OscarNominee, OscarNone:
		return m.OscarStatus
	}
	if m.HasOscar {
		return OscarNominee
	}
	return OscarNone
}
