package model

// AvailabilityStatus classifies how well a category can be filled for a
// given player count.
type AvailabilityStatus string

const (
	StatusSufficient   AvailabilityStatus = "sufficient"
	StatusLimited      AvailabilityStatus = "limited"
	StatusInsufficient AvailabilityStatus = "insufficient"
)

// AnalysisRequest describes a prospective draft whose categories should be
// checked for viability before the organizer commits to them.
type AnalysisRequest struct {
	Theme       Theme
	Option      string
	Mode        string
	Categories  []string
	PlayerCount int
}

// AvailabilityResult is the verdict for one category.
type AvailabilityResult struct {
	CategoryID   string
	Available    bool
	MovieCount   int
	SampleMovies []string
	Status       AvailabilityStatus
	Reason       string

	// IsEstimate marks a placeholder built from the static estimate table,
	// rendered while the authoritative measurement is still loading.
	IsEstimate bool
}
