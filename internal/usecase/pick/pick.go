package usecase_pick

import (
	"context"
	"log/slog"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/moviedrafter/core/internal/eligibility"
	"github.com/moviedrafter/core/internal/model"
)

//go:generate mockery --name=MovieProvider --output=./mocks/pick/provider --filename=provider.go
type MovieProvider interface {
	ListMovies(ctx context.Context, q model.MovieQuery) ([]*model.Movie, error)
}

//go:generate mockery --name=CuratedRepository --output=./mocks/pick/curated --filename=curated.go
type CuratedRepository interface {
	LoadByDraft(ctx context.Context, draftID uuid.UUID) ([]*model.Movie, error)
	LoadByDraftAndCategory(ctx context.Context, draftID uuid.UUID, category string) ([]*model.Movie, error)
}

//go:generate mockery --name=SpecCategoryRepository --output=./mocks/pick/speccategory --filename=speccategory.go
type SpecCategoryRepository interface {
	LoadByActor(ctx context.Context, actorName string) (model.SpecCategoryMap, error)
}

// Options describes one AI turn.
type Options struct {
	Theme            model.Theme
	Option           string
	CurrentCategory  string
	AlreadyPickedIDs []int
	ActiveCategories []string
	SearchQuery      string
}

// aiPageLimit widens the listing so the AI has enough candidates to rank.
const aiPageLimit = 50

// closeCandidateMargin bounds the randomized tie-break to near-optimal
// picks: only top candidates within this many score points of the best one
// are eligible for random selection.
const closeCandidateMargin = 5.0

type Selector struct {
	provider MovieProvider
	curated  CuratedRepository
	specs    SpecCategoryRepository

	rand   *rand.Rand
	logger *slog.Logger
}

type SelectorOption func(*Selector)

func WithLogger(logger *slog.Logger) SelectorOption {
	return func(s *Selector) {
		s.logger = logger
	}
}

// WithRand injects the random source used for the close-candidate
// tie-break, so tests can make the selection deterministic.
func WithRand(r *rand.Rand) SelectorOption {
	return func(s *Selector) {
		s.rand = r
	}
}

func New(
	provider MovieProvider,
	curated CuratedRepository,
	specs SpecCategoryRepository,
	opts ...SelectorOption,
) *Selector {
	s := &Selector{
		provider: provider,
		curated:  curated,
		specs:    specs,
		rand:     rand.New(rand.NewSource(time.Now().UnixNano())),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Select picks the best available movie for an automated participant's turn.
// It returns nil only when no unpicked movie remains, or when the pool or
// spec-category lookup failed; either way the turn needs human intervention,
// never a crashed draft.
func (s *Selector) Select(ctx context.Context, opts Options) *model.Movie {
	pool, err := s.acquirePool(ctx, opts)
	if err != nil {
		s.logger.Error("failed to acquire candidate pool",
			slog.String("error", err.Error()),
			slog.String("theme", string(opts.Theme)),
			slog.String("option", opts.Option),
		)
		return nil
	}

	available := excludePicked(pool, opts.AlreadyPickedIDs)
	if len(available) == 0 {
		s.logger.Warn("no unpicked movies left for AI turn",
			slog.String("category", opts.CurrentCategory),
		)
		return nil
	}

	candidates := available
	if category := strings.TrimSpace(opts.CurrentCategory); category != "" {
		filtered, ok := s.filterByCategory(ctx, available, category, opts)
		if !ok {
			return nil
		}
		if len(filtered) > 0 {
			candidates = filtered
		} else {
			// A turn must complete whenever any unpicked movie remains, even
			// an off-category one; otherwise the draft deadlocks.
			s.logger.Warn("no movies eligible for category, falling back to full pool",
				slog.String("category", category),
				slog.Int("pool_size", len(available)),
			)
		}
	}

	return s.pickFrom(candidates)
}

func (s *Selector) acquirePool(ctx context.Context, opts Options) ([]*model.Movie, error) {
	if opts.Theme == model.ThemeSpecDraft && opts.Option != "" {
		draftID, err := uuid.Parse(opts.Option)
		if err != nil {
			return nil, err
		}
		if category := strings.TrimSpace(opts.CurrentCategory); category != "" {
			pool, err := s.curated.LoadByDraftAndCategory(ctx, draftID, category)
			if err != nil {
				return nil, err
			}
			// An empty join means the list has no custom categories for this
			// round; the whole curated list is the pool then.
			if len(pool) > 0 {
				return pool, nil
			}
		}
		return s.curated.LoadByDraft(ctx, draftID)
	}

	option := opts.Option
	if opts.Theme.IsPersonBased() {
		option = model.CleanPersonOption(option)
	}

	q := model.MovieQuery{
		Theme:       opts.Theme,
		SearchQuery: option,
	}
	switch opts.Theme {
	case model.ThemeYear, model.ThemePeople:
		q.MovieSearchQuery = opts.SearchQuery
		q.Page = 1
		q.PageLimit = aiPageLimit
	default:
		q.FetchAll = true
	}

	return s.provider.ListMovies(ctx, q)
}

// filterByCategory keeps movies eligible for the current category. The
// second return value is false when the spec-category lookup failed and the
// turn should be abandoned.
func (s *Selector) filterByCategory(ctx context.Context, pool []*model.Movie, category string, opts Options) ([]*model.Movie, bool) {
	active := opts.ActiveCategories
	if len(active) == 0 {
		// Narrows validation to a single category; upstream callers should
		// always pass the draft's full category list.
		s.logger.Warn("active category list missing, validating against current category only",
			slog.String("category", category),
		)
		active = []string{category}
	}

	var specs model.SpecCategoryMap
	if opts.Theme.IsPersonBased() && s.specs != nil {
		var err error
		specs, err = s.specs.LoadByActor(ctx, model.CleanPersonOption(opts.Option))
		if err != nil {
			s.logger.Error("failed to load spec categories for AI turn",
				slog.String("error", err.Error()),
				slog.String("actor", model.CleanPersonOption(opts.Option)),
			)
			return nil, false
		}
	}

	var filtered []*model.Movie
	for _, m := range pool {
		for _, c := range eligibility.EligibleCategories(m, active, opts.Theme, specs) {
			if c == category {
				filtered = append(filtered, m)
				break
			}
		}
	}
	return filtered, true
}

func excludePicked(pool []*model.Movie, pickedIDs []int) []*model.Movie {
	picked := make(map[int]struct{}, len(pickedIDs))
	for _, id := range pickedIDs {
		picked[id] = struct{}{}
	}
	available := make([]*model.Movie, 0, len(pool))
	for _, m := range pool {
		if _, ok := picked[m.ProviderID()]; !ok {
			available = append(available, m)
		}
	}
	return available
}

type scoredMovie struct {
	movie *model.Movie
	score float64
}

// pickFrom ranks candidates by quality and picks one, randomizing among the
// top candidates when their scores are close so repeated drafts with similar
// pools do not produce identical AI behavior.
func (s *Selector) pickFrom(candidates []*model.Movie) *model.Movie {
	scored := make([]scoredMovie, len(candidates))
	for i, m := range candidates {
		scored[i] = scoredMovie{movie: m, score: QualityScore(m)}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		a, b := scored[i], scored[j]
		if a.score != b.score {
			return a.score > b.score
		}
		if a.movie.VoteAverage != b.movie.VoteAverage {
			return a.movie.VoteAverage > b.movie.VoteAverage
		}
		// Prefer the 1990-2020 sweet spot, then the earlier year, to avoid
		// always reaching for the newest film.
		aIn := a.movie.Year >= 1990 && a.movie.Year <= 2020
		bIn := b.movie.Year >= 1990 && b.movie.Year <= 2020
		if aIn != bIn {
			return aIn
		}
		return a.movie.Year < b.movie.Year
	})

	top := scored
	if len(top) > 3 {
		top = top[:3]
	}

	var closest []scoredMovie
	for _, c := range top {
		if top[0].score-c.score <= closeCandidateMargin {
			closest = append(closest, c)
		}
	}

	if len(closest) > 1 {
		return closest[s.rand.Intn(len(closest))].movie
	}
	return closest[0].movie
}

// QualityScore sums the multi-factor heuristic an AI ranks candidates by.
func QualityScore(m *model.Movie) float64 {
	var score float64

	// Ratings need enough votes to be trusted at full weight.
	switch {
	case m.VoteCount >= 100:
		score += m.VoteAverage * 10
		if m.VoteCount >= 1000 {
			score += 5
		}
		if m.VoteCount >= 5000 {
			score += 5
		}
	case m.VoteAverage > 0:
		score += m.VoteAverage * 5
	}

	switch m.EffectiveOscarStatus() {
	case model.OscarWinner:
		score += 20
	case model.OscarNominee:
		score += 10
	}

	if m.IsBlockbuster {
		score += 5
	}
	if m.Budget >= 50_000_000 {
		score += 3
	}
	if m.Revenue >= 100_000_000 {
		score += 2
	}

	// Counterbalances the recency bias of the popularity signals.
	if m.Year >= 1990 && m.Year <= 2010 {
		score += 2
	}

	return score
}
