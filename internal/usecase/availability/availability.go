package usecase_availability

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/moviedrafter/core/internal/eligibility"
	"github.com/moviedrafter/core/internal/model"
)

var (
	ErrFailedToFetchPool = errors.New("failed to fetch movie pool")
	ErrInvalidInput      = errors.New("invalid input")
)

//go:generate mockery --name=MovieProvider --output=./mocks/availability/provider --filename=provider.go
type MovieProvider interface {
	ListMovies(ctx context.Context, q model.MovieQuery) ([]*model.Movie, error)
}

// ResultCache stores per-category verdicts. Get returns (nil, nil) on a
// miss. Purge drops every stored verdict at once.
//
//go:generate mockery --name=ResultCache --output=./mocks/availability/cache --filename=cache.go
type ResultCache interface {
	Get(key string) (*model.AvailabilityResult, error)
	Set(key string, result *model.AvailabilityResult, ttl time.Duration) error
	Purge() error
}

const (
	// Person-themed verdicts go stale quickly: deceased/posthumous actor
	// eligibility and curated spec categories change between sessions.
	personCacheTTL  = 10 * time.Minute
	defaultCacheTTL = 60 * time.Minute

	sampleMovieLimit = 5

	// No category is viable with fewer movies than this, whatever the
	// player count.
	minRequiredMovies = 6
)

// estimatedCounts holds typical historical pool sizes per category. The
// numbers are empirically tuned; they only feed the non-blocking placeholder
// shown while the authoritative count loads.
var estimatedCounts = map[string]int{
	model.CategoryActionAdventure: 150,
	model.CategoryComedy:          120,
	model.CategoryDramaRomance:    200,
	model.CategorySciFiFantasy:    80,
	model.CategoryAnimated:        60,
	model.CategoryHorrorThriller:  70,
	model.CategoryDecade30s:       15,
	model.CategoryDecade40s:       25,
	model.CategoryDecade50s:       35,
	model.CategoryDecade60s:       45,
	model.CategoryDecade70s:       40,
	model.CategoryDecade80s:       60,
	model.CategoryDecade90s:       100,
	model.CategoryDecade2000s:     120,
	model.CategoryDecade2010s:     150,
	model.CategoryDecade2020s:     50,
	model.CategoryAcademyAward:    80,
	model.CategoryBlockbuster:     90,
}

const defaultEstimatedCount = 50

// requiredMultipliers scale the player count into the minimum viable pool
// per category: broad, competitive categories (decades, Drama/Romance) need
// more headroom than narrow ones. Empirically tuned alongside the estimate
// table; keep the values, don't extend the reasoning.
var requiredMultipliers = map[string]float64{
	model.CategoryActionAdventure: 1.5,
	model.CategoryAnimated:        1.2,
	model.CategoryComedy:          1.5,
	model.CategoryDramaRomance:    1.7,
	model.CategorySciFiFantasy:    1.4,
	model.CategoryHorrorThriller:  1.3,
	model.CategoryDecade30s:       1.6,
	model.CategoryDecade40s:       1.6,
	model.CategoryDecade50s:       1.6,
	model.CategoryDecade60s:       1.6,
	model.CategoryDecade70s:       1.6,
	model.CategoryDecade80s:       1.6,
	model.CategoryDecade90s:       1.7,
	model.CategoryDecade2000s:     1.7,
	model.CategoryDecade2010s:     1.7,
	model.CategoryDecade2020s:     1.6,
	model.CategoryAcademyAward:    1.3,
	model.CategoryBlockbuster:     1.4,
}

const defaultRequiredMultiplier = 1.5

type Usecase struct {
	provider MovieProvider
	cache    ResultCache
	logger   *slog.Logger

	// Collapses concurrent pool fetches for the same theme/option so a burst
	// of analysis requests costs one provider round-trip.
	group singleflight.Group

	personTTL  time.Duration
	defaultTTL time.Duration
}

type UsecaseOption func(*Usecase)

func WithLogger(logger *slog.Logger) UsecaseOption {
	return func(u *Usecase) {
		u.logger = logger
	}
}

func WithTTLs(person, others time.Duration) UsecaseOption {
	return func(u *Usecase) {
		u.personTTL = person
		u.defaultTTL = others
	}
}

func New(provider MovieProvider, cache ResultCache, opts ...UsecaseOption) *Usecase {
	u := &Usecase{
		provider:   provider,
		cache:      cache,
		logger:     slog.Default(),
		personTTL:  personCacheTTL,
		defaultTTL: defaultCacheTTL,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Estimate builds the immediate placeholder verdict for one category from
// the static estimate table.
func (u *Usecase) Estimate(category string, playerCount int) model.AvailabilityResult {
	count, ok := estimatedCounts[category]
	if !ok {
		count = defaultEstimatedCount
	}

	return model.AvailabilityResult{
		CategoryID: category,
		Available:  count >= playerCount,
		MovieCount: count,
		Status:     estimateStatus(count, playerCount),
		IsEstimate: true,
	}
}

// Analysis is one pass over a draft's categories. All categories in a pass
// share a single pool fetch.
type Analysis struct {
	u   *Usecase
	req model.AnalysisRequest

	once sync.Once
	pool []*model.Movie
	err  error
}

// Begin validates the request and starts an analysis pass. Person themes and
// forced passes start cold so curated actor data is re-read.
func (u *Usecase) Begin(req model.AnalysisRequest, force bool) (*Analysis, error) {
	if req.PlayerCount <= 0 {
		return nil, fmt.Errorf("%w: player count must be positive", ErrInvalidInput)
	}

	if force || req.Theme.IsPersonBased() {
		if err := u.cache.Purge(); err != nil {
			u.logger.Warn("failed to purge availability cache", slog.String("error", err.Error()))
		}
	}

	return &Analysis{u: u, req: req}, nil
}

// Analyze measures availability for every requested category, in request
// order. A provider failure never fails the whole request: the affected
// categories come back insufficient with an explanatory reason.
func (u *Usecase) Analyze(ctx context.Context, req model.AnalysisRequest, force bool) ([]model.AvailabilityResult, error) {
	analysis, err := u.Begin(req, force)
	if err != nil {
		return nil, err
	}

	results := make([]model.AvailabilityResult, 0, len(req.Categories))
	for _, category := range req.Categories {
		results = append(results, analysis.Category(ctx, category))
	}
	return results, nil
}

// Estimate builds the immediate placeholder verdict for one category.
func (a *Analysis) Estimate(category string) model.AvailabilityResult {
	return a.u.Estimate(category, a.req.PlayerCount)
}

// Category measures a single category, consulting the cache first.
// Progressive callers stream one result per call as categories finish.
func (a *Analysis) Category(ctx context.Context, category string) model.AvailabilityResult {
	u := a.u
	key := cacheKey(a.req, category)

	if cached, err := u.cache.Get(key); err != nil {
		u.logger.Warn("availability cache read failed", slog.String("error", err.Error()))
	} else if cached != nil {
		return *cached
	}

	result, err := a.measure(ctx, category)
	if err != nil {
		u.logger.Error("category analysis failed",
			slog.String("category", category),
			slog.String("error", err.Error()),
		)
		return model.AvailabilityResult{
			CategoryID: category,
			Available:  false,
			MovieCount: 0,
			Status:     model.StatusInsufficient,
			Reason:     "Analysis failed",
		}
	}

	if err := u.cache.Set(key, &result, u.ttlFor(a.req.Theme)); err != nil {
		u.logger.Warn("failed to cache availability result", slog.String("error", err.Error()))
	}
	return result
}

func (a *Analysis) measure(ctx context.Context, category string) (model.AvailabilityResult, error) {
	a.once.Do(func() {
		a.pool, a.err = a.u.fetchPool(ctx, a.req)
	})
	if a.err != nil {
		return model.AvailabilityResult{}, fmt.Errorf("%w: %w", ErrFailedToFetchPool, a.err)
	}
	pool, req := a.pool, a.req

	var (
		movieCount int
		samples    []string
	)
	for _, m := range pool {
		if !eligibility.MatchesCategory(m, category) {
			continue
		}
		movieCount++
		if len(samples) < sampleMovieLimit {
			samples = append(samples, m.Title)
		}
	}

	required := RequiredMovies(category, req.PlayerCount)
	available := movieCount >= required

	result := model.AvailabilityResult{
		CategoryID:   category,
		Available:    available,
		MovieCount:   movieCount,
		SampleMovies: samples,
		Status:       measuredStatus(movieCount, required),
	}
	if !available {
		result.Reason = fmt.Sprintf("Only %d movies available, need %d", movieCount, required)
	}
	return result, nil
}

func (u *Usecase) fetchPool(ctx context.Context, req model.AnalysisRequest) ([]*model.Movie, error) {
	option := req.Option
	if req.Theme.IsPersonBased() {
		option = model.CleanPersonOption(option)
	}

	key := strings.Join([]string{"pool", string(req.Theme), option}, "|")
	v, err, _ := u.group.Do(key, func() (any, error) {
		return u.provider.ListMovies(ctx, model.MovieQuery{
			Theme:       req.Theme,
			SearchQuery: option,
			FetchAll:    true,
		})
	})
	if err != nil {
		return nil, err
	}
	return v.([]*model.Movie), nil
}

// RequiredMovies is the minimum viable pool for a category at a given
// player count.
func RequiredMovies(category string, playerCount int) int {
	mult, ok := requiredMultipliers[category]
	if !ok {
		mult = defaultRequiredMultiplier
	}
	required := int(math.Ceil(float64(playerCount) * mult))
	if required < minRequiredMovies {
		required = minRequiredMovies
	}
	return required
}

func (u *Usecase) ttlFor(theme model.Theme) time.Duration {
	if theme.IsPersonBased() {
		return u.personTTL
	}
	return u.defaultTTL
}

// cacheKey identifies one measured verdict. The player count always
// participates: Available, Status and Reason are graded against the
// requirement it implies, so verdicts for different party sizes must never
// alias.
func cacheKey(req model.AnalysisRequest, category string) string {
	return strings.Join([]string{
		string(req.Theme),
		req.Option,
		req.Mode,
		category,
		fmt.Sprintf("p%d", req.PlayerCount),
	}, "|")
}

func estimateStatus(count, playerCount int) model.AvailabilityStatus {
	switch {
	case count >= playerCount*2:
		return model.StatusSufficient
	case count >= playerCount:
		return model.StatusLimited
	default:
		return model.StatusInsufficient
	}
}

func measuredStatus(count, required int) model.AvailabilityStatus {
	switch {
	case float64(count) >= float64(required)*1.5:
		return model.StatusSufficient
	case count >= required:
		return model.StatusLimited
	default:
		return model.StatusInsufficient
	}
}
