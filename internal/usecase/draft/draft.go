package usecase_draft

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/moviedrafter/core/internal/eligibility"
	"github.com/moviedrafter/core/internal/model"
)

var (
	ErrIneligibleMovie  = errors.New("movie is not eligible for the category")
	ErrAlreadyPicked    = errors.New("movie is already picked in this draft")
	ErrFailedToRecord   = errors.New("failed to record pick")
	ErrFailedToLoad     = errors.New("failed to load draft state")
	ErrFailedToLoadSpec = errors.New("failed to load spec categories")
)

//go:generate mockery --name=PickRepository --output=./mocks/draft/pick --filename=pick.go
type PickRepository interface {
	Save(ctx context.Context, pick model.Pick) error
	ListByDraft(ctx context.Context, draftID uuid.UUID) ([]model.Pick, error)
	PickedIDs(ctx context.Context, draftID uuid.UUID) ([]int, error)
}

//go:generate mockery --name=SpecCategoryRepository --output=./mocks/draft/speccategory --filename=speccategory.go
type SpecCategoryRepository interface {
	LoadByActor(ctx context.Context, actorName string) (model.SpecCategoryMap, error)
}

type Usecase struct {
	picks  PickRepository
	specs  SpecCategoryRepository
	logger *slog.Logger
}

type UsecaseOption func(*Usecase)

func WithLogger(logger *slog.Logger) UsecaseOption {
	return func(u *Usecase) {
		u.logger = logger
	}
}

func New(picks PickRepository, specs SpecCategoryRepository, opts ...UsecaseOption) *Usecase {
	u := &Usecase{
		picks:  picks,
		specs:  specs,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// EligibleCategories lists every active category the movie may be slotted
// into under the draft's theme.
func (u *Usecase) EligibleCategories(ctx context.Context, movie *model.Movie, active []string, theme model.Theme, option string) ([]string, error) {
	specs, err := u.specCategories(ctx, theme, option)
	if err != nil {
		return nil, err
	}
	return eligibility.EligibleCategories(movie, active, theme, specs), nil
}

// ValidatePick checks a human pick without recording it: the movie must be
// eligible for the category and not already taken in this draft.
func (u *Usecase) ValidatePick(ctx context.Context, pick model.Pick, movie *model.Movie, active []string, theme model.Theme, option string) error {
	eligible, err := u.EligibleCategories(ctx, movie, active, theme, option)
	if err != nil {
		return err
	}
	if !slices.Contains(eligible, pick.Category) {
		return fmt.Errorf("%w: %q does not fit %q", ErrIneligibleMovie, movie.Title, pick.Category)
	}

	picked, err := u.picks.PickedIDs(ctx, pick.DraftID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToLoad, err)
	}
	if slices.Contains(picked, pick.MovieID) {
		return fmt.Errorf("%w: movie %d", ErrAlreadyPicked, pick.MovieID)
	}
	return nil
}

// RecordPick validates and appends a pick to the draft ledger. The unique
// constraint in storage backstops the validation against races.
func (u *Usecase) RecordPick(ctx context.Context, pick model.Pick, movie *model.Movie, active []string, theme model.Theme, option string) error {
	if err := u.ValidatePick(ctx, pick, movie, active, theme, option); err != nil {
		return err
	}

	if err := u.picks.Save(ctx, pick); err != nil {
		u.logger.Error("failed to record pick",
			slog.String("draft_id", pick.DraftID.String()),
			slog.Int("movie_id", pick.MovieID),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("%w: %w", ErrFailedToRecord, err)
	}
	return nil
}

// PickedIDs returns every movie id already taken in the draft.
func (u *Usecase) PickedIDs(ctx context.Context, draftID uuid.UUID) ([]int, error) {
	ids, err := u.picks.PickedIDs(ctx, draftID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoad, err)
	}
	return ids, nil
}

// Picks returns the draft ledger in pick order.
func (u *Usecase) Picks(ctx context.Context, draftID uuid.UUID) ([]model.Pick, error) {
	picks, err := u.picks.ListByDraft(ctx, draftID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoad, err)
	}
	return picks, nil
}

func (u *Usecase) specCategories(ctx context.Context, theme model.Theme, option string) (model.SpecCategoryMap, error) {
	if !theme.IsPersonBased() {
		return nil, nil
	}
	specs, err := u.specs.LoadByActor(ctx, model.CleanPersonOption(option))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoadSpec, err)
	}
	return specs, nil
}
