package http_draft

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	http_common "github.com/moviedrafter/core/internal/delivery/http/common"
	"github.com/moviedrafter/core/internal/model"
	usecase_draft "github.com/moviedrafter/core/internal/usecase/draft"
)

type Controller struct {
	usecase *usecase_draft.Usecase
	logger  *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(usecase *usecase_draft.Usecase, opts ...ControllerOption) *Controller {
	c := &Controller{
		usecase: usecase,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	drafts := router.Group("/drafts/:draft_id")
	{
		drafts.POST("/picks", c.recordPick)
		drafts.GET("/picks", c.listPicks)
		drafts.GET("/picked-ids", c.pickedIDs)
	}
	router.POST("/eligibility/categories", c.eligibleCategories)
}

// MovieDTO
type MovieDTO struct {
	ID            int     `json:"id" example:"238"`
	TMDBID        int     `json:"tmdb_id,omitempty" example:"238"`
	Title         string  `json:"title" example:"The Godfather"`
	Year          int     `json:"year" example:"1972"`
	Genre         string  `json:"genre" example:"Drama Crime"`
	VoteAverage   float64 `json:"vote_average,omitempty"`
	VoteCount     int     `json:"vote_count,omitempty"`
	OscarStatus   string  `json:"oscar_status,omitempty" enums:"none,nominee,winner"`
	HasOscar      bool    `json:"has_oscar,omitempty"`
	IsBlockbuster bool    `json:"is_blockbuster,omitempty"`
	Budget        int64   `json:"budget,omitempty"`
	Revenue       int64   `json:"revenue,omitempty"`
}

func (m *MovieDTO) toDomain() model.Movie {
	return model.Movie{
		ID:            m.ID,
		TMDBID:        m.TMDBID,
		Title:         m.Title,
		Year:          m.Year,
		Genre:         m.Genre,
		VoteAverage:   m.VoteAverage,
		VoteCount:     m.VoteCount,
		OscarStatus:   model.OscarStatus(m.OscarStatus),
		HasOscar:      m.HasOscar,
		IsBlockbuster: m.IsBlockbuster,
		Budget:        m.Budget,
		Revenue:       m.Revenue,
	}
}

// RecordPickRequestDTO
type RecordPickRequestDTO struct {
	Participant      string   `json:"participant" example:"alice"`
	Category         string   `json:"category" example:"Drama/Romance"`
	Movie            MovieDTO `json:"movie"`
	Theme            string   `json:"theme" example:"year"`
	Option           string   `json:"option" example:"1972"`
	ActiveCategories []string `json:"active_categories"`
}

// PickDTO
type PickDTO struct {
	Participant string `json:"participant" example:"alice"`
	Category    string `json:"category" example:"Drama/Romance"`
	MovieID     int    `json:"movie_id" example:"238"`
	MovieTitle  string `json:"movie_title" example:"The Godfather"`
}

// @Summary Record a pick
// @Description Validates the movie against the category and appends it to the draft ledger
// @Tags Draft operations
// @Accept json
// @Produce json
// @Param draft_id path string true "Draft identifier"
// @Param request body RecordPickRequestDTO true "Pick with its draft context"
// @Success 201 "Pick recorded"
// @Failure 400 {object} http_common.ErrorResponse "Invalid request"
// @Failure 409 {object} http_common.ErrorResponse "Movie already picked"
// @Failure 422 {object} http_common.ErrorResponse "Movie not eligible for category"
// @Failure 500 {object} http_common.ErrorResponse "Internal server error"
// @Router /drafts/{draft_id}/picks [post]
func (c *Controller) recordPick(ctx *gin.Context) {
	draftID, err := uuid.Parse(ctx.Param("draft_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid draft id",
		})
		return
	}

	var req RecordPickRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid request body",
		})
		return
	}

	movie := req.Movie.toDomain()
	pick := model.Pick{
		DraftID:     draftID,
		Participant: req.Participant,
		Category:    req.Category,
		MovieID:     movie.ProviderID(),
		MovieTitle:  movie.Title,
	}

	err = c.usecase.RecordPick(ctx, pick, &movie, req.ActiveCategories, model.NormalizeTheme(req.Theme), req.Option)
	if err != nil {
		c.logger.Error("failed to record pick",
			slog.String("draft_id", draftID.String()),
			slog.String("error", err.Error()),
		)
		switch {
		case errors.Is(err, usecase_draft.ErrIneligibleMovie):
			ctx.JSON(http.StatusUnprocessableEntity, http_common.ErrorResponse{
				Message: "movie is not eligible for the category",
			})
		case errors.Is(err, usecase_draft.ErrAlreadyPicked):
			ctx.JSON(http.StatusConflict, http_common.ErrorResponse{
				Message: "movie already picked",
			})
		default:
			ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
				Message: "internal error",
			})
		}
		return
	}

	ctx.Status(http.StatusCreated)
}

// @Summary List picks
// @Description Returns the draft ledger in pick order
// @Tags Draft operations
// @Produce json
// @Param draft_id path string true "Draft identifier"
// @Success 200 {array} PickDTO "Picks"
// @Failure 400 {object} http_common.ErrorResponse "Invalid draft id"
// @Failure 500 {object} http_common.ErrorResponse "Internal server error"
// @Router /drafts/{draft_id}/picks [get]
func (c *Controller) listPicks(ctx *gin.Context) {
	draftID, err := uuid.Parse(ctx.Param("draft_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid draft id",
		})
		return
	}

	picks, err := c.usecase.Picks(ctx, draftID)
	if err != nil {
		c.logger.Error("failed to list picks", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "internal error",
		})
		return
	}

	dtos := make([]PickDTO, len(picks))
	for i, pick := range picks {
		dtos[i] = PickDTO{
			Participant: pick.Participant,
			Category:    pick.Category,
			MovieID:     pick.MovieID,
			MovieTitle:  pick.MovieTitle,
		}
	}
	ctx.JSON(http.StatusOK, dtos)
}

// PickedIDsResponseDTO
type PickedIDsResponseDTO struct {
	MovieIDs []int `json:"movie_ids"`
}

// @Summary List picked movie ids
// @Description Returns the ids of every movie already taken in the draft
// @Tags Draft operations
// @Produce json
// @Param draft_id path string true "Draft identifier"
// @Success 200 {object} PickedIDsResponseDTO "Picked ids"
// @Failure 400 {object} http_common.ErrorResponse "Invalid draft id"
// @Failure 500 {object} http_common.ErrorResponse "Internal server error"
// @Router /drafts/{draft_id}/picked-ids [get]
func (c *Controller) pickedIDs(ctx *gin.Context) {
	draftID, err := uuid.Parse(ctx.Param("draft_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid draft id",
		})
		return
	}

	ids, err := c.usecase.PickedIDs(ctx, draftID)
	if err != nil {
		c.logger.Error("failed to list picked ids", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "internal error",
		})
		return
	}

	if ids == nil {
		ids = []int{}
	}
	ctx.JSON(http.StatusOK, PickedIDsResponseDTO{MovieIDs: ids})
}

// EligibleCategoriesRequestDTO
type EligibleCategoriesRequestDTO struct {
	Movie            MovieDTO `json:"movie"`
	Theme            string   `json:"theme" example:"people"`
	Option           string   `json:"option" example:"Clark Gable"`
	ActiveCategories []string `json:"active_categories"`
}

// EligibleCategoriesResponseDTO
type EligibleCategoriesResponseDTO struct {
	Categories []string `json:"categories"`
}

// @Summary List eligible categories
// @Description Returns the active categories the movie may be slotted into
// @Tags Draft operations
// @Accept json
// @Produce json
// @Param request body EligibleCategoriesRequestDTO true "Movie with its draft context"
// @Success 200 {object} EligibleCategoriesResponseDTO "Eligible categories"
// @Failure 400 {object} http_common.ErrorResponse "Invalid request"
// @Failure 500 {object} http_common.ErrorResponse "Internal server error"
// @Router /eligibility/categories [post]
func (c *Controller) eligibleCategories(ctx *gin.Context) {
	var req EligibleCategoriesRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid request body",
		})
		return
	}

	movie := req.Movie.toDomain()
	categories, err := c.usecase.EligibleCategories(ctx, &movie, req.ActiveCategories, model.NormalizeTheme(req.Theme), req.Option)
	if err != nil {
		c.logger.Error("failed to list eligible categories", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "internal error",
		})
		return
	}

	if categories == nil {
		categories = []string{}
	}
	ctx.JSON(http.StatusOK, EligibleCategoriesResponseDTO{Categories: categories})
}
