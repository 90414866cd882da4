package http_admin

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	http_common "github.com/moviedrafter/core/internal/delivery/http/common"
	http_auth_middleware "github.com/moviedrafter/core/internal/delivery/http/middleware/auth"
	"github.com/moviedrafter/core/internal/model"
)

// CuratedStore is the curated-pool storage the admin surface manages.
type CuratedStore interface {
	Store(ctx context.Context, draftID uuid.UUID, m *model.Movie, categories []string) error
	LoadByDraft(ctx context.Context, draftID uuid.UUID) ([]*model.Movie, error)
}

type Controller struct {
	store      CuratedStore
	middleware *http_auth_middleware.Middleware

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(store CuratedStore,
	middleware *http_auth_middleware.Middleware,
	opts ...ControllerOption) *Controller {
	c := &Controller{
		store:      store,
		middleware: middleware,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	admin := router.Group("/admin/spec-drafts/:draft_id/movies")
	admin.Use(c.middleware.AuthRequired())
	admin.POST("", c.storeMovie)
	admin.GET("", c.listMovies)
}

// StoreMovieRequestDTO
type StoreMovieRequestDTO struct {
	Movie      CuratedMovieDTO `json:"movie"`
	Categories []string        `json:"categories"`
}

// CuratedMovieDTO
type CuratedMovieDTO struct {
	ID            int     `json:"id" binding:"required" example:"238"`
	Title         string  `json:"title" binding:"required" example:"The Godfather"`
	Year          int     `json:"year" example:"1972"`
	Genre         string  `json:"genre" example:"Drama Crime"`
	VoteAverage   float64 `json:"vote_average,omitempty"`
	VoteCount     int     `json:"vote_count,omitempty"`
	OscarStatus   string  `json:"oscar_status,omitempty" enums:"none,nominee,winner"`
	HasOscar      bool    `json:"has_oscar,omitempty"`
	IsBlockbuster bool    `json:"is_blockbuster,omitempty"`
	Budget        int64   `json:"budget,omitempty"`
	Revenue       int64   `json:"revenue,omitempty"`
	PosterPath    string  `json:"poster_path,omitempty"`
	Overview      string  `json:"overview,omitempty"`
}

func (m *CuratedMovieDTO) toDomain() model.Movie {
	return model.Movie{
		ID:            m.ID,
		TMDBID:        m.ID,
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
		PosterPath:    m.PosterPath,
		Overview:      m.Overview,
	}
}

// @Summary Add a movie to a spec draft pool
// @Description Upserts a curated movie and its custom category assignments
// @Tags Admin operations
// @Accept json
// @Produce json
// @Param draft_id path string true "Draft identifier"
// @Param request body StoreMovieRequestDTO true "Movie with its categories"
// @Success 201 "Movie stored"
// @Failure 400 {object} http_common.ErrorResponse "Invalid request"
// @Failure 401 {object} http_common.ErrorResponse "Unauthorized"
// @Failure 500 {object} http_common.ErrorResponse "Internal server error"
// @Security AdminToken
// @Router /admin/spec-drafts/{draft_id}/movies [post]
func (c *Controller) storeMovie(ctx *gin.Context) {
	draftID, err := uuid.Parse(ctx.Param("draft_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid draft id",
		})
		return
	}

	var req StoreMovieRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid request body",
		})
		return
	}

	movie := req.Movie.toDomain()
	if err := c.store.Store(ctx, draftID, &movie, req.Categories); err != nil {
		c.logger.Error("failed to store curated movie",
			slog.String("draft_id", draftID.String()),
			slog.String("error", err.Error()),
		)
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "internal error",
		})
		return
	}

	ctx.Status(http.StatusCreated)
}

// @Summary List a spec draft pool
// @Description Returns every curated movie of the draft
// @Tags Admin operations
// @Produce json
// @Param draft_id path string true "Draft identifier"
// @Success 200 {array} CuratedMovieDTO "Curated movies"
// @Failure 400 {object} http_common.ErrorResponse "Invalid draft id"
// @Failure 401 {object} http_common.ErrorResponse "Unauthorized"
// @Failure 500 {object} http_common.ErrorResponse "Internal server error"
// @Security AdminToken
// @Router /admin/spec-drafts/{draft_id}/movies [get]
func (c *Controller) listMovies(ctx *gin.Context) {
	draftID, err := uuid.Parse(ctx.Param("draft_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid draft id",
		})
		return
	}

	movies, err := c.store.LoadByDraft(ctx, draftID)
	if err != nil {
		c.logger.Error("failed to list curated movies", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "internal error",
		})
		return
	}

	dtos := make([]CuratedMovieDTO, len(movies))
	for i, movie := range movies {
		dtos[i] = CuratedMovieDTO{
			ID:            movie.ProviderID(),
			Title:         movie.Title,
			Year:          movie.Year,
			Genre:         movie.Genre,
			VoteAverage:   movie.VoteAverage,
			VoteCount:     movie.VoteCount,
			OscarStatus:   string(movie.OscarStatus),
			HasOscar:      movie.HasOscar,
			IsBlockbuster: movie.IsBlockbuster,
			Budget:        movie.Budget,
			Revenue:       movie.Revenue,
			PosterPath:    movie.PosterPath,
			Overview:      movie.Overview,
		}
	}
	ctx.JSON(http.StatusOK, dtos)
}
