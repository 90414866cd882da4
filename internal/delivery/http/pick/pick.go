package http_pick

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	http_common "github.com/moviedrafter/core/internal/delivery/http/common"
	"github.com/moviedrafter/core/internal/model"
	usecase_pick "github.com/moviedrafter/core/internal/usecase/pick"
)

type Controller struct {
	selector *usecase_pick.Selector
	logger   *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(selector *usecase_pick.Selector, opts ...ControllerOption) *Controller {
	c := &Controller{
		selector: selector,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/ai-pick", c.pick)
}

// PickRequestDTO
type PickRequestDTO struct {
	Theme            string   `json:"theme" example:"year"`
	Option           string   `json:"option" example:"1972"`
	Category         string   `json:"category" example:"Drama/Romance"`
	ActiveCategories []string `json:"active_categories"`
	AlreadyPickedIDs []int    `json:"already_picked_ids"`
	SearchQuery      string   `json:"search_query,omitempty"`
}

// PickResponseDTO
type PickResponseDTO struct {
	ID          int     `json:"id" example:"238"`
	Title       string  `json:"title" example:"The Godfather"`
	Year        int     `json:"year" example:"1972"`
	Genre       string  `json:"genre" example:"Drama Crime"`
	VoteAverage float64 `json:"vote_average" example:"8.7"`
	PosterPath  string  `json:"poster_path,omitempty"`
	Overview    string  `json:"overview,omitempty"`
}

// @Summary Pick a movie for an automated turn
// @Description Ranks the available pool by quality and returns the chosen movie
// @Tags Pick operations
// @Accept json
// @Produce json
// @Param request body PickRequestDTO true "Turn context"
// @Success 200 {object} PickResponseDTO "Chosen movie"
// @Success 204 "No legal pick available"
// @Failure 400 {object} http_common.ErrorResponse "Invalid request"
// @Router /ai-pick [post]
func (c *Controller) pick(ctx *gin.Context) {
	var req PickRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid request body",
		})
		return
	}

	movie := c.selector.Select(ctx, usecase_pick.Options{
		Theme:            model.NormalizeTheme(req.Theme),
		Option:           req.Option,
		CurrentCategory:  req.Category,
		ActiveCategories: req.ActiveCategories,
		AlreadyPickedIDs: req.AlreadyPickedIDs,
		SearchQuery:      req.SearchQuery,
	})
	if movie == nil {
		ctx.Status(http.StatusNoContent)
		return
	}

	ctx.JSON(http.StatusOK, PickResponseDTO{
		ID:          movie.ProviderID(),
		Title:       movie.Title,
		Year:        movie.Year,
		Genre:       movie.Genre,
		VoteAverage: movie.VoteAverage,
		PosterPath:  movie.PosterPath,
		Overview:    movie.Overview,
	})
}
