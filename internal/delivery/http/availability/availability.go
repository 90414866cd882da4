package http_availability

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	http_common "github.com/moviedrafter/core/internal/delivery/http/common"
	"github.com/moviedrafter/core/internal/model"
	usecase_availability "github.com/moviedrafter/core/internal/usecase/availability"
)

type Controller struct {
	usecase *usecase_availability.Usecase
	logger  *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(usecase *usecase_availability.Usecase, opts ...ControllerOption) *Controller {
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
	availability := router.Group("/availability")
	{
		availability.POST("/analyze", c.analyze)
		availability.POST("/estimates", c.estimates)
	}
}

// AnalyzeRequestDTO
type AnalyzeRequestDTO struct {
	Theme       string   `json:"theme" example:"people"`
	Option      string   `json:"option" example:"Clark Gable"`
	Mode        string   `json:"mode" example:"standard"`
	Categories  []string `json:"categories"`
	PlayerCount int      `json:"player_count" example:"4"`
	Force       bool     `json:"force" example:"false"`
}

// ResultDTO
type ResultDTO struct {
	CategoryID   string   `json:"category_id" example:"Drama/Romance"`
	Available    bool     `json:"available" example:"true"`
	MovieCount   int      `json:"movie_count" example:"42"`
	SampleMovies []string `json:"sample_movies,omitempty"`
	Status       string   `json:"status" example:"sufficient" enums:"sufficient,limited,insufficient"`
	Reason       string   `json:"reason,omitempty"`
	IsEstimate   bool     `json:"is_estimate,omitempty"`
}

func toResultDTO(result model.AvailabilityResult) ResultDTO {
	return ResultDTO{
		CategoryID:   result.CategoryID,
		Available:    result.Available,
		MovieCount:   result.MovieCount,
		SampleMovies: result.SampleMovies,
		Status:       string(result.Status),
		Reason:       result.Reason,
		IsEstimate:   result.IsEstimate,
	}
}

func (r *AnalyzeRequestDTO) toDomain() model.AnalysisRequest {
	return model.AnalysisRequest{
		Theme:       model.NormalizeTheme(r.Theme),
		Option:      r.Option,
		Mode:        r.Mode,
		Categories:  r.Categories,
		PlayerCount: r.PlayerCount,
	}
}

// @Summary Analyze category availability
// @Description Measures how many eligible movies each category holds for the draft setup
// @Tags Availability operations
// @Accept json
// @Produce json
// @Param request body AnalyzeRequestDTO true "Draft theme, categories and player count"
// @Success 200 {array} ResultDTO "Per-category verdicts in request order"
// @Failure 400 {object} http_common.ErrorResponse "Invalid request"
// @Failure 500 {object} http_common.ErrorResponse "Internal server error"
// @Router /availability/analyze [post]
func (c *Controller) analyze(ctx *gin.Context) {
	var req AnalyzeRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid request body",
		})
		return
	}

	results, err := c.usecase.Analyze(ctx, req.toDomain(), req.Force)
	if err != nil {
		c.logger.Error("failed to analyze availability", slog.String("error", err.Error()))
		if errors.Is(err, usecase_availability.ErrInvalidInput) {
			ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
				Message: "invalid request",
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "internal error",
		})
		return
	}

	dtos := make([]ResultDTO, len(results))
	for i, result := range results {
		dtos[i] = toResultDTO(result)
	}
	ctx.JSON(http.StatusOK, dtos)
}

// @Summary Estimate category availability
// @Description Returns instant table-based placeholders without querying the movie provider
// @Tags Availability operations
// @Accept json
// @Produce json
// @Param request body AnalyzeRequestDTO true "Categories and player count"
// @Success 200 {array} ResultDTO "Per-category estimates"
// @Failure 400 {object} http_common.ErrorResponse "Invalid request"
// @Router /availability/estimates [post]
func (c *Controller) estimates(ctx *gin.Context) {
	var req AnalyzeRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid request body",
		})
		return
	}
	if req.PlayerCount <= 0 {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "player count must be positive",
		})
		return
	}

	dtos := make([]ResultDTO, len(req.Categories))
	for i, category := range req.Categories {
		dtos[i] = toResultDTO(c.usecase.Estimate(category, req.PlayerCount))
	}
	ctx.JSON(http.StatusOK, dtos)
}
