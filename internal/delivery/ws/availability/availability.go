package ws_availability

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/moviedrafter/core/internal/model"
	usecase_availability "github.com/moviedrafter/core/internal/usecase/availability"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

const (
	EventEstimate = "ESTIMATE"
	EventResult   = "RESULT"
	EventDone     = "DONE"
	EventError    = "ERROR"
)

type Event struct {
	Type     string      `json:"type"`
	Category string      `json:"category,omitempty"`
	Payload  interface{} `json:"payload,omitempty"`
}

// ResultDTO
type ResultDTO struct {
	CategoryID   string   `json:"category_id"`
	Available    bool     `json:"available"`
	MovieCount   int      `json:"movie_count"`
	SampleMovies []string `json:"sample_movies,omitempty"`
	Status       string   `json:"status"`
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

// AnalyzeRequest is the single client message that starts a stream.
type AnalyzeRequest struct {
	Theme       string   `json:"theme"`
	Option      string   `json:"option"`
	Mode        string   `json:"mode"`
	Categories  []string `json:"categories"`
	PlayerCount int      `json:"player_count"`
	Force       bool     `json:"force"`
}

// Controller streams availability verdicts over a websocket: an immediate
// estimate per category, then the authoritative result as each category
// finishes, then DONE. The draft-setup screen stays responsive while slow
// categories are still counting.
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
	router.GET("/availability/ws", c.analyzeWS)
}

func (c *Controller) analyzeWS(ctx *gin.Context) {
	conn, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		c.logger.Error("failed to upgrade to websocket",
			slog.String("error", err.Error()),
		)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	defer conn.Close()

	var req AnalyzeRequest
	if err := conn.ReadJSON(&req); err != nil {
		c.logger.Warn("failed to read analyze request", slog.String("error", err.Error()))
		_ = conn.WriteJSON(Event{Type: EventError, Payload: "invalid request"})
		return
	}

	analysis, err := c.usecase.Begin(model.AnalysisRequest{
		Theme:       model.NormalizeTheme(req.Theme),
		Option:      req.Option,
		Mode:        req.Mode,
		Categories:  req.Categories,
		PlayerCount: req.PlayerCount,
	}, req.Force)
	if err != nil {
		_ = conn.WriteJSON(Event{Type: EventError, Payload: err.Error()})
		return
	}

	for _, category := range req.Categories {
		estimate := toResultDTO(analysis.Estimate(category))
		if err := conn.WriteJSON(Event{Type: EventEstimate, Category: category, Payload: estimate}); err != nil {
			return
		}
	}

	for _, category := range req.Categories {
		result := toResultDTO(analysis.Category(ctx.Request.Context(), category))
		if err := conn.WriteJSON(Event{Type: EventResult, Category: category, Payload: result}); err != nil {
			return
		}
	}

	_ = conn.WriteJSON(Event{Type: EventDone})
}
