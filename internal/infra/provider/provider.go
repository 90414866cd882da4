package infra_provider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/moviedrafter/core/internal/model"
)

var ErrBadStatus = errors.New("movie provider returned bad status")

const defaultTimeout = 30 * time.Second

// Client talks to the movie listing endpoint. One POST per query: the theme
// is sent as the category field, the theme option as the search query.
type Client struct {
	url    string
	token  string
	client *http.Client
}

type ClientOption func(*Client)

func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.client = httpClient
	}
}

func New(url string, token string, opts ...ClientOption) *Client {
	c := &Client{
		url:    url,
		token:  token,
		client: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) ListMovies(ctx context.Context, q model.MovieQuery) ([]*model.Movie, error) {
	reqBody := listRequest{
		Category:         q.Theme.ProviderCategory(),
		SearchQuery:      q.SearchQuery,
		MovieSearchQuery: q.MovieSearchQuery,
		Page:             q.Page,
		PageLimit:        q.PageLimit,
		FetchAll:         q.FetchAll,
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call movie provider: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", ErrBadStatus, resp.StatusCode)
	}

	var respBody listResponse
	if err := json.NewDecoder(resp.Body).Decode(&respBody); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	// Older deployments answered with a movies field instead of results.
	moviesDB := respBody.Results
	if moviesDB == nil {
		moviesDB = respBody.Movies
	}

	movies := make([]*model.Movie, len(moviesDB))
	for i, movieDB := range moviesDB {
		domainMovie := movieDB.ToDomain()
		movies[i] = &domainMovie
	}

	return movies, nil
}
