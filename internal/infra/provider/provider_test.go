package infra_provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"

	"github.com/moviedrafter/core/internal/model"
)

type ProviderUnitSuite struct {
	suite.Suite
}

func (s *ProviderUnitSuite) TestListMovies(t provider.T) {
	ctx := context.Background()

	t.Run("Should send the theme as the category and decode results", func(t provider.T) {
		var gotReq listRequest
		var gotAuth string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			_ = json.NewDecoder(r.Body).Decode(&gotReq)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"results": []map[string]any{
					{
						"id":           238,
						"title":        "The Godfather",
						"year":         1972,
						"genre":        "Drama Crime",
						"vote_average": 8.7,
						"vote_count":   18000,
						"oscar_status": "winner",
					},
				},
			})
		}))
		defer server.Close()

		client := New(server.URL, "secret-token")
		movies, err := client.ListMovies(ctx, model.MovieQuery{
			Theme:       model.ThemeYear,
			SearchQuery: "1972",
			Page:        1,
			PageLimit:   50,
		})

		assert.NoError(t, err)
		assert.Equal(t, "Bearer secret-token", gotAuth)
		assert.Equal(t, "year", gotReq.Category)
		assert.Equal(t, "1972", gotReq.SearchQuery)
		assert.Equal(t, 50, gotReq.PageLimit)
		assert.Len(t, movies, 1)
		assert.Equal(t, "The Godfather", movies[0].Title)
		assert.Equal(t, model.OscarWinner, movies[0].OscarStatus)
	})

	t.Run("Should map the people theme to the person category", func(t provider.T) {
		var gotReq listRequest
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewDecoder(r.Body).Decode(&gotReq)
			_ = json.NewEncoder(w).Encode(map[string]any{"results": []map[string]any{}})
		}))
		defer server.Close()

		client := New(server.URL, "")
		_, err := client.ListMovies(ctx, model.MovieQuery{
			Theme:       model.ThemePeople,
			SearchQuery: "Clark Gable",
			FetchAll:    true,
		})

		assert.NoError(t, err)
		assert.Equal(t, "person", gotReq.Category)
		assert.True(t, gotReq.FetchAll)
	})

	t.Run("Should fall back to the legacy movies field", func(t provider.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]any{
				"movies": []map[string]any{
					{"id": 42, "title": "Old Deployment", "year": 2001, "genre": "comedy"},
				},
			})
		}))
		defer server.Close()

		client := New(server.URL, "")
		movies, err := client.ListMovies(ctx, model.MovieQuery{Theme: model.ThemeAll})

		assert.NoError(t, err)
		assert.Len(t, movies, 1)
		assert.Equal(t, 42, movies[0].ProviderID())
	})

	t.Run("Should fail on a non-200 status", func(t provider.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer server.Close()

		client := New(server.URL, "")
		_, err := client.ListMovies(ctx, model.MovieQuery{Theme: model.ThemeAll})

		assert.ErrorIs(t, err, ErrBadStatus)
	})
}

func TestProviderUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(ProviderUnitSuite))
}
