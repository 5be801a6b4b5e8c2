package genres_test

import (
	"net/http"
	"testing"

	"mybooks-app/internal/api/apitest"
	"mybooks-app/internal/api/genres"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type genrePage struct {
	Count   int64             `json:"count"`
	Results []genres.GenreDTO `json:"results"`
}

func seedBook(t *testing.T, r *gin.Engine, token, title, author, genre string) {
	t.Helper()
	w := apitest.Do(t, r, http.MethodPost, "/api/browse", token, map[string]interface{}{
		"title":       title,
		"author_name": author,
		"genre":       genre,
	})
	apitest.AssertStatus(t, w, http.StatusCreated)
}

func TestListGenresIncludesEmptyOnes(t *testing.T) {
	r := apitest.Setup(t)
	_, token := apitest.CreateUser(t, "reader@example.com")

	w := apitest.Do(t, r, http.MethodGet, "/api/genres", token, nil)
	apitest.AssertStatus(t, w, http.StatusOK)
	var page genrePage
	apitest.DecodeJSON(t, w, &page)

	assert.EqualValues(t, 40, page.Count)
	require.Len(t, page.Results, 40)
	// Alphabetical by name; every count starts at zero.
	assert.Equal(t, "Art", page.Results[0].Name)
	for _, g := range page.Results {
		assert.Zero(t, g.BookCount)
	}
}

func TestListGenresBookCountsAndOrdering(t *testing.T) {
	r := apitest.Setup(t)
	_, token := apitest.CreateUser(t, "reader@example.com")

	seedBook(t, r, token, "Dune", "Frank Herbert", "science_fiction")
	seedBook(t, r, token, "Hyperion", "Dan Simmons", "science_fiction")
	seedBook(t, r, token, "Emma", "Jane Austen", "classics")

	w := apitest.Do(t, r, http.MethodGet, "/api/genres?ordering=-book_count", token, nil)
	apitest.AssertStatus(t, w, http.StatusOK)
	var page genrePage
	apitest.DecodeJSON(t, w, &page)
	require.Len(t, page.Results, 40)
	assert.Equal(t, "science_fiction", page.Results[0].ID)
	assert.EqualValues(t, 2, page.Results[0].BookCount)
	assert.Equal(t, "classics", page.Results[1].ID)
	assert.EqualValues(t, 1, page.Results[1].BookCount)
}

func TestListGenresSearch(t *testing.T) {
	r := apitest.Setup(t)
	_, token := apitest.CreateUser(t, "reader@example.com")

	w := apitest.Do(t, r, http.MethodGet, "/api/genres?search=fiction", token, nil)
	apitest.AssertStatus(t, w, http.StatusOK)
	var page genrePage
	apitest.DecodeJSON(t, w, &page)

	require.NotEmpty(t, page.Results)
	ids := make(map[string]bool, len(page.Results))
	for _, g := range page.Results {
		ids[g.ID] = true
	}
	// Matches on both name and description.
	assert.True(t, ids["fiction"])
	assert.True(t, ids["science_fiction"])
	assert.True(t, ids["historical_fiction"])
	assert.False(t, ids["poetry"])
}

func TestGetGenre(t *testing.T) {
	r := apitest.Setup(t)
	_, token := apitest.CreateUser(t, "reader@example.com")

	seedBook(t, r, token, "Dune", "Frank Herbert", "science_fiction")

	w := apitest.Do(t, r, http.MethodGet, "/api/genres/science_fiction", token, nil)
	apitest.AssertStatus(t, w, http.StatusOK)
	var g genres.GenreDTO
	apitest.DecodeJSON(t, w, &g)
	assert.Equal(t, "Science Fiction", g.Name)
	assert.EqualValues(t, 1, g.BookCount)

	w = apitest.Do(t, r, http.MethodGet, "/api/genres/western", token, nil)
	apitest.AssertStatus(t, w, http.StatusNotFound)
}
