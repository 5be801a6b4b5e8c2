package catalog_test

import (
	"net/http"
	"strconv"
	"testing"

	"mybooks-app/database"
	"mybooks-app/internal/api/apitest"
	"mybooks-app/internal/api/catalog"
	"mybooks-app/internal/domain/books"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bookPage struct {
	Count    int64             `json:"count"`
	Next     *string           `json:"next"`
	Previous *string           `json:"previous"`
	Results  []catalog.BookDTO `json:"results"`
}

func createBook(t *testing.T, r *gin.Engine, token, title, author, genre string) catalog.BookDTO {
	t.Helper()
	w := apitest.Do(t, r, http.MethodPost, "/api/browse", token, map[string]interface{}{
		"title":       title,
		"author_name": author,
		"genre":       genre,
	})
	apitest.AssertStatus(t, w, http.StatusCreated)
	var dto catalog.BookDTO
	apitest.DecodeJSON(t, w, &dto)
	return dto
}

func TestCreateBookResolvesAuthor(t *testing.T) {
	r := apitest.Setup(t)
	_, token := apitest.CreateUser(t, "reader@example.com")

	first := createBook(t, r, token, "Foundation", "Isaac Asimov", "science_fiction")
	assert.Equal(t, "Isaac Asimov", first.Author.Name)
	assert.EqualValues(t, 1, first.Author.BooksCount)

	// Same author, different spelling: reused, not duplicated.
	second := createBook(t, r, token, "I, Robot", "isaac asimov", "science_fiction")
	assert.Equal(t, first.Author.ID, second.Author.ID)
	assert.EqualValues(t, 2, second.Author.BooksCount)

	var count int64
	require.NoError(t, database.DB.Model(&books.Author{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCreateDuplicateBookIs409(t *testing.T) {
	r := apitest.Setup(t)
	_, token := apitest.CreateUser(t, "reader@example.com")

	createBook(t, r, token, "Foundation", "Isaac Asimov", "science_fiction")

	w := apitest.Do(t, r, http.MethodPost, "/api/browse", token, map[string]interface{}{
		"title":       "Foundation",
		"author_name": "Isaac Asimov",
		"genre":       "science_fiction",
	})
	apitest.AssertStatus(t, w, http.StatusConflict)
	var body map[string]interface{}
	apitest.DecodeJSON(t, w, &body)
	assert.Equal(t, "duplicate_book", body["code"])

	// Same title under a different author is a different book.
	w = apitest.Do(t, r, http.MethodPost, "/api/browse", token, map[string]interface{}{
		"title":       "Foundation",
		"author_name": "Someone Else",
		"genre":       "science_fiction",
	})
	apitest.AssertStatus(t, w, http.StatusCreated)
}

func TestCreateBookValidation(t *testing.T) {
	r := apitest.Setup(t)
	_, token := apitest.CreateUser(t, "reader@example.com")

	// Missing required fields.
	w := apitest.Do(t, r, http.MethodPost, "/api/browse", token, map[string]interface{}{
		"title": "Foundation",
	})
	apitest.AssertStatus(t, w, http.StatusBadRequest)

	// Unknown genre slug.
	w = apitest.Do(t, r, http.MethodPost, "/api/browse", token, map[string]interface{}{
		"title":       "Foundation",
		"author_name": "Isaac Asimov",
		"genre":       "space_opera",
	})
	apitest.AssertStatus(t, w, http.StatusBadRequest)
	var body map[string]interface{}
	apitest.DecodeJSON(t, w, &body)
	assert.Equal(t, "genre", body["field"])
}

func TestListBooksEmptyCatalog(t *testing.T) {
	r := apitest.Setup(t)
	_, token := apitest.CreateUser(t, "reader@example.com")

	w := apitest.Do(t, r, http.MethodGet, "/api/browse", token, nil)
	apitest.AssertStatus(t, w, http.StatusOK)
	var page bookPage
	apitest.DecodeJSON(t, w, &page)
	assert.EqualValues(t, 0, page.Count)
	assert.Empty(t, page.Results)
}

func TestListBooksFilterSearchOrdering(t *testing.T) {
	r := apitest.Setup(t)
	_, token := apitest.CreateUser(t, "reader@example.com")

	createBook(t, r, token, "Foundation", "Isaac Asimov", "science_fiction")
	createBook(t, r, token, "Emma", "Jane Austen", "classics")
	createBook(t, r, token, "Persuasion", "Jane Austen", "classics")

	var page bookPage

	// Default ordering is title ascending.
	w := apitest.Do(t, r, http.MethodGet, "/api/browse", token, nil)
	apitest.AssertStatus(t, w, http.StatusOK)
	apitest.DecodeJSON(t, w, &page)
	assert.EqualValues(t, 3, page.Count)
	require.Len(t, page.Results, 3)
	assert.Equal(t, "Emma", page.Results[0].Title)
	assert.Equal(t, "Foundation", page.Results[1].Title)

	w = apitest.Do(t, r, http.MethodGet, "/api/browse?genre=classics", token, nil)
	apitest.AssertStatus(t, w, http.StatusOK)
	apitest.DecodeJSON(t, w, &page)
	assert.EqualValues(t, 2, page.Count)

	w = apitest.Do(t, r, http.MethodGet, "/api/browse?author_name=Jane+Austen", token, nil)
	apitest.AssertStatus(t, w, http.StatusOK)
	apitest.DecodeJSON(t, w, &page)
	assert.EqualValues(t, 2, page.Count)

	w = apitest.Do(t, r, http.MethodGet, "/api/browse?search=asimov", token, nil)
	apitest.AssertStatus(t, w, http.StatusOK)
	apitest.DecodeJSON(t, w, &page)
	require.Len(t, page.Results, 1)
	assert.Equal(t, "Foundation", page.Results[0].Title)

	w = apitest.Do(t, r, http.MethodGet, "/api/browse?ordering=-title", token, nil)
	apitest.AssertStatus(t, w, http.StatusOK)
	apitest.DecodeJSON(t, w, &page)
	require.Len(t, page.Results, 3)
	assert.Equal(t, "Persuasion", page.Results[0].Title)
}

func TestGetBook(t *testing.T) {
	r := apitest.Setup(t)
	_, token := apitest.CreateUser(t, "reader@example.com")

	created := createBook(t, r, token, "Foundation", "Isaac Asimov", "science_fiction")

	w := apitest.Do(t, r, http.MethodGet, "/api/browse/"+strconv.FormatUint(uint64(created.ID), 10), token, nil)
	apitest.AssertStatus(t, w, http.StatusOK)
	var dto catalog.BookDTO
	apitest.DecodeJSON(t, w, &dto)
	assert.Equal(t, created.ID, dto.ID)
	assert.Equal(t, "Isaac Asimov", dto.Author.Name)

	w = apitest.Do(t, r, http.MethodGet, "/api/browse/9999", token, nil)
	apitest.AssertStatus(t, w, http.StatusNotFound)
}

func TestUpdateBookReassignsAuthor(t *testing.T) {
	r := apitest.Setup(t)
	_, token := apitest.CreateUser(t, "reader@example.com")

	created := createBook(t, r, token, "Foundation", "Isaac Asimov", "science_fiction")
	path := "/api/browse/" + strconv.FormatUint(uint64(created.ID), 10)

	w := apitest.Do(t, r, http.MethodPatch, path, token, map[string]interface{}{
		"tagline":     "The fall of the Galactic Empire",
		"author_name": "Isaac Asimov and Friends",
	})
	apitest.AssertStatus(t, w, http.StatusOK)
	var dto catalog.BookDTO
	apitest.DecodeJSON(t, w, &dto)
	assert.Equal(t, "The fall of the Galactic Empire", dto.Tagline)
	assert.Equal(t, "Isaac Asimov and Friends", dto.Author.Name)
	// Untouched fields survive a partial update.
	assert.Equal(t, "Foundation", dto.Title)
	assert.Equal(t, "science_fiction", dto.Genre)

	w = apitest.Do(t, r, http.MethodPatch, path, token, map[string]interface{}{
		"genre": "space_opera",
	})
	apitest.AssertStatus(t, w, http.StatusBadRequest)

	w = apitest.Do(t, r, http.MethodPatch, "/api/browse/9999", token, map[string]interface{}{
		"title": "Nope",
	})
	apitest.AssertStatus(t, w, http.StatusNotFound)
}

func TestUpdateBookIntoDuplicateIs409(t *testing.T) {
	r := apitest.Setup(t)
	_, token := apitest.CreateUser(t, "reader@example.com")

	createBook(t, r, token, "Foundation", "Isaac Asimov", "science_fiction")
	other := createBook(t, r, token, "I, Robot", "Isaac Asimov", "science_fiction")

	w := apitest.Do(t, r, http.MethodPatch, "/api/browse/"+strconv.FormatUint(uint64(other.ID), 10), token, map[string]interface{}{
		"title": "Foundation",
	})
	apitest.AssertStatus(t, w, http.StatusConflict)
	var body map[string]interface{}
	apitest.DecodeJSON(t, w, &body)
	assert.Equal(t, "duplicate_book", body["code"])
}

func TestDeleteBook(t *testing.T) {
	r := apitest.Setup(t)
	_, token := apitest.CreateUser(t, "reader@example.com")

	created := createBook(t, r, token, "Foundation", "Isaac Asimov", "science_fiction")
	path := "/api/browse/" + strconv.FormatUint(uint64(created.ID), 10)

	w := apitest.Do(t, r, http.MethodDelete, path, token, nil)
	apitest.AssertStatus(t, w, http.StatusNoContent)

	w = apitest.Do(t, r, http.MethodGet, path, token, nil)
	apitest.AssertStatus(t, w, http.StatusNotFound)

	w = apitest.Do(t, r, http.MethodDelete, path, token, nil)
	apitest.AssertStatus(t, w, http.StatusNotFound)
}
