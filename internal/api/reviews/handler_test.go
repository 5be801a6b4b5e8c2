package reviews_test

import (
	"net/http"
	"strconv"
	"testing"

	"mybooks-app/internal/api/apitest"
	"mybooks-app/internal/api/catalog"
	"mybooks-app/internal/api/reviews"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reviewPage struct {
	Count    int64               `json:"count"`
	Next     *string             `json:"next"`
	Previous *string             `json:"previous"`
	Results  []reviews.ReviewDTO `json:"results"`
}

func seedBook(t *testing.T, r *gin.Engine, token, title, author, genre string) catalog.BookDTO {
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

func postReview(t *testing.T, r *gin.Engine, token string, bookID uint, rating int, text string) reviews.ReviewDTO {
	t.Helper()
	w := apitest.Do(t, r, http.MethodPost, "/api/reviews", token, map[string]interface{}{
		"book_id": bookID,
		"rating":  rating,
		"text":    text,
	})
	apitest.AssertStatus(t, w, http.StatusCreated)
	var dto reviews.ReviewDTO
	apitest.DecodeJSON(t, w, &dto)
	return dto
}

func TestCreateReview(t *testing.T) {
	r := apitest.Setup(t)
	_, token := apitest.CreateUser(t, "reader@example.com")

	book := seedBook(t, r, token, "Dune", "Frank Herbert", "science_fiction")
	review := postReview(t, r, token, book.ID, 4, "Sand everywhere.")

	assert.Equal(t, 4, review.Rating)
	assert.Equal(t, "Sand everywhere.", review.Text)
	assert.Equal(t, book.ID, review.Book.ID)
	assert.Equal(t, "Frank Herbert", review.Book.Author.Name)
}

func TestCreateReviewValidation(t *testing.T) {
	r := apitest.Setup(t)
	_, token := apitest.CreateUser(t, "reader@example.com")
	book := seedBook(t, r, token, "Dune", "Frank Herbert", "science_fiction")

	// Rating outside 1-5.
	for _, rating := range []int{0, 6, -1} {
		w := apitest.Do(t, r, http.MethodPost, "/api/reviews", token, map[string]interface{}{
			"book_id": book.ID,
			"rating":  rating,
		})
		apitest.AssertStatus(t, w, http.StatusBadRequest)
	}

	// Unknown book.
	w := apitest.Do(t, r, http.MethodPost, "/api/reviews", token, map[string]interface{}{
		"book_id": 9999,
		"rating":  3,
	})
	apitest.AssertStatus(t, w, http.StatusBadRequest)
	var body map[string]interface{}
	apitest.DecodeJSON(t, w, &body)
	assert.Equal(t, "book_id", body["field"])
}

func TestDuplicateReviewIs409(t *testing.T) {
	r := apitest.Setup(t)
	_, token := apitest.CreateUser(t, "reader@example.com")
	book := seedBook(t, r, token, "Dune", "Frank Herbert", "science_fiction")

	postReview(t, r, token, book.ID, 5, "")

	w := apitest.Do(t, r, http.MethodPost, "/api/reviews", token, map[string]interface{}{
		"book_id": book.ID,
		"rating":  2,
	})
	apitest.AssertStatus(t, w, http.StatusConflict)
	var body map[string]interface{}
	apitest.DecodeJSON(t, w, &body)
	assert.Equal(t, "duplicate_review", body["code"])
}

func TestEachUserReviewsIndependently(t *testing.T) {
	r := apitest.Setup(t)
	_, tokenA := apitest.CreateUser(t, "a@example.com")
	_, tokenB := apitest.CreateUser(t, "b@example.com")
	book := seedBook(t, r, tokenA, "Dune", "Frank Herbert", "science_fiction")

	a := postReview(t, r, tokenA, book.ID, 5, "Loved it.")
	b := postReview(t, r, tokenB, book.ID, 2, "Not for me.")
	assert.NotEqual(t, a.ID, b.ID)

	// Each user only sees their own.
	var page reviewPage
	w := apitest.Do(t, r, http.MethodGet, "/api/reviews", tokenA, nil)
	apitest.AssertStatus(t, w, http.StatusOK)
	apitest.DecodeJSON(t, w, &page)
	require.Len(t, page.Results, 1)
	assert.Equal(t, 5, page.Results[0].Rating)

	// Cross-user access reads as missing.
	path := "/api/reviews/" + strconv.FormatUint(uint64(a.ID), 10)
	w = apitest.Do(t, r, http.MethodGet, path, tokenB, nil)
	apitest.AssertStatus(t, w, http.StatusNotFound)
	w = apitest.Do(t, r, http.MethodPatch, path, tokenB, map[string]interface{}{"rating": 1})
	apitest.AssertStatus(t, w, http.StatusNotFound)
	w = apitest.Do(t, r, http.MethodDelete, path, tokenB, nil)
	apitest.AssertStatus(t, w, http.StatusNotFound)
}

func TestListReviewsFiltersAndOrdering(t *testing.T) {
	r := apitest.Setup(t)
	_, token := apitest.CreateUser(t, "reader@example.com")

	dune := seedBook(t, r, token, "Dune", "Frank Herbert", "science_fiction")
	emma := seedBook(t, r, token, "Emma", "Jane Austen", "classics")
	hobbit := seedBook(t, r, token, "The Hobbit", "J.R.R. Tolkien", "fantasy")

	postReview(t, r, token, dune.ID, 5, "Epic.")
	postReview(t, r, token, emma.ID, 3, "Witty.")
	postReview(t, r, token, hobbit.ID, 5, "Cozy adventure.")

	var page reviewPage

	w := apitest.Do(t, r, http.MethodGet, "/api/reviews?rating=5", token, nil)
	apitest.AssertStatus(t, w, http.StatusOK)
	apitest.DecodeJSON(t, w, &page)
	assert.EqualValues(t, 2, page.Count)

	w = apitest.Do(t, r, http.MethodGet, "/api/reviews?genre=classics", token, nil)
	apitest.AssertStatus(t, w, http.StatusOK)
	apitest.DecodeJSON(t, w, &page)
	require.Len(t, page.Results, 1)
	assert.Equal(t, "Emma", page.Results[0].Book.Title)

	// Search reaches the review text and the author name.
	w = apitest.Do(t, r, http.MethodGet, "/api/reviews?search=cozy", token, nil)
	apitest.AssertStatus(t, w, http.StatusOK)
	apitest.DecodeJSON(t, w, &page)
	require.Len(t, page.Results, 1)
	assert.Equal(t, "The Hobbit", page.Results[0].Book.Title)

	w = apitest.Do(t, r, http.MethodGet, "/api/reviews?search=austen", token, nil)
	apitest.AssertStatus(t, w, http.StatusOK)
	apitest.DecodeJSON(t, w, &page)
	require.Len(t, page.Results, 1)
	assert.Equal(t, "Emma", page.Results[0].Book.Title)

	w = apitest.Do(t, r, http.MethodGet, "/api/reviews?ordering=book_title", token, nil)
	apitest.AssertStatus(t, w, http.StatusOK)
	apitest.DecodeJSON(t, w, &page)
	require.Len(t, page.Results, 3)
	assert.Equal(t, "Dune", page.Results[0].Book.Title)
	assert.Equal(t, "The Hobbit", page.Results[2].Book.Title)

	w = apitest.Do(t, r, http.MethodGet, "/api/reviews?ordering=-rating", token, nil)
	apitest.AssertStatus(t, w, http.StatusOK)
	apitest.DecodeJSON(t, w, &page)
	require.Len(t, page.Results, 3)
	assert.Equal(t, 3, page.Results[2].Rating)
}

func TestUpdateReview(t *testing.T) {
	r := apitest.Setup(t)
	_, token := apitest.CreateUser(t, "reader@example.com")
	book := seedBook(t, r, token, "Dune", "Frank Herbert", "science_fiction")
	review := postReview(t, r, token, book.ID, 3, "Fine.")
	path := "/api/reviews/" + strconv.FormatUint(uint64(review.ID), 10)

	w := apitest.Do(t, r, http.MethodPatch, path, token, map[string]interface{}{
		"rating": 5,
	})
	apitest.AssertStatus(t, w, http.StatusOK)
	var dto reviews.ReviewDTO
	apitest.DecodeJSON(t, w, &dto)
	assert.Equal(t, 5, dto.Rating)
	assert.Equal(t, "Fine.", dto.Text)

	w = apitest.Do(t, r, http.MethodPatch, path, token, map[string]interface{}{
		"text": "Grew on me.",
	})
	apitest.AssertStatus(t, w, http.StatusOK)
	apitest.DecodeJSON(t, w, &dto)
	assert.Equal(t, 5, dto.Rating)
	assert.Equal(t, "Grew on me.", dto.Text)

	w = apitest.Do(t, r, http.MethodPatch, path, token, map[string]interface{}{
		"rating": 9,
	})
	apitest.AssertStatus(t, w, http.StatusBadRequest)
}

func TestDeleteReviewAllowsRereview(t *testing.T) {
	r := apitest.Setup(t)
	_, token := apitest.CreateUser(t, "reader@example.com")
	book := seedBook(t, r, token, "Dune", "Frank Herbert", "science_fiction")
	review := postReview(t, r, token, book.ID, 2, "")
	path := "/api/reviews/" + strconv.FormatUint(uint64(review.ID), 10)

	w := apitest.Do(t, r, http.MethodDelete, path, token, nil)
	apitest.AssertStatus(t, w, http.StatusNoContent)

	w = apitest.Do(t, r, http.MethodGet, path, token, nil)
	apitest.AssertStatus(t, w, http.StatusNotFound)

	postReview(t, r, token, book.ID, 4, "Second read was better.")
}
