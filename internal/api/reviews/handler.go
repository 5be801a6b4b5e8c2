package reviews

import (
	"errors"
	"net/http"

	"mybooks-app/database"
	"mybooks-app/internal/api/pagination"
	"mybooks-app/internal/domain/books"
	"mybooks-app/internal/domain/reviews"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func mustUserID(c *gin.Context) (uint, bool) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return 0, false
	}
	return userID, true
}

// ListReviews lists the authenticated user's reviews.
// @Summary List reviews
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Param rating query int false "Filter by exact rating (1-5)"
// @Param genre query string false "Filter by the book's genre slug"
// @Param search query string false "Search book title, author name and review text"
// @Param ordering query string false "created_at, updated_at, rating or book_title, prefix with - to reverse"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size (max 100)"
// @Success 200 {object} pagination.Page
// @Router /api/reviews/ [get]
func ListReviews(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	q := userReviewsQuery(database.DB, userID)

	if rating := c.Query("rating"); rating != "" {
		q = q.Where("reviews.rating = ?", rating)
	}
	if genre := c.Query("genre"); genre != "" {
		q = q.Where("books.genre = ?", genre)
	}
	q = applySearch(q, c.Query("search"))

	var count int64
	if err := q.Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load reviews"})
		return
	}

	q = applyOrdering(q, c.Query("ordering"), "reviews.created_at DESC")

	params := pagination.FromRequest(c)
	var rows []reviews.Review
	if err := q.Select("reviews.*").Preload("Book.Author").
		Offset(params.Offset()).Limit(params.Limit()).
		Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load reviews"})
		return
	}

	results := make([]ReviewDTO, 0, len(rows))
	for _, r := range rows {
		dto, err := buildReviewDTO(database.DB, r)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load reviews"})
			return
		}
		results = append(results, dto)
	}

	c.JSON(http.StatusOK, pagination.NewPage(c, params, count, results))
}

// CreateReview rates a book. The book need not be in the user's collection
// or marked finished.
// @Summary Create review
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 201 {object} ReviewDTO
// @Failure 400 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /api/reviews/ [post]
func CreateReview(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var book books.Book
	if err := database.DB.Preload("Author").First(&book, "id = ?", req.BookID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Book not found", "field": "book_id"})
		return
	}

	review := reviews.Review{
		UserID: userID,
		BookID: book.ID,
		Rating: req.Rating,
		Text:   req.Text,
	}
	if err := database.DB.Create(&review).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"error": "You have already reviewed this book", "code": "duplicate_review"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create review"})
		return
	}
	review.Book = &book

	dto, err := buildReviewDTO(database.DB, review)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load review"})
		return
	}
	c.JSON(http.StatusCreated, dto)
}

// GetReview returns one of the user's reviews.
// @Summary Retrieve review
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Param id path int true "Review ID"
// @Success 200 {object} ReviewDTO
// @Failure 404 {object} map[string]interface{}
// @Router /api/reviews/{id}/ [get]
func GetReview(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var review reviews.Review
	if err := database.DB.Preload("Book.Author").
		First(&review, "id = ? AND user_id = ?", c.Param("id"), userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	dto, err := buildReviewDTO(database.DB, review)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load review"})
		return
	}
	c.JSON(http.StatusOK, dto)
}

// UpdateReview changes rating and/or text. The book association cannot be
// changed. Serves both PATCH and PUT.
// @Summary Update review
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Review ID"
// @Success 200 {object} ReviewDTO
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/reviews/{id}/ [patch]
func UpdateReview(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var review reviews.Review
	if err := database.DB.Preload("Book.Author").
		First(&review, "id = ? AND user_id = ?", c.Param("id"), userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	if req.Rating != nil {
		review.Rating = *req.Rating
	}
	if req.Text != nil {
		review.Text = *req.Text
	}

	if err := database.DB.Model(&review).
		Select("rating", "text").
		Updates(&review).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update review"})
		return
	}

	dto, err := buildReviewDTO(database.DB, review)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load review"})
		return
	}
	c.JSON(http.StatusOK, dto)
}

// DeleteReview removes one of the user's reviews.
// @Summary Delete review
// @Tags reviews
// @Security BearerAuth
// @Param id path int true "Review ID"
// @Success 204
// @Failure 404 {object} map[string]interface{}
// @Router /api/reviews/{id}/ [delete]
func DeleteReview(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var review reviews.Review
	if err := database.DB.
		First(&review, "id = ? AND user_id = ?", c.Param("id"), userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	if err := database.DB.Delete(&review).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete review"})
		return
	}
	c.Status(http.StatusNoContent)
}
