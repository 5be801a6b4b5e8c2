package collection

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"mybooks-app/database"
	"mybooks-app/internal/api/catalog"
	"mybooks-app/internal/api/pagination"
	"mybooks-app/internal/domain/books"
	"mybooks-app/internal/domain/collection"
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

func buildEntryDTO(db *gorm.DB, e collection.UserBook) (EntryDTO, error) {
	dto := EntryDTO{
		ID:            e.ID,
		ReadingStatus: e.ReadingStatus,
		DateAdded:     e.DateAdded,
		DateStarted:   e.DateStarted,
		DateFinished:  e.DateFinished,
	}
	if e.Book == nil {
		return dto, nil
	}
	book, err := catalog.BuildBookDTO(db, *e.Book)
	if err != nil {
		return dto, err
	}
	dto.Book = book
	return dto, nil
}

// ListEntries lists the authenticated user's collection.
// @Summary List collection
// @Description List the user's collection with filtering, search and ordering
// @Tags collection
// @Produce json
// @Security BearerAuth
// @Param reading_status query string false "want_to_read, reading, finished or dropped"
// @Param genre query string false "Filter by the book's genre slug"
// @Param search query string false "Search book title, author name and description"
// @Param ordering query string false "date_added, date_started or date_finished, prefix with - to reverse"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size (max 100)"
// @Success 200 {object} pagination.Page
// @Router /api/books/ [get]
func ListEntries(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	q := userEntriesQuery(database.DB, userID)

	if status := c.Query("reading_status"); status != "" {
		q = q.Where("user_books.reading_status = ?", status)
	}
	if genre := c.Query("genre"); genre != "" {
		q = q.Where("books.genre = ?", genre)
	}
	q = applySearch(q, c.Query("search"))

	var count int64
	if err := q.Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load collection"})
		return
	}

	q = applyOrdering(q, c.Query("ordering"), "user_books.date_added DESC")

	params := pagination.FromRequest(c)
	var rows []collection.UserBook
	if err := q.Select("user_books.*").Preload("Book.Author").
		Offset(params.Offset()).Limit(params.Limit()).
		Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load collection"})
		return
	}

	results := make([]EntryDTO, 0, len(rows))
	for _, e := range rows {
		dto, err := buildEntryDTO(database.DB, e)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load collection"})
			return
		}
		results = append(results, dto)
	}

	c.JSON(http.StatusOK, pagination.NewPage(c, params, count, results))
}

// AddBook adds a book to the user's collection, creating or reusing the
// catalog book when inline fields are given.
// @Summary Add book to collection
// @Tags collection
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 201 {object} EntryDTO
// @Failure 400 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /api/books/ [post]
func AddBook(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req AddBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hasBookID := req.BookID != nil
	hasInline := req.hasInlineFields()
	switch {
	case !hasBookID && !hasInline:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Either provide book_id or book creation fields (title, author_name, genre)"})
		return
	case hasBookID && hasInline:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Provide either book_id or book creation fields, not both"})
		return
	}

	status := collection.StatusWantToRead
	if req.ReadingStatus != nil {
		if !collection.ValidStatus(*req.ReadingStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid reading_status %q", *req.ReadingStatus), "field": "reading_status"})
			return
		}
		status = *req.ReadingStatus
	}

	var entry collection.UserBook
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var book *books.Book

		if hasBookID {
			var existing books.Book
			if err := tx.Preload("Author").First(&existing, "id = ?", *req.BookID).Error; err != nil {
				return err
			}
			book = &existing
		} else {
			if req.Title == nil || req.AuthorName == nil || req.Genre == nil {
				return errIncompleteBook
			}
			if !books.ValidGenre(*req.Genre) {
				return &invalidGenreError{genre: *req.Genre}
			}
			resolved, err := books.GetOrCreateBook(tx, books.Book{
				Title:       *req.Title,
				Tagline:     req.Tagline,
				Description: req.Description,
				Image:       req.Image,
				Genre:       *req.Genre,
			}, *req.AuthorName)
			if err != nil {
				return err
			}
			book = resolved
		}

		// One clock reading for the whole row, so an initial "reading" or
		// "finished" status never stamps a date before date_added.
		now := time.Now()
		entry = collection.UserBook{
			UserID:        userID,
			BookID:        book.ID,
			ReadingStatus: collection.StatusWantToRead,
			DateAdded:     now,
		}
		entry.ApplyStatus(status, now)

		if err := tx.Create(&entry).Error; err != nil {
			return err
		}
		entry.Book = book
		return nil
	})
	if err != nil {
		var genreErr *invalidGenreError
		switch {
		case errors.Is(err, gorm.ErrDuplicatedKey):
			c.JSON(http.StatusConflict, gin.H{"error": "This book is already in your collection", "code": "duplicate_book"})
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Book not found", "field": "book_id"})
		case errors.Is(err, errIncompleteBook):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Book creation requires title, author_name and genre"})
		case errors.As(err, &genreErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid genre %q", genreErr.genre), "field": "genre"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add book"})
		}
		return
	}

	dto, err := buildEntryDTO(database.DB, entry)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load collection entry"})
		return
	}
	c.JSON(http.StatusCreated, dto)
}

// GetEntry returns one collection entry, including the user's review of
// the book when present.
// @Summary Retrieve collection entry
// @Tags collection
// @Produce json
// @Security BearerAuth
// @Param id path int true "Entry ID"
// @Success 200 {object} EntryDetailDTO
// @Failure 404 {object} map[string]interface{}
// @Router /api/books/{id}/ [get]
func GetEntry(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var entry collection.UserBook
	if err := database.DB.Preload("Book.Author").
		First(&entry, "id = ? AND user_id = ?", c.Param("id"), userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	dto, err := buildEntryDTO(database.DB, entry)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load collection entry"})
		return
	}

	detail := EntryDetailDTO{EntryDTO: dto}
	var review reviews.Review
	switch err := database.DB.
		First(&review, "user_id = ? AND book_id = ?", userID, entry.BookID).Error; {
	case err == nil:
		detail.Review = &EntryReviewDTO{
			ID:        review.ID,
			Rating:    review.Rating,
			Text:      review.Text,
			CreatedAt: review.CreatedAt,
			UpdatedAt: review.UpdatedAt,
		}
	case !errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load collection entry"})
		return
	}

	c.JSON(http.StatusOK, detail)
}

// UpdateEntry changes the reading status. The first move to "reading" sets
// date_started, the first move to "finished" sets date_finished; neither is
// ever reset. Serves both PATCH and PUT.
// @Summary Update reading status
// @Tags collection
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Entry ID"
// @Success 200 {object} EntryDTO
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/books/{id}/ [patch]
func UpdateEntry(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req UpdateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var entry collection.UserBook
	if err := database.DB.Preload("Book.Author").
		First(&entry, "id = ? AND user_id = ?", c.Param("id"), userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	if req.ReadingStatus != nil {
		if !collection.ValidStatus(*req.ReadingStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid reading_status %q", *req.ReadingStatus), "field": "reading_status"})
			return
		}
		entry.ApplyStatus(*req.ReadingStatus, time.Now())

		if err := database.DB.Model(&entry).
			Select("reading_status", "date_started", "date_finished").
			Updates(&entry).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update collection entry"})
			return
		}
	}

	dto, err := buildEntryDTO(database.DB, entry)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load collection entry"})
		return
	}
	c.JSON(http.StatusOK, dto)
}

// RemoveEntry deletes the junction row only; the catalog book and author
// stay.
// @Summary Remove book from collection
// @Tags collection
// @Security BearerAuth
// @Param id path int true "Entry ID"
// @Success 204
// @Failure 404 {object} map[string]interface{}
// @Router /api/books/{id}/ [delete]
func RemoveEntry(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var entry collection.UserBook
	if err := database.DB.
		First(&entry, "id = ? AND user_id = ?", c.Param("id"), userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	if err := database.DB.Delete(&entry).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove book"})
		return
	}
	c.Status(http.StatusNoContent)
}

var errIncompleteBook = errors.New("incomplete book fields")

type invalidGenreError struct {
	genre string
}

func (e *invalidGenreError) Error() string {
	return "invalid genre " + e.genre
}
