package catalog

import (
	"errors"
	"fmt"
	"net/http"

	"mybooks-app/database"
	"mybooks-app/internal/api/pagination"
	"mybooks-app/internal/domain/books"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ListBooks browses the shared catalog.
// @Summary Browse catalog
// @Description List all catalog books with search, filtering and ordering
// @Tags browse
// @Produce json
// @Security BearerAuth
// @Param genre query string false "Filter by genre slug"
// @Param author_name query string false "Filter by exact author name"
// @Param search query string false "Search title, tagline, description and author name"
// @Param ordering query string false "title, created_at or author_name, prefix with - to reverse"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size (max 100)"
// @Success 200 {object} pagination.Page
// @Router /api/browse/ [get]
func ListBooks(c *gin.Context) {
	q := catalogQuery(database.DB)

	if genre := c.Query("genre"); genre != "" {
		q = q.Where("books.genre = ?", genre)
	}
	if authorName := c.Query("author_name"); authorName != "" {
		q = q.Where("authors.name = ?", authorName)
	}
	q = applySearch(q, c.Query("search"))

	var count int64
	if err := q.Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load books"})
		return
	}

	q = applyOrdering(q, c.Query("ordering"), catalogOrderings, "books.title ASC")

	params := pagination.FromRequest(c)
	var rows []books.Book
	if err := q.Select("books.*").Preload("Author").
		Offset(params.Offset()).Limit(params.Limit()).
		Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load books"})
		return
	}

	results, err := BuildBookDTOs(database.DB, rows)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load books"})
		return
	}

	c.JSON(http.StatusOK, pagination.NewPage(c, params, count, results))
}

// GetBook returns one catalog book.
// @Summary Retrieve catalog book
// @Tags browse
// @Produce json
// @Security BearerAuth
// @Param id path int true "Book ID"
// @Success 200 {object} BookDTO
// @Failure 404 {object} map[string]interface{}
// @Router /api/browse/{id}/ [get]
func GetBook(c *gin.Context) {
	var book books.Book
	if err := database.DB.Preload("Author").
		First(&book, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Book not found"})
		return
	}

	dto, err := BuildBookDTO(database.DB, book)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load book"})
		return
	}
	c.JSON(http.StatusOK, dto)
}

// CreateBook adds a book to the shared catalog, resolving the author by
// name (created on demand).
// @Summary Create catalog book
// @Tags browse
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 201 {object} BookDTO
// @Failure 400 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /api/browse/ [post]
func CreateBook(c *gin.Context) {
	var req CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !books.ValidGenre(req.Genre) {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid genre %q", req.Genre), "field": "genre"})
		return
	}

	book := books.Book{
		Title:       req.Title,
		Tagline:     req.Tagline,
		Description: req.Description,
		Image:       req.Image,
		Genre:       req.Genre,
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		author, err := books.GetOrCreateAuthor(tx, req.AuthorName)
		if err != nil {
			return err
		}
		book.AuthorID = author.ID
		if err := tx.Create(&book).Error; err != nil {
			return err
		}
		book.Author = author
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"error": "This book already exists for that author", "code": "duplicate_book"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create book"})
		return
	}

	dto, err := BuildBookDTO(database.DB, book)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load book"})
		return
	}
	c.JSON(http.StatusCreated, dto)
}

// UpdateBook updates catalog metadata, reassigning the author by name if
// requested. Serves both PUT and PATCH; absent fields are left alone.
// @Summary Update catalog book
// @Tags browse
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Book ID"
// @Success 200 {object} BookDTO
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /api/browse/{id}/ [patch]
func UpdateBook(c *gin.Context) {
	var req UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Genre != nil && !books.ValidGenre(*req.Genre) {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid genre %q", *req.Genre), "field": "genre"})
		return
	}

	var book books.Book
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&book, "id = ?", c.Param("id")).Error; err != nil {
			return err
		}

		if req.Title != nil {
			book.Title = *req.Title
		}
		if req.Genre != nil {
			book.Genre = *req.Genre
		}
		if req.Tagline != nil {
			book.Tagline = *req.Tagline
		}
		if req.Description != nil {
			book.Description = *req.Description
		}
		if req.Image != nil {
			book.Image = req.Image
		}
		if req.AuthorName != nil {
			author, err := books.GetOrCreateAuthor(tx, *req.AuthorName)
			if err != nil {
				return err
			}
			book.AuthorID = author.ID
		}

		return tx.Save(&book).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Book not found"})
			return
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"error": "This book already exists for that author", "code": "duplicate_book"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update book"})
		return
	}

	if err := database.DB.Preload("Author").First(&book, "id = ?", book.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load book"})
		return
	}
	dto, err := BuildBookDTO(database.DB, book)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load book"})
		return
	}
	c.JSON(http.StatusOK, dto)
}

// DeleteBook removes a catalog book. Collection entries and reviews that
// reference it cascade away.
// @Summary Delete catalog book
// @Tags browse
// @Security BearerAuth
// @Param id path int true "Book ID"
// @Success 204
// @Failure 404 {object} map[string]interface{}
// @Router /api/browse/{id}/ [delete]
func DeleteBook(c *gin.Context) {
	var book books.Book
	if err := database.DB.First(&book, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Book not found"})
		return
	}

	if err := database.DB.Delete(&book).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete book"})
		return
	}
	c.Status(http.StatusNoContent)
}
