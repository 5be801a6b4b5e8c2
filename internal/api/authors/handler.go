package authors

import (
	"net/http"
	"strings"

	"mybooks-app/database"
	"mybooks-app/internal/api/catalog"
	"mybooks-app/internal/api/pagination"
	"mybooks-app/internal/domain/books"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var authorOrderings = map[string]string{
	"name":       "authors.name",
	"created_at": "authors.created_at",
}

func applyOrdering(q *gorm.DB, param string, fallback string) *gorm.DB {
	if param == "" {
		return q.Order(fallback)
	}
	desc := strings.HasPrefix(param, "-")
	field := strings.TrimPrefix(param, "-")
	col, ok := authorOrderings[field]
	if !ok {
		return q.Order(fallback)
	}
	if desc {
		return q.Order(col + " DESC")
	}
	return q.Order(col + " ASC")
}

// ListAuthors lists every author, shared across all users.
// @Summary List authors
// @Tags authors
// @Produce json
// @Security BearerAuth
// @Param search query string false "Search name and biography"
// @Param ordering query string false "name or created_at, prefix with - to reverse"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size (max 100)"
// @Success 200 {object} pagination.Page
// @Router /api/authors/ [get]
func ListAuthors(c *gin.Context) {
	q := database.DB.Model(&books.Author{})

	if term := c.Query("search"); term != "" {
		like := "%" + strings.ToLower(term) + "%"
		q = q.Where("LOWER(authors.name) LIKE ? OR LOWER(authors.biography) LIKE ?", like, like)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load authors"})
		return
	}

	q = applyOrdering(q, c.Query("ordering"), "authors.name ASC")

	params := pagination.FromRequest(c)
	var rows []books.Author
	if err := q.Offset(params.Offset()).Limit(params.Limit()).Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load authors"})
		return
	}

	ids := make([]uint, 0, len(rows))
	for _, a := range rows {
		ids = append(ids, a.ID)
	}
	counts, err := catalog.AuthorBookCounts(database.DB, ids)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load authors"})
		return
	}

	results := make([]catalog.AuthorDTO, 0, len(rows))
	for _, a := range rows {
		results = append(results, catalog.BuildAuthorDTO(a, counts[a.ID]))
	}

	c.JSON(http.StatusOK, pagination.NewPage(c, params, count, results))
}

// GetAuthor returns one author with their books.
// @Summary Retrieve author
// @Tags authors
// @Produce json
// @Security BearerAuth
// @Param id path int true "Author ID"
// @Success 200 {object} AuthorDetailDTO
// @Failure 404 {object} map[string]interface{}
// @Router /api/authors/{id}/ [get]
func GetAuthor(c *gin.Context) {
	var author books.Author
	if err := database.DB.First(&author, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Author not found"})
		return
	}

	var rows []books.Book
	if err := database.DB.Where("author_id = ?", author.ID).
		Order("title ASC").Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load author"})
		return
	}

	// The author's books nest the author again; reuse the loaded row.
	for i := range rows {
		rows[i].Author = &author
	}
	bookDTOs, err := catalog.BuildBookDTOs(database.DB, rows)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load author"})
		return
	}

	c.JSON(http.StatusOK, AuthorDetailDTO{
		AuthorDTO: catalog.BuildAuthorDTO(author, int64(len(rows))),
		Books:     bookDTOs,
	})
}
