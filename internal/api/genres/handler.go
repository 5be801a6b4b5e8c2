package genres

import (
	"net/http"
	"sort"
	"strings"

	"mybooks-app/database"
	"mybooks-app/internal/api/pagination"
	"mybooks-app/internal/domain/books"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// bookCountsByGenre returns the number of catalog books per genre slug.
func bookCountsByGenre(db *gorm.DB) (map[string]int64, error) {
	var rows []struct {
		Genre string
		N     int64
	}
	err := db.Model(&books.Book{}).
		Select("genre, COUNT(*) AS n").
		Group("genre").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.Genre] = r.N
	}
	return counts, nil
}

// ListGenres lists every genre with its live book count. The set is fixed;
// genres without books are included.
// @Summary List genres
// @Tags genres
// @Produce json
// @Security BearerAuth
// @Param search query string false "Search genre name and description"
// @Param ordering query string false "name or book_count, prefix with - to reverse"
// @Success 200 {object} pagination.Page
// @Router /api/genres/ [get]
func ListGenres(c *gin.Context) {
	counts, err := bookCountsByGenre(database.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load genres"})
		return
	}

	all := books.Genres()
	results := make([]GenreDTO, 0, len(all))
	search := strings.ToLower(c.Query("search"))
	for _, g := range all {
		if search != "" &&
			!strings.Contains(strings.ToLower(g.Name), search) &&
			!strings.Contains(strings.ToLower(g.Description), search) {
			continue
		}
		results = append(results, GenreDTO{
			ID:          g.ID,
			Name:        g.Name,
			BookCount:   counts[g.ID],
			Description: g.Description,
		})
	}

	ordering := c.DefaultQuery("ordering", "name")
	desc := strings.HasPrefix(ordering, "-")
	switch strings.TrimPrefix(ordering, "-") {
	case "book_count":
		sort.SliceStable(results, func(i, j int) bool { return results[i].BookCount < results[j].BookCount })
	default:
		sort.SliceStable(results, func(i, j int) bool { return results[i].Name < results[j].Name })
	}
	if desc {
		for i, j := 0, len(results)-1; i < j; i, j = i+1, j-1 {
			results[i], results[j] = results[j], results[i]
		}
	}

	// The genre set is small and fixed, so the whole list fits in one page.
	c.JSON(http.StatusOK, pagination.Page{Count: int64(len(results)), Results: results})
}

// GetGenre returns one genre by slug.
// @Summary Retrieve genre
// @Tags genres
// @Produce json
// @Security BearerAuth
// @Param id path string true "Genre slug, e.g. science_fiction"
// @Success 200 {object} GenreDTO
// @Failure 404 {object} map[string]interface{}
// @Router /api/genres/{id}/ [get]
func GetGenre(c *gin.Context) {
	g, ok := books.GenreByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Genre not found"})
		return
	}

	var count int64
	if err := database.DB.Model(&books.Book{}).
		Where("genre = ?", g.ID).Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load genre"})
		return
	}

	c.JSON(http.StatusOK, GenreDTO{
		ID:          g.ID,
		Name:        g.Name,
		BookCount:   count,
		Description: g.Description,
	})
}
