package catalog

import (
	"strings"

	"mybooks-app/internal/domain/books"

	"gorm.io/gorm"
)

// catalogQuery is the base for browse listings: all books joined with their
// author so search and ordering can reach author columns. No select is set
// here: Count needs the default count(*), so the handler narrows to books.*
// only when fetching rows.
func catalogQuery(db *gorm.DB) *gorm.DB {
	return db.Model(&books.Book{}).
		Joins("JOIN authors ON authors.id = books.author_id")
}

// applySearch narrows q to books whose title, tagline, description or author
// name contains term, case-insensitively.
func applySearch(q *gorm.DB, term string) *gorm.DB {
	if term == "" {
		return q
	}
	like := "%" + strings.ToLower(term) + "%"
	return q.Where(
		"LOWER(books.title) LIKE ? OR LOWER(books.tagline) LIKE ? OR LOWER(books.description) LIKE ? OR LOWER(authors.name) LIKE ?",
		like, like, like, like,
	)
}

var catalogOrderings = map[string]string{
	"title":       "books.title",
	"created_at":  "books.created_at",
	"author_name": "authors.name",
}

// applyOrdering maps an ordering param ("field" or "-field") onto a column
// from allowed, falling back to fallback for unknown fields.
func applyOrdering(q *gorm.DB, param string, allowed map[string]string, fallback string) *gorm.DB {
	if param == "" {
		return q.Order(fallback)
	}
	desc := strings.HasPrefix(param, "-")
	field := strings.TrimPrefix(param, "-")
	col, ok := allowed[field]
	if !ok {
		return q.Order(fallback)
	}
	if desc {
		return q.Order(col + " DESC")
	}
	return q.Order(col + " ASC")
}

// AuthorBookCounts returns the number of catalog books per author id.
func AuthorBookCounts(db *gorm.DB, ids []uint) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(ids))
	if len(ids) == 0 {
		return counts, nil
	}

	var rows []struct {
		AuthorID uint
		N        int64
	}
	err := db.Model(&books.Book{}).
		Select("author_id, COUNT(*) AS n").
		Where("author_id IN ?", ids).
		Group("author_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		counts[r.AuthorID] = r.N
	}
	return counts, nil
}
