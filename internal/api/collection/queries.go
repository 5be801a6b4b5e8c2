package collection

import (
	"strings"

	"mybooks-app/internal/domain/collection"

	"gorm.io/gorm"
)

// userEntriesQuery scopes to one user's collection, joined with the book
// and author tables so filters and search can reach their columns. No
// select is set here: Count needs the default count(*), so the handler
// narrows to user_books.* only when fetching rows.
func userEntriesQuery(db *gorm.DB, userID uint) *gorm.DB {
	return db.Model(&collection.UserBook{}).
		Joins("JOIN books ON books.id = user_books.book_id").
		Joins("JOIN authors ON authors.id = books.author_id").
		Where("user_books.user_id = ?", userID)
}

func applySearch(q *gorm.DB, term string) *gorm.DB {
	if term == "" {
		return q
	}
	like := "%" + strings.ToLower(term) + "%"
	return q.Where(
		"LOWER(books.title) LIKE ? OR LOWER(authors.name) LIKE ? OR LOWER(books.description) LIKE ?",
		like, like, like,
	)
}

var entryOrderings = map[string]string{
	"date_added":    "user_books.date_added",
	"date_started":  "user_books.date_started",
	"date_finished": "user_books.date_finished",
}

func applyOrdering(q *gorm.DB, param string, fallback string) *gorm.DB {
	if param == "" {
		return q.Order(fallback)
	}
	desc := strings.HasPrefix(param, "-")
	field := strings.TrimPrefix(param, "-")
	col, ok := entryOrderings[field]
	if !ok {
		return q.Order(fallback)
	}
	if desc {
		return q.Order(col + " DESC")
	}
	return q.Order(col + " ASC")
}
