package reviews

import (
	"strings"

	"mybooks-app/internal/domain/reviews"

	"gorm.io/gorm"
)

// userReviewsQuery scopes to one user's reviews, joined with books and
// authors for filtering and search. No select is set here: Count needs
// the default count(*), so the handler narrows to reviews.* only when
// fetching rows.
func userReviewsQuery(db *gorm.DB, userID uint) *gorm.DB {
	return db.Model(&reviews.Review{}).
		Joins("JOIN books ON books.id = reviews.book_id").
		Joins("JOIN authors ON authors.id = books.author_id").
		Where("reviews.user_id = ?", userID)
}

func applySearch(q *gorm.DB, term string) *gorm.DB {
	if term == "" {
		return q
	}
	like := "%" + strings.ToLower(term) + "%"
	return q.Where(
		"LOWER(books.title) LIKE ? OR LOWER(authors.name) LIKE ? OR LOWER(reviews.text) LIKE ?",
		like, like, like,
	)
}

var reviewOrderings = map[string]string{
	"created_at": "reviews.created_at",
	"updated_at": "reviews.updated_at",
	"rating":     "reviews.rating",
	"book_title": "books.title",
}

func applyOrdering(q *gorm.DB, param string, fallback string) *gorm.DB {
	if param == "" {
		return q.Order(fallback)
	}
	desc := strings.HasPrefix(param, "-")
	field := strings.TrimPrefix(param, "-")
	col, ok := reviewOrderings[field]
	if !ok {
		return q.Order(fallback)
	}
	if desc {
		return q.Order(col + " DESC")
	}
	return q.Order(col + " ASC")
}
