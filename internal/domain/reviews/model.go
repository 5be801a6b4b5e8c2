package reviews

import (
	"time"

	"mybooks-app/internal/domain/books"
)

// Review is a user's rating of a catalog book. One review per (user, book),
// enforced by the composite unique index. Reviewing does not require the
// book to be marked finished.
type Review struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"not null;uniqueIndex:idx_reviews_user_book" json:"-"`

	BookID uint        `gorm:"not null;uniqueIndex:idx_reviews_user_book" json:"-"`
	Book   *books.Book `gorm:"constraint:OnDelete:CASCADE;" json:"book,omitempty"`

	Rating int    `gorm:"not null" json:"rating"`
	Text   string `gorm:"type:text" json:"text"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
