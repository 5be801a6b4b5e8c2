package books

import (
	"time"
)

// Author is shared across all users. Rows are created on demand the first
// time a book names an unknown author and are never deleted through the API.
// The unique index is on lower(name), so spellings differing only in case
// cannot coexist even under concurrent inserts.
type Author struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	Name      string  `gorm:"size:255;not null;uniqueIndex:idx_authors_name,expression:lower(name)" json:"name"`
	Image     *string `gorm:"size:500" json:"image"`
	Biography string  `gorm:"type:text" json:"biography"`

	Books []Book `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Book is a global catalog entity, deduplicated on (title, author).
type Book struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Title       string  `gorm:"size:255;not null;uniqueIndex:idx_books_title_author" json:"title"`
	Tagline     string  `gorm:"size:500" json:"tagline"`
	Description string  `gorm:"type:text" json:"description"`
	Image       *string `gorm:"size:500" json:"image"`
	Genre       string  `gorm:"size:50;not null;index" json:"genre"`

	AuthorID uint    `gorm:"not null;uniqueIndex:idx_books_title_author" json:"-"`
	Author   *Author `gorm:"constraint:OnDelete:CASCADE;" json:"author,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
