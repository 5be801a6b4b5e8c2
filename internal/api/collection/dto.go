package collection

import (
	"time"

	"mybooks-app/internal/api/catalog"
)

// ---------- requests

// AddBookRequest adds a book to the collection. Provide either book_id for
// an existing catalog book, or title/author_name/genre to create (or reuse)
// one inline — never both.
type AddBookRequest struct {
	BookID *uint `json:"book_id"`

	Title       *string `json:"title" binding:"omitempty,max=255"`
	AuthorName  *string `json:"author_name"`
	Genre       *string `json:"genre"`
	Tagline     string  `json:"tagline" binding:"max=500"`
	Description string  `json:"description"`
	Image       *string `json:"image"`

	ReadingStatus *string `json:"reading_status"`
}

func (r AddBookRequest) hasInlineFields() bool {
	return r.Title != nil || r.AuthorName != nil || r.Genre != nil
}

type UpdateEntryRequest struct {
	ReadingStatus *string `json:"reading_status"`
}

// ---------- responses

type EntryDTO struct {
	ID            uint            `json:"id"`
	Book          catalog.BookDTO `json:"book"`
	ReadingStatus string          `json:"reading_status"`
	DateAdded     time.Time       `json:"date_added"`
	DateStarted   *time.Time      `json:"date_started"`
	DateFinished  *time.Time      `json:"date_finished"`
}

type EntryReviewDTO struct {
	ID        uint      `json:"id"`
	Rating    int       `json:"rating"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EntryDetailDTO is the single-entry shape: the collection row plus the
// user's review of the book, when one exists.
type EntryDetailDTO struct {
	EntryDTO
	Review *EntryReviewDTO `json:"review"`
}
