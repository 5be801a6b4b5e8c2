package catalog

import (
	"time"

	"mybooks-app/internal/domain/books"

	"gorm.io/gorm"
)

// ---------- requests

type CreateBookRequest struct {
	Title       string  `json:"title" binding:"required,max=255"`
	AuthorName  string  `json:"author_name" binding:"required"`
	Genre       string  `json:"genre" binding:"required"`
	Tagline     string  `json:"tagline" binding:"max=500"`
	Description string  `json:"description"`
	Image       *string `json:"image"`
}

type UpdateBookRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=255"`
	AuthorName  *string `json:"author_name"`
	Genre       *string `json:"genre"`
	Tagline     *string `json:"tagline" binding:"omitempty,max=500"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
}

// ---------- responses

type AuthorDTO struct {
	ID         uint      `json:"id"`
	Name       string    `json:"name"`
	Image      *string   `json:"image"`
	Biography  string    `json:"biography"`
	BooksCount int64     `json:"books_count"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type BookDTO struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Tagline     string    `json:"tagline"`
	Description string    `json:"description"`
	Image       *string   `json:"image"`
	Genre       string    `json:"genre"`
	Author      AuthorDTO `json:"author"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BuildAuthorDTO maps an author row; booksCount is supplied by the caller
// so list endpoints can batch the counts.
func BuildAuthorDTO(a books.Author, booksCount int64) AuthorDTO {
	return AuthorDTO{
		ID:         a.ID,
		Name:       a.Name,
		Image:      a.Image,
		Biography:  a.Biography,
		BooksCount: booksCount,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

func buildBookDTO(b books.Book, counts map[uint]int64) BookDTO {
	dto := BookDTO{
		ID:          b.ID,
		Title:       b.Title,
		Tagline:     b.Tagline,
		Description: b.Description,
		Image:       b.Image,
		Genre:       b.Genre,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
	if b.Author != nil {
		dto.Author = BuildAuthorDTO(*b.Author, counts[b.AuthorID])
	}
	return dto
}

// BuildBookDTOs maps book rows (with Author preloaded) to response DTOs,
// batching the per-author book counts into a single query.
func BuildBookDTOs(db *gorm.DB, rows []books.Book) ([]BookDTO, error) {
	counts, err := AuthorBookCounts(db, authorIDs(rows))
	if err != nil {
		return nil, err
	}
	out := make([]BookDTO, 0, len(rows))
	for _, b := range rows {
		out = append(out, buildBookDTO(b, counts))
	}
	return out, nil
}

// BuildBookDTO maps a single book row (with Author preloaded).
func BuildBookDTO(db *gorm.DB, b books.Book) (BookDTO, error) {
	dtos, err := BuildBookDTOs(db, []books.Book{b})
	if err != nil {
		return BookDTO{}, err
	}
	return dtos[0], nil
}

func authorIDs(rows []books.Book) []uint {
	seen := make(map[uint]struct{}, len(rows))
	ids := make([]uint, 0, len(rows))
	for _, b := range rows {
		if _, ok := seen[b.AuthorID]; !ok {
			seen[b.AuthorID] = struct{}{}
			ids = append(ids, b.AuthorID)
		}
	}
	return ids
}
