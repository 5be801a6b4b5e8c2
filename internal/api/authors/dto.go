package authors

import (
	"mybooks-app/internal/api/catalog"
)

// AuthorDetailDTO is the single-author shape: the author plus their books.
type AuthorDetailDTO struct {
	catalog.AuthorDTO
	Books []catalog.BookDTO `json:"books"`
}
