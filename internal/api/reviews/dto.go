package reviews

import (
	"time"

	"mybooks-app/internal/api/catalog"
	"mybooks-app/internal/domain/reviews"

	"gorm.io/gorm"
)

// ---------- requests

type CreateReviewRequest struct {
	BookID uint   `json:"book_id" binding:"required"`
	Rating int    `json:"rating" binding:"required,gte=1,lte=5"`
	Text   string `json:"text"`
}

type UpdateReviewRequest struct {
	Rating *int    `json:"rating" binding:"omitempty,gte=1,lte=5"`
	Text   *string `json:"text"`
}

// ---------- responses

type ReviewDTO struct {
	ID        uint            `json:"id"`
	Book      catalog.BookDTO `json:"book"`
	Rating    int             `json:"rating"`
	Text      string          `json:"text"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func buildReviewDTO(db *gorm.DB, r reviews.Review) (ReviewDTO, error) {
	dto := ReviewDTO{
		ID:        r.ID,
		Rating:    r.Rating,
		Text:      r.Text,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	if r.Book != nil {
		book, err := catalog.BuildBookDTO(db, *r.Book)
		if err != nil {
			return dto, err
		}
		dto.Book = book
	}
	return dto, nil
}
