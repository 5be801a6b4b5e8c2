package collection

import (
	"time"

	"mybooks-app/internal/domain/books"
)

const (
	StatusWantToRead = "want_to_read"
	StatusReading    = "reading"
	StatusFinished   = "finished"
	StatusDropped    = "dropped"
)

// ValidStatus reports whether s is one of the four reading statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusWantToRead, StatusReading, StatusFinished, StatusDropped:
		return true
	}
	return false
}

// UserBook links a user to a catalog book. One row per (user, book),
// enforced by the composite unique index.
type UserBook struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"not null;uniqueIndex:idx_user_books_user_book" json:"-"`

	BookID uint        `gorm:"not null;uniqueIndex:idx_user_books_user_book" json:"-"`
	Book   *books.Book `gorm:"constraint:OnDelete:CASCADE;" json:"book,omitempty"`

	ReadingStatus string `gorm:"size:20;not null;default:'want_to_read';index" json:"reading_status"`

	DateAdded    time.Time  `gorm:"autoCreateTime" json:"date_added"`
	DateStarted  *time.Time `json:"date_started"`
	DateFinished *time.Time `json:"date_finished"`
}

// ApplyStatus records a status change. The first arrival at "reading" sets
// DateStarted and the first arrival at "finished" sets DateFinished; both are
// one-shot and are never cleared or reset by later transitions. Any status
// may follow any other.
func (ub *UserBook) ApplyStatus(status string, now time.Time) {
	if status == StatusReading && ub.DateStarted == nil {
		ub.DateStarted = &now
	}
	if status == StatusFinished && ub.DateFinished == nil {
		ub.DateFinished = &now
	}
	ub.ReadingStatus = status
}
