package books

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GetOrCreateAuthor resolves name to an author row, creating it if absent.
// Lookup is case-insensitive. The create goes through INSERT ... ON CONFLICT
// DO NOTHING so two racing requests for the same new name end with one row;
// the loser re-reads the winner's record.
func GetOrCreateAuthor(db *gorm.DB, name string) (*Author, error) {
	var author Author
	err := db.Where("LOWER(name) = LOWER(?)", name).First(&author).Error
	if err == nil {
		return &author, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	// Bare DO NOTHING, since the unique index is on the expression
	// lower(name) and cannot be named as a column conflict target.
	author = Author{Name: name}
	res := db.Clauses(clause.OnConflict{
		DoNothing: true,
	}).Create(&author)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected > 0 {
		return &author, nil
	}

	// Lost the race; the winner's row exists now.
	if err := db.Where("LOWER(name) = LOWER(?)", name).First(&author).Error; err != nil {
		return nil, err
	}
	return &author, nil
}

// GetOrCreateBook resolves (title, author name) to the shared catalog row,
// creating book and author as needed. The candidate's metadata is only used
// when the book does not exist yet.
func GetOrCreateBook(db *gorm.DB, candidate Book, authorName string) (*Book, error) {
	author, err := GetOrCreateAuthor(db, authorName)
	if err != nil {
		return nil, err
	}

	candidate.AuthorID = author.ID
	res := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "title"}, {Name: "author_id"}},
		DoNothing: true,
	}).Create(&candidate)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		if err := db.Where("title = ? AND author_id = ?", candidate.Title, author.ID).
			First(&candidate).Error; err != nil {
			return nil, err
		}
	}

	candidate.Author = author
	return &candidate, nil
}
