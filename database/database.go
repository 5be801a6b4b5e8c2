package database

import (
	"os"

	"mybooks-app/internal/domain/books"
	"mybooks-app/internal/domain/collection"
	"mybooks-app/internal/domain/reviews"
	"mybooks-app/internal/domain/users"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		log.Fatal().Msg("DB_URL not set")
	}

	// TranslateError so unique-constraint violations surface as
	// gorm.ErrDuplicatedKey regardless of driver.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	DB = db

	if err := Migrate(DB); err != nil {
		log.Fatal().Err(err).Msg("automigrate failed")
	}

	log.Info().Msg("connected and migrated successfully")
}

// Migrate creates/updates the schema for all domain models. The unique
// indexes declared on the models are what enforce the author, book,
// collection and review dedup rules; handlers rely on them instead of
// check-then-insert.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&users.User{},

		&books.Author{},
		&books.Book{},

		&collection.UserBook{},
		&reviews.Review{},
	)
}
