package genres

type GenreDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	BookCount   int64  `json:"book_count"`
	Description string `json:"description"`
}
