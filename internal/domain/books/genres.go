package books

import "sort"

// Genre is one of the fixed catalog categories a book can belong to.
type Genre struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// genres is the full fixed set, keyed by slug. Order of presentation is
// alphabetical by display name (see Genres).
var genres = map[string]Genre{
	"art":                {ID: "art", Name: "Art", Description: "Visual arts, art history, and artistic techniques"},
	"biography":          {ID: "biography", Name: "Biography", Description: "Non-fiction accounts of real people's lives and experiences"},
	"business":           {ID: "business", Name: "Business", Description: "Business strategy, entrepreneurship, and professional development"},
	"chick_lit":          {ID: "chick_lit", Name: "Chick Lit", Description: "Contemporary fiction targeting primarily female readership"},
	"childrens":          {ID: "childrens", Name: "Children's", Description: "Books specifically written for children and young readers"},
	"christian":          {ID: "christian", Name: "Christian", Description: "Religious and spiritual content from Christian perspective"},
	"classics":           {ID: "classics", Name: "Classics", Description: "Timeless literature of enduring significance and quality"},
	"comics":             {ID: "comics", Name: "Comics", Description: "Sequential art storytelling in comic book format"},
	"contemporary":       {ID: "contemporary", Name: "Contemporary", Description: "Modern fiction reflecting current times and issues"},
	"cookbooks":          {ID: "cookbooks", Name: "Cookbooks", Description: "Recipes, cooking techniques, and culinary arts"},
	"crime":              {ID: "crime", Name: "Crime", Description: "Stories involving criminal activity and law enforcement"},
	"ebooks":             {ID: "ebooks", Name: "Ebooks", Description: "Digital books and electronic publications"},
	"fantasy":            {ID: "fantasy", Name: "Fantasy", Description: "Stories featuring magical elements, mythical creatures, and imaginary worlds"},
	"fiction":            {ID: "fiction", Name: "Fiction", Description: "Narrative literature featuring imaginary characters and events"},
	"gay_and_lesbian":    {ID: "gay_and_lesbian", Name: "Gay and Lesbian", Description: "Literature exploring LGBTQ+ themes and experiences"},
	"graphic_novels":     {ID: "graphic_novels", Name: "Graphic Novels", Description: "Extended comic book narratives with literary depth"},
	"historical_fiction": {ID: "historical_fiction", Name: "Historical Fiction", Description: "Fiction set in the past, recreating historical periods"},
	"history":            {ID: "history", Name: "History", Description: "Non-fiction works about past events, cultures, and civilizations"},
	"horror":             {ID: "horror", Name: "Horror", Description: "Stories designed to frighten, unsettle, or create suspense"},
	"humor_and_comedy":   {ID: "humor_and_comedy", Name: "Humor and Comedy", Description: "Light-hearted, funny, and comedic content"},
	"manga":              {ID: "manga", Name: "Manga", Description: "Japanese comic books and graphic novels"},
	"memoir":             {ID: "memoir", Name: "Memoir", Description: "Personal accounts and autobiographical narratives"},
	"music":              {ID: "music", Name: "Music", Description: "Books about musical history, theory, and musicians"},
	"mystery":            {ID: "mystery", Name: "Mystery", Description: "Stories involving puzzles, crimes, or unexplained events to be solved"},
	"nonfiction":         {ID: "nonfiction", Name: "Nonfiction", Description: "Factual writing on real subjects and events"},
	"paranormal":         {ID: "paranormal", Name: "Paranormal", Description: "Stories involving supernatural or unexplained phenomena"},
	"philosophy":         {ID: "philosophy", Name: "Philosophy", Description: "Works exploring fundamental questions about existence, knowledge, and ethics"},
	"poetry":             {ID: "poetry", Name: "Poetry", Description: "Literary works in verse expressing emotions and ideas"},
	"psychology":         {ID: "psychology", Name: "Psychology", Description: "Study of mind, behavior, and mental processes"},
	"religion":           {ID: "religion", Name: "Religion", Description: "Spiritual and religious texts and teachings"},
	"romance":            {ID: "romance", Name: "Romance", Description: "Stories focusing on romantic relationships and emotional connections"},
	"science":            {ID: "science", Name: "Science", Description: "Educational works about scientific discoveries, theories, and research"},
	"science_fiction":    {ID: "science_fiction", Name: "Science Fiction", Description: "Speculative fiction dealing with futuristic concepts and advanced technology"},
	"self_help":          {ID: "self_help", Name: "Self Help", Description: "Personal development and improvement guides"},
	"spirituality":       {ID: "spirituality", Name: "Spirituality", Description: "Exploration of spiritual beliefs and practices"},
	"sports":             {ID: "sports", Name: "Sports", Description: "Athletic activities, sports history, and competition"},
	"suspense":           {ID: "suspense", Name: "Suspense", Description: "Tension-filled stories with uncertain outcomes"},
	"thriller":           {ID: "thriller", Name: "Thriller", Description: "Fast-paced stories with constant danger and excitement"},
	"travel":             {ID: "travel", Name: "Travel", Description: "Travel guides, adventure stories, and cultural exploration"},
	"young_adult":        {ID: "young_adult", Name: "Young Adult", Description: "Literature targeted at teenage and young adult readers"},
}

// ValidGenre reports whether slug names one of the fixed genres.
func ValidGenre(slug string) bool {
	_, ok := genres[slug]
	return ok
}

// GenreByID returns the genre for slug, if it exists.
func GenreByID(slug string) (Genre, bool) {
	g, ok := genres[slug]
	return g, ok
}

// Genres returns all genres sorted alphabetically by display name.
func Genres() []Genre {
	out := make([]Genre, 0, len(genres))
	for _, g := range genres {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
