package routes

import (
	"net/http"

	authapi "mybooks-app/internal/api/auth"
	authorsapi "mybooks-app/internal/api/authors"
	catalogapi "mybooks-app/internal/api/catalog"
	collectionapi "mybooks-app/internal/api/collection"
	genresapi "mybooks-app/internal/api/genres"
	reviewsapi "mybooks-app/internal/api/reviews"
	usersapi "mybooks-app/internal/api/users"
	"mybooks-app/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"
)

func RegisterRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// OpenAPI: raw schema, Swagger UI, Redoc.
	r.GET("/schema", serveSchema)
	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/schema")))
	r.GET("/redoc", serveRedoc)

	public := r.Group("/api")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())

	public.POST("/auth/register", authapi.Register)
	public.POST("/auth/login", authapi.Login)
	public.GET("/auth/google", authapi.GoogleStart)
	public.GET("/auth/google/callback", authapi.GoogleCallback)

	// Authenticated
	auth := r.Group("/api")
	auth.Use(middleware.AuthMiddleware(), middleware.SanitizeAndCleanInputMiddleware())

	auth.GET("/me", usersapi.GetCurrentUser)
	auth.POST("/auth/change-password", authapi.ChangePassword)

	// Collection (the user's own shelf)
	auth.GET("/books", collectionapi.ListEntries)
	auth.POST("/books", collectionapi.AddBook)
	auth.GET("/books/:id", collectionapi.GetEntry)
	auth.PATCH("/books/:id", collectionapi.UpdateEntry)
	auth.PUT("/books/:id", collectionapi.UpdateEntry)
	auth.DELETE("/books/:id", collectionapi.RemoveEntry)

	// Authors (shared)
	auth.GET("/authors", authorsapi.ListAuthors)
	auth.GET("/authors/:id", authorsapi.GetAuthor)

	// Reviews (the user's own)
	auth.GET("/reviews", reviewsapi.ListReviews)
	auth.POST("/reviews", reviewsapi.CreateReview)
	auth.GET("/reviews/:id", reviewsapi.GetReview)
	auth.PATCH("/reviews/:id", reviewsapi.UpdateReview)
	auth.PUT("/reviews/:id", reviewsapi.UpdateReview)
	auth.DELETE("/reviews/:id", reviewsapi.DeleteReview)

	// Catalog browse + maintenance (shared)
	auth.GET("/browse", catalogapi.ListBooks)
	auth.POST("/browse", catalogapi.CreateBook)
	auth.GET("/browse/:id", catalogapi.GetBook)
	auth.PUT("/browse/:id", catalogapi.UpdateBook)
	auth.PATCH("/browse/:id", catalogapi.UpdateBook)
	auth.DELETE("/browse/:id", catalogapi.DeleteBook)

	// Genre metadata (shared)
	auth.GET("/genres", genresapi.ListGenres)
	auth.GET("/genres/:id", genresapi.GetGenre)
}

func serveSchema(c *gin.Context) {
	doc, err := swag.ReadDoc()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "schema not available"})
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(doc))
}

const redocPage = `<!DOCTYPE html>
<html>
  <head>
    <title>MyBooks API</title>
    <meta charset="utf-8"/>
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <style>body { margin: 0; padding: 0; }</style>
  </head>
  <body>
    <redoc spec-url="/schema"></redoc>
    <script src="https://cdn.redoc.ly/redoc/latest/bundles/redoc.standalone.js"></script>
  </body>
</html>`

func serveRedoc(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(redocPage))
}
