package main

import (
	"os"
	"time"

	"mybooks-app/config"
	"mybooks-app/database"
	_ "mybooks-app/docs"
	routes "mybooks-app/internal/app/http"
	"mybooks-app/internal/app/http/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// @title MyBooks API
// @version 1.0
// @description Personal book-collection tracking API. Users add books, track
// @description reading status (want_to_read / reading / finished / dropped) and
// @description attach reviews with 1-5 star ratings. Authors are created on
// @description demand when a book first names them.
//
// @BasePath /
// @schemes http https
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token obtained via /api/auth/login or /api/auth/register.
func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	config.LoadEnv()
	database.InitDB()

	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	r := gin.New()
	r.Use(middleware.RequestLogger(), gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.CORS_ORIGIN},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r)

	if err := r.Run(":" + config.PORT); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
