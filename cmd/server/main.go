package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/sophearak/movievault/internal/config"
	"github.com/sophearak/movievault/internal/database"
	"github.com/sophearak/movievault/internal/movies"
	"github.com/sophearak/movievault/internal/session"
	"github.com/sophearak/movievault/internal/tmdb"
	"github.com/sophearak/movievault/internal/web"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded, continuing with environment variables")
	}

	if m := os.Getenv("GIN_MODE"); m != "" {
		gin.SetMode(m)
	}

	cfg := config.Load()

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	if err := database.Migrate(db, &movies.Movie{}); err != nil {
		log.Fatalf("migrations failed: %v", err)
	}

	rdb, err := config.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}

	store := movies.NewStore(db)
	client := tmdb.NewClient(tmdb.Config{
		BaseURL:     cfg.APIURL,
		BearerToken: cfg.APIToken,
		APIKey:      cfg.APIKey,
	})
	cache := session.NewCandidateCache(rdb, cfg.CandidateTTL)

	r := web.NewRouter(web.NewHandler(store, client, cache))

	log.Printf("listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
