package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"moviechat/internal/api"
	"moviechat/internal/catalog"
	"moviechat/internal/config"
	"moviechat/internal/models"
	"moviechat/internal/repository"
	"moviechat/internal/service"
	"moviechat/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := storage.NewPostgresDB(cfg.DB.Host, cfg.DB.User, cfg.DB.Password, cfg.DB.Name, cfg.DB.Port)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := db.AutoMigrate(&models.Identity{}, &models.Message{}, &models.Vote{}, &models.Rating{}); err != nil {
		log.Fatalf("Failed to auto migrate database: %v", err)
	}

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, cfg)

	if cfg.TMDB.APIKey == "" {
		log.Println("warning: no TMDB api key set, search/movie endpoints will fail until provided")
	}
	tmdb := catalog.NewClient(cfg.TMDB.APIKey, cfg.TMDB.Language, time.Duration(cfg.TMDB.CacheTTL)*time.Second)

	r := gin.Default()
	api.SetupRoutes(r, services, tmdb)

	if err := r.Run(cfg.Server.Address); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
