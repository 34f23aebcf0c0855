package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"moviechat/internal/api/handlers"
	"moviechat/internal/catalog"
	"moviechat/internal/middleware"
	"moviechat/internal/service"
)

func SetupRoutes(r *gin.Engine, services *service.Services, tmdb *catalog.Client) {
	sessionHandler := handlers.NewSessionHandler()
	chatHandler := handlers.NewChatHandler(services.Chat)
	ratingHandler := handlers.NewRatingHandler(services.Rating)
	catalogHandler := handlers.NewCatalogHandler(tmdb)
	wsHandler := handlers.NewWebSocketHandler(services.Hub)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "not_found",
		})
	})

	api := r.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	// Every route below carries an identity: the middleware provisions one
	// on first contact and heals dead tokens silently.
	api.Use(middleware.Session(services.Session))
	{
		api.GET("/session", sessionHandler.Current)

		// Catalog pass-through
		api.GET("/search", catalogHandler.Search)
		api.GET("/movie/:id", catalogHandler.Movie)

		// Per-movie discussion
		chat := api.Group("/chat/:movieId")
		{
			chat.GET("/messages", chatHandler.ListMessages)
			chat.POST("/messages", chatHandler.PostMessage)
			chat.POST("/messages/:messageId/vote", chatHandler.CastVote)
			chat.GET("/ws", wsHandler.HandleWebSocket)
		}

		// Per-movie rating
		api.GET("/rating/:movieId", ratingHandler.GetRating)
		api.POST("/rating/:movieId", ratingHandler.Rate)
	}
}
