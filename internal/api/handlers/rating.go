package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"moviechat/internal/middleware"
	"moviechat/internal/service"
)

// RatingHandler handles personal movie ratings and the live aggregate.
type RatingHandler struct {
	ratingService *service.RatingService
}

func NewRatingHandler(ratingService *service.RatingService) *RatingHandler {
	return &RatingHandler{ratingService: ratingService}
}

// GetRating returns the movie's aggregate plus the caller's own rating.
func (h *RatingHandler) GetRating(c *gin.Context) {
	movieID, err := strconv.ParseInt(c.Param("movieId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_movie_id"})
		return
	}

	ident := middleware.IdentityFrom(c)
	agg, mine, err := h.ratingService.Summary(movieID, ident.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "rating_failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":   agg.Count,
		"average": agg.Average,
		"mine":    mine,
	})
}

// Rate upserts the caller's 1..10 rating.
func (h *RatingHandler) Rate(c *gin.Context) {
	movieID, err := strconv.ParseInt(c.Param("movieId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_movie_id"})
		return
	}

	var input struct {
		Value int `json:"value"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_value"})
		return
	}

	ident := middleware.IdentityFrom(c)
	err = h.ratingService.Rate(movieID, ident.ID, input.Value)
	if errors.Is(err, service.ErrBadRatingValue) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_value"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "rating_failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
