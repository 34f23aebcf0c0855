package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"moviechat/internal/catalog"
)

// CatalogHandler relays TMDB lookups to the web client.
type CatalogHandler struct {
	catalog *catalog.Client
}

func NewCatalogHandler(client *catalog.Client) *CatalogHandler {
	return &CatalogHandler{catalog: client}
}

func (h *CatalogHandler) Search(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		page = 1
	}

	body, err := h.catalog.Search(c.Query("q"), page)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "tmdb_failed"})
		return
	}
	c.Data(http.StatusOK, "application/json", body)
}

func (h *CatalogHandler) Movie(c *gin.Context) {
	body, err := h.catalog.Movie(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "tmdb_failed"})
		return
	}
	c.Data(http.StatusOK, "application/json", body)
}
