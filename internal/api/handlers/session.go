package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"moviechat/internal/middleware"
)

// SessionHandler exposes the caller's resolved identity. Provisioning itself
// already happened in the session middleware.
type SessionHandler struct{}

func NewSessionHandler() *SessionHandler {
	return &SessionHandler{}
}

func (h *SessionHandler) Current(c *gin.Context) {
	ident := middleware.IdentityFrom(c)
	c.JSON(http.StatusOK, gin.H{"user": gin.H{
		"id":     ident.ID,
		"handle": ident.Handle,
	}})
}
