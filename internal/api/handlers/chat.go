package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"moviechat/internal/middleware"
	"moviechat/internal/repository"
	"moviechat/internal/service"
	"moviechat/internal/thread"
)

// ChatHandler handles message history, posting and voting.
type ChatHandler struct {
	chatService *service.ChatService
}

func NewChatHandler(chatService *service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// ListMessages returns the flat newest-first history, or the assembled
// thread tree when ?view=tree (&mode=recent|top) is requested.
func (h *ChatHandler) ListMessages(c *gin.Context) {
	movieID, err := strconv.ParseInt(c.Param("movieId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_movie_id"})
		return
	}

	messages, err := h.chatService.ListMessages(movieID, 0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list_failed"})
		return
	}

	if c.Query("view") == "tree" {
		mode := thread.Mode(c.DefaultQuery("mode", string(thread.ModeRecent)))
		c.JSON(http.StatusOK, thread.Assemble(messages, mode))
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

// PostMessage stores a new root message or reply.
func (h *ChatHandler) PostMessage(c *gin.Context) {
	movieID, err := strconv.ParseInt(c.Param("movieId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_movie_id"})
		return
	}

	var input struct {
		Content  string  `json:"content"`
		ParentID *string `json:"parentId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty"})
		return
	}

	ident := middleware.IdentityFrom(c)
	message, err := h.chatService.PostMessage(movieID, ident, input.Content, input.ParentID)
	if errors.Is(err, service.ErrEmptyContent) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "post_failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "message": message})
}

// CastVote records a +1/-1 vote on a message.
func (h *ChatHandler) CastVote(c *gin.Context) {
	var input struct {
		Value int `json:"value"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_value"})
		return
	}

	ident := middleware.IdentityFrom(c)
	err := h.chatService.CastVote(c.Param("messageId"), ident.ID, input.Value)
	if errors.Is(err, service.ErrBadVoteValue) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_value"})
		return
	}
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "vote_failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
