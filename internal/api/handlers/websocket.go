package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"moviechat/internal/service"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // TODO: restrict to the configured web origin
	},
}

// WebSocketHandler attaches live clients to the room hub.
type WebSocketHandler struct {
	hub *service.Hub
}

func NewWebSocketHandler(hub *service.Hub) *WebSocketHandler {
	return &WebSocketHandler{hub: hub}
}

// HandleWebSocket upgrades the connection and joins the movie's room. The
// call blocks for the lifetime of the socket.
func (h *WebSocketHandler) HandleWebSocket(c *gin.Context) {
	movieID, err := strconv.ParseInt(c.Param("movieId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_movie_id"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already replied with an HTTP error.
		return
	}

	h.hub.HandleConnection(conn, movieID)
}
