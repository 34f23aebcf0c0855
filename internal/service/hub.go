package service

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"moviechat/internal/models"
)

const (
	EventMessageNew      = "message:new"
	EventAggregateUpdate = "aggregate:update"
)

// Event is one live notification pushed to a movie room. The two
// aggregate:update payload shapes (message score vs rating summary) are
// distinguished by which optional fields are set.
type Event struct {
	Type      string              `json:"type"`
	MovieID   int64               `json:"movieId"`
	Message   *models.MessageView `json:"message,omitempty"`
	MessageID string              `json:"messageId,omitempty"`
	Score     *int                `json:"score,omitempty"`
	Count     *int64              `json:"count,omitempty"`
	Average   *float64            `json:"average,omitempty"`
}

// NewMessageEvent announces a freshly posted message.
func NewMessageEvent(movieID int64, msg *models.MessageView) *Event {
	return &Event{Type: EventMessageNew, MovieID: movieID, Message: msg}
}

// NewScoreEvent announces a message's recomputed vote score.
func NewScoreEvent(movieID int64, messageID string, score int) *Event {
	return &Event{Type: EventAggregateUpdate, MovieID: movieID, MessageID: messageID, Score: &score}
}

// NewRatingEvent announces a movie's recomputed rating aggregate.
func NewRatingEvent(movieID int64, agg *models.RatingAggregate) *Event {
	return &Event{Type: EventAggregateUpdate, MovieID: movieID, Count: &agg.Count, Average: &agg.Average}
}

// Client is one WebSocket connection. A client may be subscribed to several
// movie rooms at once; membership is owned by the Hub and guarded by its lock.
type Client struct {
	conn   *websocket.Conn
	send   chan *Event
	rooms  map[int64]bool
	closed bool
}

func NewClient(conn *websocket.Conn) *Client {
	return &Client{
		conn:  conn,
		send:  make(chan *Event, 256),
		rooms: make(map[int64]bool),
	}
}

// Hub is the process-wide room registry: movie id -> set of live clients.
// It is created at server start and injected wherever broadcasting happens.
type Hub struct {
	mu    sync.RWMutex
	rooms map[int64]map[*Client]bool
}

func NewHub() *Hub {
	return &Hub{
		rooms: make(map[int64]map[*Client]bool),
	}
}

// Join adds the client to the movie's subscriber set.
func (h *Hub) Join(client *Client, movieID int64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if client.closed {
		return
	}
	if h.rooms[movieID] == nil {
		h.rooms[movieID] = make(map[*Client]bool)
	}
	h.rooms[movieID][client] = true
	client.rooms[movieID] = true
}

// Leave removes the client from one movie's subscriber set.
func (h *Hub) Leave(client *Client, movieID int64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.dropLocked(client, movieID)
}

// Remove takes the client out of every room and closes its send channel.
// Safe to call more than once.
func (h *Hub) Remove(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for movieID := range client.rooms {
		h.dropLocked(client, movieID)
	}
	if !client.closed {
		client.closed = true
		close(client.send)
	}
}

func (h *Hub) dropLocked(client *Client, movieID int64) {
	if clients, ok := h.rooms[movieID]; ok {
		delete(clients, client)
		if len(clients) == 0 {
			delete(h.rooms, movieID)
		}
	}
	delete(client.rooms, movieID)
}

// Publish delivers the event to every client currently subscribed to the
// movie, including whichever client triggered the write. Delivery is
// fire-and-forget: a client whose buffer is full is dropped, the publisher
// never blocks.
func (h *Hub) Publish(movieID int64, event *Event) {
	var slow []*Client

	h.mu.RLock()
	for client := range h.rooms[movieID] {
		select {
		case client.send <- event:
		default:
			slow = append(slow, client)
		}
	}
	h.mu.RUnlock()

	for _, client := range slow {
		h.Remove(client)
		if client.conn != nil {
			client.conn.Close()
		}
	}
}

// RoomSize reports how many clients are subscribed to the movie.
func (h *Hub) RoomSize(movieID int64) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[movieID])
}

// HandleConnection runs the client's read/write pumps until it disconnects.
// The initial movie room is joined immediately; the client can join or leave
// further rooms with {"type":"join","movieId":N} / {"type":"leave",...} frames.
func (h *Hub) HandleConnection(conn *websocket.Conn, movieID int64) {
	client := NewClient(conn)
	h.Join(client, movieID)

	defer func() {
		h.Remove(client)
		conn.Close()
	}()

	go h.writePump(client)
	h.readPump(client)
}

type controlFrame struct {
	Type    string `json:"type"`
	MovieID int64  `json:"movieId"`
}

func (h *Hub) readPump(client *Client) {
	client.conn.SetReadLimit(4096)
	client.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	client.conn.SetPongHandler(func(string) error {
		client.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		_, raw, err := client.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("websocket unexpected close error: %v", err)
			}
			break
		}

		var frame controlFrame
		if err := json.Unmarshal(raw, &frame); err != nil {
			log.Printf("control frame parse error: %v", err)
			continue
		}

		switch frame.Type {
		case "join":
			h.Join(client, frame.MovieID)
		case "leave":
			h.Leave(client, frame.MovieID)
		}
	}
}

func (h *Hub) writePump(client *Client) {
	ticker := time.NewTicker(54 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-client.send:
			client.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				client.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			payload, err := json.Marshal(event)
			if err != nil {
				log.Printf("event encoding error: %v", err)
				continue
			}
			if err := client.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}

		case <-ticker.C:
			client.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := client.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
