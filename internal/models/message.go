package models

// Message is one chat message on a movie. Messages are immutable: no update
// or delete path exists anywhere in the application.
type Message struct {
	ID       string `gorm:"primaryKey" json:"id"`
	MovieID  int64  `gorm:"not null;index:idx_messages_movie,priority:1" json:"movieId"`
	AuthorID string `gorm:"not null" json:"-"`
	// ParentID is nil for root messages. The reference is stored untrusted:
	// a reply may point at a message id this server never saw.
	ParentID  *string `gorm:"index" json:"parent_id"`
	Content   string  `gorm:"type:text;not null" json:"content"`
	CreatedAt int64   `gorm:"autoCreateTime:milli;index:idx_messages_movie,priority:2" json:"created_at"`
}

// MessageView is the read shape of a message: joined with the author's
// current handle and the current vote sum at query time.
type MessageView struct {
	ID        string  `json:"id"`
	MovieID   int64   `json:"movieId"`
	ParentID  *string `json:"parent_id"`
	Content   string  `json:"content"`
	CreatedAt int64   `json:"created_at"`
	Handle    string  `json:"handle"`
	Score     int     `json:"score"`
}
