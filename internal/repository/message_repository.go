package repository

import (
	"errors"

	"gorm.io/gorm"

	"moviechat/internal/models"
	"moviechat/internal/storage"
)

type MessageRepository interface {
	Create(msg *models.Message) error
	FindByID(id string) (*models.Message, error)
	// ListByMovie returns the movie's messages newest first, joined with the
	// author's current handle and the current vote sum per message.
	ListByMovie(movieID int64, limit int) ([]models.MessageView, error)
}

type messageRepository struct {
	db *storage.PostgresDB
}

func NewMessageRepository(db *storage.PostgresDB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(msg *models.Message) error {
	return r.db.Create(msg).Error
}

func (r *messageRepository) FindByID(id string) (*models.Message, error) {
	var msg models.Message
	err := r.db.Where("id = ?", id).First(&msg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

func (r *messageRepository) ListByMovie(movieID int64, limit int) ([]models.MessageView, error) {
	views := make([]models.MessageView, 0, limit)
	err := r.db.Table("messages AS m").
		Select("m.id, m.movie_id, m.parent_id, m.content, m.created_at, i.handle, COALESCE(v.score, 0) AS score").
		Joins("JOIN identities i ON i.id = m.author_id").
		Joins("LEFT JOIN (SELECT message_id, SUM(value) AS score FROM votes GROUP BY message_id) v ON v.message_id = m.id").
		Where("m.movie_id = ?", movieID).
		Order("m.created_at DESC").
		Limit(limit).
		Scan(&views).Error
	return views, err
}
