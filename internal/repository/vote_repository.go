package repository

import (
	"gorm.io/gorm/clause"

	"moviechat/internal/models"
	"moviechat/internal/storage"
)

type VoteRepository interface {
	// Upsert inserts the vote or overwrites the existing row for the same
	// (message_id, voter_id). The database resolves the conflict, so
	// concurrent writers to the same key can never produce duplicate rows.
	Upsert(vote *models.Vote) error
	ScoreOf(messageID string) (int, error)
}

type voteRepository struct {
	db *storage.PostgresDB
}

func NewVoteRepository(db *storage.PostgresDB) VoteRepository {
	return &voteRepository{db: db}
}

func (r *voteRepository) Upsert(vote *models.Vote) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "message_id"}, {Name: "voter_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(vote).Error
}

func (r *voteRepository) ScoreOf(messageID string) (int, error) {
	var score int
	err := r.db.Model(&models.Vote{}).
		Where("message_id = ?", messageID).
		Select("COALESCE(SUM(value), 0)").
		Scan(&score).Error
	return score, err
}
