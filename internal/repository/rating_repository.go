package repository

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"moviechat/internal/models"
	"moviechat/internal/storage"
)

type RatingRepository interface {
	// Upsert inserts or overwrites the row for (movie_id, voter_id),
	// conflict-resolved by the database like VoteRepository.Upsert.
	Upsert(rating *models.Rating) error
	Aggregate(movieID int64) (*models.RatingAggregate, error)
	// Mine returns the voter's current rating, or nil if they have not rated.
	Mine(movieID int64, voterID string) (*int, error)
}

type ratingRepository struct {
	db *storage.PostgresDB
}

func NewRatingRepository(db *storage.PostgresDB) RatingRepository {
	return &ratingRepository{db: db}
}

func (r *ratingRepository) Upsert(rating *models.Rating) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "movie_id"}, {Name: "voter_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(rating).Error
}

func (r *ratingRepository) Aggregate(movieID int64) (*models.RatingAggregate, error) {
	var agg models.RatingAggregate
	err := r.db.Model(&models.Rating{}).
		Where("movie_id = ?", movieID).
		Select("COUNT(*) AS count, COALESCE(AVG(value), 0) AS average").
		Scan(&agg).Error
	if err != nil {
		return nil, err
	}
	return &agg, nil
}

func (r *ratingRepository) Mine(movieID int64, voterID string) (*int, error) {
	var rating models.Rating
	err := r.db.Where("movie_id = ? AND voter_id = ?", movieID, voterID).First(&rating).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rating.Value, nil
}
