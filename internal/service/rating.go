package service

import (
	"moviechat/internal/models"
	"moviechat/internal/repository"
)

// RatingService owns personal movie ratings and their live aggregate.
type RatingService struct {
	ratingRepo repository.RatingRepository
	hub        *Hub
}

func NewRatingService(ratingRepo repository.RatingRepository, hub *Hub) *RatingService {
	return &RatingService{ratingRepo: ratingRepo, hub: hub}
}

// Rate upserts the voter's rating and announces the movie's recomputed
// aggregate to the room.
func (s *RatingService) Rate(movieID int64, voterID string, value int) error {
	if value < 1 || value > 10 {
		return ErrBadRatingValue
	}

	rating := &models.Rating{
		MovieID: movieID,
		VoterID: voterID,
		Value:   value,
	}
	if err := s.ratingRepo.Upsert(rating); err != nil {
		return err
	}

	if agg, err := s.ratingRepo.Aggregate(movieID); err == nil {
		s.hub.Publish(movieID, NewRatingEvent(movieID, agg))
	}
	return nil
}

// Summary returns the movie's aggregate together with the voter's own rating
// (nil when they have not rated).
func (s *RatingService) Summary(movieID int64, voterID string) (*models.RatingAggregate, *int, error) {
	agg, err := s.ratingRepo.Aggregate(movieID)
	if err != nil {
		return nil, nil, err
	}
	mine, err := s.ratingRepo.Mine(movieID, voterID)
	if err != nil {
		return nil, nil, err
	}
	return agg, mine, nil
}
