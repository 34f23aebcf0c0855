package repository

import (
	"errors"

	"moviechat/internal/storage"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("record not found")

type Repositories struct {
	Identity IdentityRepository
	Message  MessageRepository
	Vote     VoteRepository
	Rating   RatingRepository
}

func NewRepositories(db *storage.PostgresDB) *Repositories {
	return &Repositories{
		Identity: NewIdentityRepository(db),
		Message:  NewMessageRepository(db),
		Vote:     NewVoteRepository(db),
		Rating:   NewRatingRepository(db),
	}
}
