package service

import (
	"moviechat/internal/config"
	"moviechat/internal/repository"
)

type Services struct {
	Session *SessionService
	Chat    *ChatService
	Rating  *RatingService
	Hub     *Hub
}

func NewServices(repos *repository.Repositories, cfg *config.Config) *Services {
	hub := NewHub()

	return &Services{
		Session: NewSessionService(repos.Identity, cfg.Session.Secret),
		Chat:    NewChatService(repos.Message, repos.Vote, hub),
		Rating:  NewRatingService(repos.Rating, hub),
		Hub:     hub,
	}
}
