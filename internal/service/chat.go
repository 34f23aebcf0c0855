package service

import (
	"strings"

	"github.com/google/uuid"

	"moviechat/internal/models"
	"moviechat/internal/repository"
)

// defaultHistoryLimit caps how many messages a history read returns.
const defaultHistoryLimit = 200

// ChatService owns message posting, history reads and message votes.
// Writes are persisted first; the room broadcast happens after the commit and
// its outcome never affects the caller's result.
type ChatService struct {
	messageRepo repository.MessageRepository
	voteRepo    repository.VoteRepository
	hub         *Hub
}

func NewChatService(messageRepo repository.MessageRepository, voteRepo repository.VoteRepository, hub *Hub) *ChatService {
	return &ChatService{
		messageRepo: messageRepo,
		voteRepo:    voteRepo,
		hub:         hub,
	}
}

// PostMessage persists a new message and announces it to the movie room.
// parentID is stored as given; whether it references a real message is not
// checked at write time.
func (s *ChatService) PostMessage(movieID int64, author *models.Identity, content string, parentID *string) (*models.MessageView, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}

	msg := &models.Message{
		ID:       uuid.NewString(),
		MovieID:  movieID,
		AuthorID: author.ID,
		ParentID: parentID,
		Content:  content,
	}
	if err := s.messageRepo.Create(msg); err != nil {
		return nil, err
	}

	view := &models.MessageView{
		ID:        msg.ID,
		MovieID:   movieID,
		ParentID:  parentID,
		Content:   content,
		CreatedAt: msg.CreatedAt,
		Handle:    author.Handle,
	}
	s.hub.Publish(movieID, NewMessageEvent(movieID, view))
	return view, nil
}

// ListMessages returns the movie's history, newest first.
func (s *ChatService) ListMessages(movieID int64, limit int) ([]models.MessageView, error) {
	if limit <= 0 || limit > defaultHistoryLimit {
		limit = defaultHistoryLimit
	}
	return s.messageRepo.ListByMovie(movieID, limit)
}

// CastVote upserts the voter's stance on a message and announces the
// message's recomputed score to the room. A repeat vote replaces the earlier
// one; it never counts twice.
func (s *ChatService) CastVote(messageID, voterID string, value int) error {
	if value != 1 && value != -1 {
		return ErrBadVoteValue
	}

	msg, err := s.messageRepo.FindByID(messageID)
	if err != nil {
		return err
	}

	vote := &models.Vote{
		MessageID: messageID,
		VoterID:   voterID,
		Value:     value,
	}
	if err := s.voteRepo.Upsert(vote); err != nil {
		return err
	}

	// The vote is committed; a failed score read only costs the broadcast.
	if score, err := s.voteRepo.ScoreOf(messageID); err == nil {
		s.hub.Publish(msg.MovieID, NewScoreEvent(msg.MovieID, messageID, score))
	}
	return nil
}

// ScoreOf returns the message's current vote sum, 0 when unvoted.
func (s *ChatService) ScoreOf(messageID string) (int, error) {
	return s.voteRepo.ScoreOf(messageID)
}
