package service

import (
	"moviechat/internal/models"
	"moviechat/internal/repository"
)

// Hand-rolled fakes behind the repository interfaces. They mirror the
// uniqueness semantics of the real tables: votes and ratings are keyed maps,
// so an upsert can never create a second row for the same key.

type fakeIdentityRepo struct {
	idents    map[string]*models.Identity
	createErr error
}

func newFakeIdentityRepo() *fakeIdentityRepo {
	return &fakeIdentityRepo{idents: make(map[string]*models.Identity)}
}

func (f *fakeIdentityRepo) Create(ident *models.Identity) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.idents[ident.ID] = ident
	return nil
}

func (f *fakeIdentityRepo) FindByID(id string) (*models.Identity, error) {
	if ident, ok := f.idents[id]; ok {
		return ident, nil
	}
	return nil, repository.ErrNotFound
}

type fakeMessageRepo struct {
	msgs []*models.Message
	byID map[string]*models.Message
	now  int64
}

func newFakeMessageRepo() *fakeMessageRepo {
	return &fakeMessageRepo{byID: make(map[string]*models.Message), now: 1000}
}

func (f *fakeMessageRepo) Create(msg *models.Message) error {
	f.now++
	msg.CreatedAt = f.now
	f.msgs = append(f.msgs, msg)
	f.byID[msg.ID] = msg
	return nil
}

func (f *fakeMessageRepo) FindByID(id string) (*models.Message, error) {
	if msg, ok := f.byID[id]; ok {
		return msg, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeMessageRepo) ListByMovie(movieID int64, limit int) ([]models.MessageView, error) {
	views := make([]models.MessageView, 0)
	for i := len(f.msgs) - 1; i >= 0 && len(views) < limit; i-- {
		m := f.msgs[i]
		if m.MovieID != movieID {
			continue
		}
		views = append(views, models.MessageView{
			ID:        m.ID,
			MovieID:   m.MovieID,
			ParentID:  m.ParentID,
			Content:   m.Content,
			CreatedAt: m.CreatedAt,
		})
	}
	return views, nil
}

type fakeVoteRepo struct {
	votes map[string]map[string]int // message id -> voter id -> value
}

func newFakeVoteRepo() *fakeVoteRepo {
	return &fakeVoteRepo{votes: make(map[string]map[string]int)}
}

func (f *fakeVoteRepo) Upsert(vote *models.Vote) error {
	if f.votes[vote.MessageID] == nil {
		f.votes[vote.MessageID] = make(map[string]int)
	}
	f.votes[vote.MessageID][vote.VoterID] = vote.Value
	return nil
}

func (f *fakeVoteRepo) ScoreOf(messageID string) (int, error) {
	score := 0
	for _, value := range f.votes[messageID] {
		score += value
	}
	return score, nil
}

type fakeRatingRepo struct {
	ratings map[int64]map[string]int // movie id -> voter id -> value
}

func newFakeRatingRepo() *fakeRatingRepo {
	return &fakeRatingRepo{ratings: make(map[int64]map[string]int)}
}

func (f *fakeRatingRepo) Upsert(rating *models.Rating) error {
	if f.ratings[rating.MovieID] == nil {
		f.ratings[rating.MovieID] = make(map[string]int)
	}
	f.ratings[rating.MovieID][rating.VoterID] = rating.Value
	return nil
}

func (f *fakeRatingRepo) Aggregate(movieID int64) (*models.RatingAggregate, error) {
	rows := f.ratings[movieID]
	agg := &models.RatingAggregate{Count: int64(len(rows))}
	if agg.Count == 0 {
		return agg, nil
	}
	sum := 0
	for _, value := range rows {
		sum += value
	}
	agg.Average = float64(sum) / float64(agg.Count)
	return agg, nil
}

func (f *fakeRatingRepo) Mine(movieID int64, voterID string) (*int, error) {
	if value, ok := f.ratings[movieID][voterID]; ok {
		return &value, nil
	}
	return nil, nil
}
