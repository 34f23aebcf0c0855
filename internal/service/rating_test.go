package service

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newRatingForTest() (*RatingService, *fakeRatingRepo, *Hub) {
	ratingRepo := newFakeRatingRepo()
	hub := NewHub()
	return NewRatingService(ratingRepo, hub), ratingRepo, hub
}

func TestRate_ValidationBoundaries(t *testing.T) {
	t.Parallel()

	svc, ratingRepo, _ := newRatingForTest()

	require.ErrorIs(t, svc.Rate(42, "a", 0), ErrBadRatingValue)
	require.ErrorIs(t, svc.Rate(42, "a", 11), ErrBadRatingValue)
	require.Empty(t, ratingRepo.ratings, "no side effect on validation failure")

	require.NoError(t, svc.Rate(42, "a", 1))
	require.NoError(t, svc.Rate(42, "b", 10))
}

func TestSummary_EmptyIsZeroNotNaN(t *testing.T) {
	t.Parallel()

	svc, _, _ := newRatingForTest()

	agg, mine, err := svc.Summary(42, "a")
	require.NoError(t, err)
	require.EqualValues(t, 0, agg.Count)
	require.EqualValues(t, 0, agg.Average)
	require.Nil(t, mine)
}

func TestSummary_AverageAndCount(t *testing.T) {
	t.Parallel()

	svc, _, _ := newRatingForTest()

	require.NoError(t, svc.Rate(42, "a", 7))
	require.NoError(t, svc.Rate(42, "b", 9))
	require.NoError(t, svc.Rate(42, "c", 5))

	agg, mine, err := svc.Summary(42, "b")
	require.NoError(t, err)
	require.EqualValues(t, 3, agg.Count)
	require.InDelta(t, 7.0, agg.Average, 1e-9)
	require.NotNil(t, mine)
	require.Equal(t, 9, *mine)
}

func TestRate_ReplacesPriorRating(t *testing.T) {
	t.Parallel()

	svc, _, _ := newRatingForTest()

	require.NoError(t, svc.Rate(42, "a", 3))
	require.NoError(t, svc.Rate(42, "a", 9))

	agg, mine, err := svc.Summary(42, "a")
	require.NoError(t, err)
	require.EqualValues(t, 1, agg.Count, "repeat rating must not add a second row")
	require.InDelta(t, 9.0, agg.Average, 1e-9)
	require.Equal(t, 9, *mine)
}

func TestRate_BroadcastsAggregate(t *testing.T) {
	t.Parallel()

	svc, _, hub := newRatingForTest()

	client := NewClient(nil)
	hub.Join(client, 42)

	require.NoError(t, svc.Rate(42, "a", 8))

	event := <-client.send
	require.Equal(t, EventAggregateUpdate, event.Type)
	require.Equal(t, int64(42), event.MovieID)
	require.NotNil(t, event.Count)
	require.EqualValues(t, 1, *event.Count)
	require.NotNil(t, event.Average)
	require.InDelta(t, 8.0, *event.Average, 1e-9)
	require.Nil(t, event.Score, "rating shape carries no message fields")
	require.Empty(t, event.MessageID)
}
