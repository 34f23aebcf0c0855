package catalog

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newClientForTest(upstream string, ttl time.Duration) *Client {
	c := NewClient("test-key", "en-US", ttl)
	c.baseURL = upstream
	return c
}

func TestSearch_CachesWithinTTL(t *testing.T) {
	t.Parallel()

	var hits atomic.Int64
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte(`{"results":[]}`))
	}))
	defer upstream.Close()

	c := newClientForTest(upstream.URL, time.Minute)

	first, err := c.Search("dune", 1)
	require.NoError(t, err)
	second, err := c.Search("dune", 1)
	require.NoError(t, err)

	require.Equal(t, first, second)
	require.EqualValues(t, 1, hits.Load(), "second lookup must come from cache")
}

func TestSearch_ExpiredEntryRefetches(t *testing.T) {
	t.Parallel()

	var hits atomic.Int64
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte(`{}`))
	}))
	defer upstream.Close()

	c := newClientForTest(upstream.URL, 10*time.Millisecond)

	_, err := c.Search("dune", 1)
	require.NoError(t, err)

	time.Sleep(20 * time.Millisecond)

	_, err = c.Search("dune", 1)
	require.NoError(t, err)
	require.EqualValues(t, 2, hits.Load())
}

func TestSearch_EmptyQueryHitsTrending(t *testing.T) {
	t.Parallel()

	var lastPath atomic.Value
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lastPath.Store(r.URL.Path)
		w.Write([]byte(`{}`))
	}))
	defer upstream.Close()

	c := newClientForTest(upstream.URL, time.Minute)

	_, err := c.Search("", 1)
	require.NoError(t, err)
	require.Equal(t, "/trending/movie/week", lastPath.Load())

	_, err = c.Search("dune", 1)
	require.NoError(t, err)
	require.Equal(t, "/search/multi", lastPath.Load())
}

func TestMovie_UpstreamFailure(t *testing.T) {
	t.Parallel()

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer upstream.Close()

	c := newClientForTest(upstream.URL, time.Minute)

	_, err := c.Movie("603")
	require.Error(t, err)
}

func TestMovie_SeparateCacheKeys(t *testing.T) {
	t.Parallel()

	var hits atomic.Int64
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte(`{}`))
	}))
	defer upstream.Close()

	c := newClientForTest(upstream.URL, time.Minute)

	_, err := c.Movie("603")
	require.NoError(t, err)
	_, err = c.Movie("604")
	require.NoError(t, err)
	require.EqualValues(t, 2, hits.Load())
}
