// Package catalog is a cache-aside pass-through to the TMDB metadata API.
// Nothing in the discussion core depends on it; responses are relayed to the
// web client verbatim.
package catalog

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"
)

const defaultBaseURL = "https://api.themoviedb.org/3"

type cacheEntry struct {
	at   time.Time
	body []byte
}

type Client struct {
	apiKey   string
	language string
	ttl      time.Duration
	baseURL  string
	http     *http.Client

	mu    sync.Mutex
	cache map[string]cacheEntry
}

func NewClient(apiKey, language string, ttl time.Duration) *Client {
	return &Client{
		apiKey:   apiKey,
		language: language,
		ttl:      ttl,
		baseURL:  defaultBaseURL,
		http:     &http.Client{Timeout: 10 * time.Second},
		cache:    make(map[string]cacheEntry),
	}
}

// Search proxies a multi search, or the weekly trending movies when the
// query is empty.
func (c *Client) Search(query string, page int) ([]byte, error) {
	if page < 1 {
		page = 1
	}

	params := url.Values{}
	params.Set("api_key", c.apiKey)
	params.Set("language", c.language)
	params.Set("page", strconv.Itoa(page))

	var endpoint string
	if query != "" {
		params.Set("query", query)
		endpoint = "/search/multi"
	} else {
		endpoint = "/trending/movie/week"
	}

	target := c.baseURL + endpoint + "?" + params.Encode()
	return c.get("search:"+target, target)
}

// Movie proxies a movie-details lookup by TMDB id.
func (c *Client) Movie(id string) ([]byte, error) {
	params := url.Values{}
	params.Set("api_key", c.apiKey)
	params.Set("language", c.language)

	target := c.baseURL + "/movie/" + url.PathEscape(id) + "?" + params.Encode()
	return c.get("movie:"+id, target)
}

func (c *Client) get(key, target string) ([]byte, error) {
	c.mu.Lock()
	entry, ok := c.cache[key]
	c.mu.Unlock()
	if ok && time.Since(entry.at) < c.ttl {
		return entry.body, nil
	}

	resp, err := c.http.Get(target)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return nil, fmt.Errorf("tmdb responded %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.cache[key] = cacheEntry{at: time.Now(), body: body}
	c.mu.Unlock()

	return body, nil
}
