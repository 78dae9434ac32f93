// Package clients wraps the authenticated, rate-limited Reddit API.
package clients

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"golang.org/x/oauth2"

	"github.com/mfdorneles/trendmood/config"
	"github.com/mfdorneles/trendmood/internal/models"
)

const (
	REDDIT_AUTH_URL = "https://www.reddit.com/api/v1/access_token"
	REDDIT_API_URL  = "https://oauth.reddit.com"
)

// ErrAuthentication marks credential failures at session establishment.
// It is not retried.
var ErrAuthentication = errors.New("reddit authentication failed")

type RedditClient struct {
	conf     *oauth2.Config
	username string
	password string

	mu     sync.Mutex
	client *http.Client
}

// NewRedditClient builds a client for a Reddit script app. Authenticate
// must be called before any fetch.
func NewRedditClient(creds config.Credentials) *RedditClient {
	conf := &oauth2.Config{
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
		Endpoint: oauth2.Endpoint{
			TokenURL:  REDDIT_AUTH_URL,
			AuthStyle: oauth2.AuthStyleInHeader,
		},
	}

	return &RedditClient{
		conf:     conf,
		username: creds.Username,
		password: creds.Password,
	}
}

// Authenticate exchanges the stored credentials for an access token using
// the password grant and rebuilds the HTTP client around it.
func (rc *RedditClient) Authenticate(ctx context.Context) error {
	token, err := rc.conf.PasswordCredentialsToken(ctx, rc.username, rc.password)
	if err != nil {
		return fmt.Errorf("[RedditClient] %w: %v", ErrAuthentication, err)
	}

	client := oauth2.NewClient(ctx, rc.conf.TokenSource(ctx, token))

	rc.mu.Lock()
	rc.client = client
	rc.mu.Unlock()
	return nil
}

func (rc *RedditClient) httpClient() *http.Client {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return rc.client
}

// SearchPosts queries the given subreddits (joined with "+") for
// submissions matching the topic, up to limit results. Ordering is
// delegated to Reddit's relevance ranking.
func (rc *RedditClient) SearchPosts(ctx context.Context, subreddits, topic string, limit int) ([]models.Post, error) {
	parsedURL, err := url.Parse(fmt.Sprintf("%s/r/%s/search", REDDIT_API_URL, subreddits))
	if err != nil {
		return nil, fmt.Errorf("[RedditClient] failed to parse URL: %w", err)
	}
	queryParams := parsedURL.Query()
	queryParams.Add("q", topic)
	queryParams.Add("limit", strconv.Itoa(limit))
	queryParams.Add("raw_json", "1")
	parsedURL.RawQuery = queryParams.Encode()

	body, err := rc.get(ctx, parsedURL.String())
	if err != nil {
		return nil, err
	}

	var listing models.RedditListing
	if err := json.Unmarshal(body, &listing); err != nil {
		return nil, fmt.Errorf("[RedditClient] failed to decode search response: %w", err)
	}

	posts := make([]models.Post, 0, len(listing.Data.Children))
	for _, child := range listing.Data.Children {
		if child.Kind != models.KindPost {
			continue
		}
		d := child.Data
		posts = append(posts, models.Post{
			ID:        d.ID,
			Title:     d.Title,
			Score:     d.Score,
			URL:       d.URL,
			Stickied:  d.Stickied,
			CreatedAt: d.CreatedTime(),
		})
	}
	return posts, nil
}

// FetchCommentTree returns the two listings of a submission's comments
// endpoint: the submission itself and its comment forest.
func (rc *RedditClient) FetchCommentTree(ctx context.Context, postID string) ([]models.RedditListing, error) {
	body, err := rc.get(ctx, fmt.Sprintf("%s/comments/%s?raw_json=1", REDDIT_API_URL, postID))
	if err != nil {
		return nil, err
	}

	var listings []models.RedditListing
	if err := json.Unmarshal(body, &listings); err != nil {
		return nil, fmt.Errorf("[RedditClient] failed to decode comment tree for %s: %w", postID, err)
	}
	return listings, nil
}

// get performs an authenticated GET with a per-call timeout, retrying
// transient failures with bounded exponential backoff. A 401 refreshes the
// token and retries; 429 and 5xx back off and retry.
func (rc *RedditClient) get(ctx context.Context, rawURL string) ([]byte, error) {
	backoff := INITIAL_BACKOFF
	var lastErr error

	for attempt := 1; attempt <= MAX_RETRIES; attempt++ {
		body, retryable, err := rc.doOnce(ctx, rawURL)
		if err == nil {
			return body, nil
		}
		if !retryable {
			return nil, err
		}
		lastErr = err

		slog.Warn("[RedditClient] Request failed, retrying",
			slog.Int("attempt", attempt),
			slog.Duration("backoff", backoff),
			slog.String("error", err.Error()))

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}

		backoff *= 2
		if backoff > MAX_BACKOFF {
			backoff = MAX_BACKOFF
		}
	}

	return nil, fmt.Errorf("[RedditClient] max retries reached: %w", lastErr)
}

func (rc *RedditClient) doOnce(ctx context.Context, rawURL string) ([]byte, bool, error) {
	reqCtx, cancel := context.WithTimeout(ctx, REQUEST_TIMEOUT)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, false, err
	}
	req.Header.Set("User-Agent", USER_AGENT)

	resp, err := rc.httpClient().Do(req)
	if err != nil {
		return nil, true, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, true, err
		}
		return body, false, nil
	case http.StatusUnauthorized:
		slog.Warn("[RedditClient] Token expired, refreshing")
		if err := rc.Authenticate(ctx); err != nil {
			return nil, false, err
		}
		return nil, true, fmt.Errorf("[RedditClient] token expired for %s", rawURL)
	case http.StatusTooManyRequests:
		return nil, true, fmt.Errorf("[RedditClient] 429 Too Many Requests for %s", rawURL)
	default:
		retryable := resp.StatusCode >= 500
		return nil, retryable, fmt.Errorf("[RedditClient] unexpected status %d for %s", resp.StatusCode, rawURL)
	}
}
