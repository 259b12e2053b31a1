package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// StatusError reports a non-2xx response. Transport errors are returned
// as-is (wrapped); status errors let callers distinguish server rejection
// from connection failure.
type StatusError struct {
	Code int
	Op   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d", e.Op, e.Code)
}

// Client talks JSON over HTTP to the platform backend. Every call takes a
// context and aborts client-side when it is cancelled; the Client itself
// applies no timeout.
type Client struct {
	base string
	http *http.Client
	log  zerolog.Logger
}

func New(baseURL string, log zerolog.Logger) *Client {
	return &Client{
		base: strings.TrimRight(baseURL, "/"),
		http: &http.Client{},
		log:  log,
	}
}

// do issues one request and decodes the response body into out (skipped when
// out is nil). The request ID is only for log correlation.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	op := method + " " + path

	var rd io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: encode body: %w", op, err)
		}
		rd = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, rd)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", op, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	reqID := uuid.NewString()
	c.log.Debug().Str("request_id", reqID).Str("op", op).Msg("issue")

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug().Str("request_id", reqID).Err(err).Msg("transport failure")
		return fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Debug().Str("request_id", reqID).Int("status", resp.StatusCode).Msg("rejected")
		return &StatusError{Code: resp.StatusCode, Op: op}
	}
	if out == nil {
		return nil
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s: read body: %w", op, err)
	}
	if falsyBody(raw) {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%s: decode body: %w", op, err)
	}
	return nil
}

// falsyBody reports whether the server sent its "nothing here" answer: the
// backend responds with false/null/"" rather than a 404 for absent resources
// and failed logins.
func falsyBody(raw []byte) bool {
	switch strings.TrimSpace(string(raw)) {
	case "", "false", "null", `""`:
		return true
	}
	return false
}

// FetchPost returns the post, or (nil, nil) when the backend reports it
// absent. Absence is a state, not an error.
func (c *Client) FetchPost(ctx context.Context, id string) (*Post, error) {
	var post *Post
	if err := c.do(ctx, http.MethodGet, "/post/"+id, nil, &post); err != nil {
		return nil, err
	}
	if post == nil || post.ID == "" {
		return nil, nil
	}
	return post, nil
}

func (c *Client) SavePost(ctx context.Context, id, title, body, token string) error {
	payload := map[string]string{"title": title, "body": body, "token": token}
	return c.do(ctx, http.MethodPost, "/post/"+id+"/edit", payload, nil)
}

// DeletePost succeeds only on the backend's literal success marker.
func (c *Client) DeletePost(ctx context.Context, id, token string) error {
	var marker string
	err := c.do(ctx, http.MethodDelete, "/post/"+id, map[string]string{"token": token}, &marker)
	if err != nil {
		return err
	}
	if marker != "Success" {
		return fmt.Errorf("delete post %s: unexpected response %q", id, marker)
	}
	return nil
}

// Login returns (nil, nil) when the backend rejects the credentials.
func (c *Client) Login(ctx context.Context, username, password string) (*User, error) {
	var user *User
	payload := map[string]string{"username": username, "password": password}
	if err := c.do(ctx, http.MethodPost, "/login", payload, &user); err != nil {
		return nil, err
	}
	if user == nil || user.Token == "" {
		return nil, nil
	}
	return user, nil
}

func (c *Client) FetchProfile(ctx context.Context, username, token string) (*Profile, error) {
	var profile Profile
	err := c.do(ctx, http.MethodPost, "/profile/"+username, map[string]string{"token": token}, &profile)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *Client) ProfilePosts(ctx context.Context, username string) ([]Post, error) {
	var posts []Post
	if err := c.do(ctx, http.MethodGet, "/profile/"+username+"/posts", nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (c *Client) ProfileFollowers(ctx context.Context, username string) ([]Follower, error) {
	var followers []Follower
	if err := c.do(ctx, http.MethodGet, "/profile/"+username+"/followers", nil, &followers); err != nil {
		return nil, err
	}
	return followers, nil
}

func (c *Client) ProfileFollowing(ctx context.Context, username string) ([]Follower, error) {
	var following []Follower
	if err := c.do(ctx, http.MethodGet, "/profile/"+username+"/following", nil, &following); err != nil {
		return nil, err
	}
	return following, nil
}

func (c *Client) Follow(ctx context.Context, username, token string) error {
	return c.do(ctx, http.MethodPost, "/addFollow/"+username, map[string]string{"token": token}, nil)
}

func (c *Client) Unfollow(ctx context.Context, username, token string) error {
	return c.do(ctx, http.MethodPost, "/removeFollow/"+username, map[string]string{"token": token}, nil)
}

// Search returns posts matching the term, in the server's order.
func (c *Client) Search(ctx context.Context, term string) ([]Post, error) {
	var results []Post
	if err := c.do(ctx, http.MethodPost, "/search", map[string]string{"searchTerm": term}, &results); err != nil {
		return nil, err
	}
	return results, nil
}
