// Package client talks to a chatterbox server: REST for the durable side, websocket for push.
package client

import (
	"bytes"
	"chatterbox/domain"
	"chatterbox/errors"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// APIError is a non-2xx answer of the REST API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// Unwrap lets callers match the server sentinels that survive the wire.
func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusUnauthorized:
		return errors.ErrUnauthorized
	case http.StatusNotFound:
		return errors.ErrUserNotFound
	}
	return nil
}

type Session struct {
	User  domain.Participant
	Token string
}

type sessionPayload struct {
	ID       domain.Identity `json:"_id"`
	Username string          `json:"username"`
	Token    string          `json:"token"`
}

// APIClient attaches the bearer credential to every call once logged in.
type APIClient struct {
	baseURL string
	http    *http.Client
	mu      sync.RWMutex
	token   string
}

func NewAPIClient(baseURL string, timeout time.Duration) *APIClient {
	return &APIClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *APIClient) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

func (c *APIClient) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *APIClient) Register(ctx context.Context, username, password string) (Session, error) {
	return c.authenticate(ctx, "/api/auth/register", username, password)
}

func (c *APIClient) Login(ctx context.Context, username, password string) (Session, error) {
	return c.authenticate(ctx, "/api/auth/login", username, password)
}

func (c *APIClient) authenticate(ctx context.Context, path, username, password string) (Session, error) {
	var out sessionPayload
	body := map[string]string{"username": username, "password": password}
	if err := c.do(ctx, http.MethodPost, path, body, &out); err != nil {
		return Session{}, err
	}
	c.SetToken(out.Token)
	return Session{User: domain.Participant{ID: out.ID, Username: out.Username}, Token: out.Token}, nil
}

func (c *APIClient) Me(ctx context.Context) (domain.Participant, error) {
	var out domain.Participant
	err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &out)
	return out, err
}

func (c *APIClient) Users(ctx context.Context) ([]domain.Participant, error) {
	var out []domain.Participant
	err := c.do(ctx, http.MethodGet, "/api/users", nil, &out)
	return out, err
}

// FetchConversation returns the history with peer, oldest first.
func (c *APIClient) FetchConversation(ctx context.Context, peer domain.Identity) ([]domain.Message, error) {
	var out []domain.Message
	err := c.do(ctx, http.MethodGet, "/api/chat/"+url.PathEscape(peer.String()), nil, &out)
	return out, err
}

func (c *APIClient) SendMessage(ctx context.Context, peer domain.Identity, content string) (domain.Message, error) {
	var out domain.Message
	body := map[string]string{"receiverId": peer.String(), "content": content}
	err := c.do(ctx, http.MethodPost, "/api/chat", body, &out)
	return out, err
}

func (c *APIClient) Search(ctx context.Context, peer domain.Identity, query string) ([]domain.Message, error) {
	var out []domain.Message
	path := "/api/chat/" + url.PathEscape(peer.String()) + "/search?q=" + url.QueryEscape(query)
	err := c.do(ctx, http.MethodGet, path, nil, &out)
	return out, err
}

func (c *APIClient) Presence(ctx context.Context) ([]domain.Identity, error) {
	var out struct {
		UserIDs []domain.Identity `json:"userIds"`
	}
	err := c.do(ctx, http.MethodGet, "/api/presence", nil, &out)
	return out.UserIDs, err
}

func (c *APIClient) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= http.StatusBadRequest {
		var failure struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&failure)
		return &APIError{StatusCode: resp.StatusCode, Message: failure.Message}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}
