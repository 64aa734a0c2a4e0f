// Package client is the Go SDK for the bookden API. It wraps the HTTP
// transport, unwraps the {code, message, data} response envelope and
// exposes one typed module per resource.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// TokenSource supplies the bearer token attached to outbound requests.
// An empty token means the request goes out unauthenticated.
type TokenSource interface {
	Token() string
}

// Config configures a Client.
type Config struct {
	// BaseURL is the API root, e.g. "http://localhost:3000/api".
	BaseURL string

	// HTTPClient overrides the default client (5s timeout).
	HTTPClient *http.Client

	// Tokens supplies the bearer token. Optional.
	Tokens TokenSource

	// OnSessionExpired is invoked when the server reports an expired
	// session. The user store registers its ClearUser here; the adapter
	// never mutates store state directly.
	OnSessionExpired func()

	Logger zerolog.Logger
}

// Client is the HTTP adapter all domain modules delegate to.
type Client struct {
	baseURL          string
	httpClient       *http.Client
	tokens           TokenSource
	onSessionExpired func()
	logger           zerolog.Logger

	Books       *BooksAPI
	Chapters    *ChaptersAPI
	Ratings     *RatingsAPI
	Tags        *TagsAPI
	Auth        *AuthAPI
	Preferences *PreferencesAPI
}

// New creates a Client for the given configuration.
func New(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 5 * time.Second}
	}

	c := &Client{
		baseURL:          strings.TrimRight(cfg.BaseURL, "/"),
		httpClient:       httpClient,
		tokens:           cfg.Tokens,
		onSessionExpired: cfg.OnSessionExpired,
		logger:           cfg.Logger,
	}

	c.Books = &BooksAPI{client: c}
	c.Chapters = &ChaptersAPI{client: c}
	c.Ratings = &RatingsAPI{client: c}
	c.Tags = &TagsAPI{client: c}
	c.Auth = &AuthAPI{client: c}
	c.Preferences = &PreferencesAPI{client: c}

	return c
}

// envelope is the wire wrapper around every response. Code 0 is success.
type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// request performs one API call and unmarshals the unwrapped payload into
// out (which may be nil). Envelope failures come back as *APIError;
// transport failures pass through wrapped. No retries.
func (c *Client) request(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Str("method", method).Str("path", path).Msg("request failed")
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("unexpected response (status %d): %w", resp.StatusCode, err)
	}

	if env.Code != 0 {
		apiErr := &APIError{Code: env.Code, Message: env.Message}
		if apiErr.SessionExpired() && c.onSessionExpired != nil {
			c.onSessionExpired()
		}
		c.logger.Warn().Int("code", env.Code).Str("path", path).Str("message", env.Message).Msg("api error")
		return apiErr
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("failed to decode response payload: %w", err)
		}
	}

	return nil
}
