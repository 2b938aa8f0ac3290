// Package stash maps client operations onto the Stash HTTP API.
//
// Every operation builds exactly one request. Response bodies are
// opaque: they are returned as raw bytes for rendering, never parsed,
// and a non-2xx status is not an error at this layer.
package stash

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"go.uber.org/zap"

	"stash-client/internal/shared/logging"
)

const (
	// DefaultAPIBaseURL is the JSON API host.
	DefaultAPIBaseURL = "https://api.stash.cloud"
	// DefaultUploadBaseURL is the raw upload host.
	DefaultUploadBaseURL = "https://upload.stash.cloud"
)

// Client issues requests against the Stash API.
type Client struct {
	apiBaseURL    string
	uploadBaseURL string
	token         string
	httpClient    *http.Client
}

// Config holds client construction options. Zero values select the
// production hosts and the default HTTP transport.
type Config struct {
	APIBaseURL    string
	UploadBaseURL string
	Token         string
	HTTPClient    *http.Client
}

// New creates a Stash client. The token may be empty for operations
// that do not require authentication.
func New(cfg Config) *Client {
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = DefaultAPIBaseURL
	}
	if cfg.UploadBaseURL == "" {
		cfg.UploadBaseURL = DefaultUploadBaseURL
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{}
	}

	return &Client{
		apiBaseURL:    trimSlash(cfg.APIBaseURL),
		uploadBaseURL: trimSlash(cfg.UploadBaseURL),
		token:         cfg.Token,
		httpClient:    cfg.HTTPClient,
	}
}

// NewDefault creates a client for the production hosts. The
// STASH_API_URL and STASH_UPLOAD_URL environment variables override
// them, mainly for testing against a local server.
func NewDefault(token string) *Client {
	return New(Config{
		APIBaseURL:    os.Getenv("STASH_API_URL"),
		UploadBaseURL: os.Getenv("STASH_UPLOAD_URL"),
		Token:         token,
	})
}

// Response carries the raw outcome of one API call. StatusCode is
// informational only; callers render Body regardless.
type Response struct {
	StatusCode int
	Body       []byte
}

// apiRequest sends a JSON API request. A nil payload sends no body;
// otherwise the payload is marshaled and sent as application/json.
func (c *Client) apiRequest(ctx context.Context, method, path string, payload any) (*Response, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.apiBaseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.applyAuth(req)

	return c.do(req)
}

func (c *Client) applyAuth(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}

func (c *Client) do(req *http.Request) (*Response, error) {
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	logging.Debug("request completed",
		zap.String("method", req.Method),
		zap.String("url", req.URL.Redacted()),
		zap.Int("status", resp.StatusCode),
		zap.Int("body_bytes", len(data)),
		zap.Duration("duration", time.Since(start)),
	)

	return &Response{StatusCode: resp.StatusCode, Body: data}, nil
}

func trimSlash(s string) string {
	for len(s) > 0 && s[len(s)-1] == '/' {
		s = s[:len(s)-1]
	}
	return s
}
