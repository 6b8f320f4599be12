// Package rest is the HTTP client for the ResearchHub backend API.
// Every backend response uses one canonical envelope
// {success, message, data}; the envelope is validated here, once, and
// never re-guessed by callers.
package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/researchhub/searchd/internal/domain"
)

// Client talks to the ResearchHub backend.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	apiKey         string
	onUnauthorized func()
	logger         *zap.Logger
}

// Config holds backend client settings.
type Config struct {
	BaseURL string
	Timeout time.Duration
	APIKey  string
	// OnUnauthorized is invoked (if non-nil) whenever the backend answers
	// 401, as an explicit policy hook for the embedding application
	// (session teardown, re-login). The request itself still fails with
	// domain.ErrUnauthorized.
	OnUnauthorized func()
	Logger         *zap.Logger
}

// NewClient creates a backend API client.
func NewClient(cfg *Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		httpClient:     &http.Client{Timeout: timeout},
		apiKey:         cfg.APIKey,
		onUnauthorized: cfg.OnUnauthorized,
		logger:         logger,
	}
}

// envelope is the canonical backend response wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// GetJSON issues GET <base>/<path>?<query> and decodes the envelope's data
// field into out. A failed envelope (success=false) or a non-2xx status is
// an error carrying the backend's message when one was given.
func (c *Client) GetJSON(ctx context.Context, path string, query url.Values, out any) error {
	u := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w: %w", path, err, domain.ErrBackendUnavailable)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusUnauthorized {
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return fmt.Errorf("%s: %w", path, domain.ErrUnauthorized)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
	if err != nil {
		return fmt.Errorf("read response: %w: %w", err, domain.ErrBackendUnavailable)
	}

	var env envelope
	if jsonErr := json.Unmarshal(body, &env); jsonErr != nil {
		return fmt.Errorf("%s: status %d, malformed envelope: %w",
			path, resp.StatusCode, domain.ErrBackendUnavailable)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !env.Success {
		msg := env.Message
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return fmt.Errorf("%s: status %d: %s: %w",
			path, resp.StatusCode, msg, domain.ErrBackendUnavailable)
	}

	if out != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("%s: decode data: %w: %w", path, err, domain.ErrBackendUnavailable)
		}
	}
	return nil
}

// Ping checks backend reachability via the categories endpoint.
func (c *Client) Ping(ctx context.Context) error {
	return c.GetJSON(ctx, "/api/categories", nil, nil)
}
