package jfrog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/devantler-tech/jnl/pkg/registry"
)

const (
	// AuthPath is appended to the registry key to form the credentials endpoint.
	AuthPath = "auth/jfrog"
	// APIKeyHeader carries the user's Artifactory API key.
	APIKeyHeader = "X-JFrog-Art-Api"

	maxBodyBytes    = 1 << 20
	maxErrorMessage = 256
)

// Client requests npm credentials from jFrog registries.
type Client struct {
	httpClient *http.Client
	scheme     string
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithScheme sets the scheme used to turn a registry key into a URL.
func WithScheme(scheme string) Option {
	return func(c *Client) {
		if scheme != "" {
			c.scheme = scheme
		}
	}
}

// WithLogger sets the logger used for diagnostic output.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient creates a Client. Without options it uses https and a client
// with no proxy.
func NewClient(opts ...Option) *Client {
	client := &Client{
		httpClient: NewHTTPClient(ProxyConfig{}),
		scheme:     registry.DefaultScheme,
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Endpoint returns the credentials endpoint URL for key.
func (c *Client) Endpoint(key registry.Key) string {
	return key.URL(c.scheme) + AuthPath
}

// Fetch performs one GET against the credentials endpoint of key and parses
// the response body into entries. Transport failures wrap ErrNetwork and
// non-2xx responses return an *HTTPError. The request is never retried.
func (c *Client) Fetch(ctx context.Context, key registry.Key, token string) ([]registry.Entry, error) {
	endpoint := c.Endpoint(key)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request for %s: %w", endpoint, err)
	}

	req.Header.Set(APIKeyHeader, token)

	c.logger.DebugContext(ctx, "requesting registry credentials", "url", endpoint)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNetwork, err)
	}

	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read response from %s: %w", ErrNetwork, endpoint, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, NewHTTPError(resp.StatusCode, endpoint, errorMessage(resp.StatusCode, body))
	}

	entries := ParseEntries(string(body))

	c.logger.DebugContext(ctx, "received registry credentials",
		"url", endpoint, "entries", len(entries))

	return entries, nil
}

// errorMessage picks a short description for a failed response.
func errorMessage(statusCode int, body []byte) string {
	message := strings.TrimSpace(string(body))
	if message == "" {
		return http.StatusText(statusCode)
	}

	if len(message) > maxErrorMessage {
		return message[:maxErrorMessage] + "..."
	}

	return message
}
