package jellyseerr

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Client represents a Jellyseerr API client
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     zerolog.Logger
}

// Option configures the client
type Option func(*Client)

// WithTimeout sets the HTTP client timeout
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a new Jellyseerr client. baseURL should include the
// API prefix, e.g. http://jellyseerr:5055/api/v1.
func NewClient(baseURL, apiKey string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("%w: URL is required", ErrInvalidConfig)
	}
	if apiKey == "" {
		return nil, fmt.Errorf("%w: API key is required", ErrInvalidConfig)
	}

	client := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// doRequest performs an authenticated request and returns the response body
func (c *Client) doRequest(ctx context.Context, method, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("X-Api-Key", c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return body, nil
}

// TestConnection tests the connection and API key against Jellyseerr
func (c *Client) TestConnection(ctx context.Context) error {
	if _, err := c.doRequest(ctx, http.MethodGet, "/auth/me"); err != nil {
		return fmt.Errorf("failed to connect to Jellyseerr: %w", err)
	}
	return nil
}

// UpdateRequestStatus sets the status of a media request. status must be
// StatusApprove or StatusDecline.
func (c *Client) UpdateRequestStatus(ctx context.Context, requestID, status string) error {
	if status != StatusApprove && status != StatusDecline {
		return fmt.Errorf("invalid request status %q", status)
	}
	if requestID == "" {
		return fmt.Errorf("request ID is required")
	}

	endpoint := fmt.Sprintf("/request/%s/%s", requestID, status)
	if _, err := c.doRequest(ctx, http.MethodPost, endpoint); err != nil {
		return fmt.Errorf("%w: request %s: %w", ErrStatusUpdateFailed, requestID, err)
	}

	c.logger.Info().
		Str("request_id", requestID).
		Str("status", status).
		Msg("Updated request status on Jellyseerr")

	return nil
}
