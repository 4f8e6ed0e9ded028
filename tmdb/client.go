package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Client represents a TMDB API client
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

// NewClient creates a new TMDB client
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

// doRequest performs an authenticated GET and decodes the JSON response
func (c *Client) doRequest(ctx context.Context, endpoint string, out any) error {
	url := fmt.Sprintf("%s%s?api_key=%s", c.baseURL, endpoint, c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	return nil
}

// TestConnection verifies the base URL and API key are usable
func (c *Client) TestConnection(ctx context.Context) error {
	var cfg struct {
		Images json.RawMessage `json:"images"`
	}
	if err := c.doRequest(ctx, "/configuration", &cfg); err != nil {
		return fmt.Errorf("failed to connect to TMDB: %w", err)
	}
	return nil
}

// Movie retrieves basic movie details for a TMDB ID
func (c *Client) Movie(ctx context.Context, tmdbID string) (*Movie, error) {
	var movie Movie
	if err := c.doRequest(ctx, "/movie/"+tmdbID, &movie); err != nil {
		return nil, err
	}
	return &movie, nil
}

// WatchProviders returns the names of services offering the movie under a
// subscription (flatrate) model in the given region, in upstream order.
// An empty slice with a nil error means the lookup succeeded and the movie
// is not streamable anywhere TMDB tracks; any transport, HTTP, or decode
// problem is returned as an error instead.
func (c *Client) WatchProviders(ctx context.Context, tmdbID, region string) ([]string, error) {
	var response watchProvidersResponse
	if err := c.doRequest(ctx, fmt.Sprintf("/movie/%s/watch/providers", tmdbID), &response); err != nil {
		return nil, err
	}

	regional, ok := response.Results[region]
	if !ok {
		c.logger.Debug().
			Str("tmdb_id", tmdbID).
			Str("region", region).
			Msg("No watch provider data for region")
		return nil, nil
	}

	providers := make([]string, 0, len(regional.Flatrate))
	for _, entry := range regional.Flatrate {
		providers = append(providers, entry.ProviderName)
	}

	c.logger.Debug().
		Str("tmdb_id", tmdbID).
		Str("region", region).
		Strs("providers", providers).
		Msg("Retrieved watch providers from TMDB")

	return providers, nil
}
