package jellyfin

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// movieFetchLimit bounds a single Items call. Libraries larger than this
// are paged through.
const movieFetchLimit = 1000

// Client represents a Jellyfin API client
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

// NewClient creates a new Jellyfin client
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
func (c *Client) doRequest(ctx context.Context, endpoint string, params url.Values, out any) error {
	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", c.apiKey)
	url := fmt.Sprintf("%s/%s?%s", c.baseURL, endpoint, params.Encode())

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

// SystemInfo retrieves public system information from the Jellyfin server
func (c *Client) SystemInfo(ctx context.Context) (*SystemInfo, error) {
	var info SystemInfo
	if err := c.doRequest(ctx, "System/Info/Public", nil, &info); err != nil {
		return nil, fmt.Errorf("failed to connect to Jellyfin: %w", err)
	}
	return &info, nil
}

// Movies enumerates all movie items in the library, including their
// filesystem paths
func (c *Client) Movies(ctx context.Context) ([]Item, error) {
	var all []Item

	for start := 0; ; start += movieFetchLimit {
		params := url.Values{}
		params.Set("IncludeItemTypes", "Movie")
		params.Set("ExcludeItemTypes", "Folder,Episode,Season,Series")
		params.Set("MediaTypes", "Video")
		params.Set("Fields", "Path")
		params.Set("IsFolder", "false")
		params.Set("Recursive", "true")
		params.Set("Limit", strconv.Itoa(movieFetchLimit))
		params.Set("StartIndex", strconv.Itoa(start))

		var page itemsResponse
		if err := c.doRequest(ctx, "Items", params, &page); err != nil {
			return nil, fmt.Errorf("failed to list movies: %w", err)
		}

		all = append(all, page.Items...)

		if len(page.Items) == 0 || len(all) >= page.TotalRecordCount {
			break
		}
	}

	c.logger.Debug().
		Int("count", len(all)).
		Msg("Retrieved movie items from Jellyfin")

	return all, nil
}
