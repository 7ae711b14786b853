package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/qyinm/placetui/types"
)

const (
	// DefaultBaseURL is the content API the screen was built against.
	DefaultBaseURL = "https://dewalaravel.com"
	userAgent      = "placetui/1.0 (+https://github.com/qyinm/placetui)"

	placesPath     = "/api/places"
	categoriesPath = "/api/categories"
)

// Client implements types.PlaceSource over the content API's JSON endpoints.
type Client struct {
	baseURL string
	client  *http.Client
}

// Compile-time interface check
var _ types.PlaceSource = (*Client)(nil)

// New creates a Client for baseURL. A zero timeout leaves requests unbounded
// except by their context.
func New(baseURL string, timeout time.Duration) *Client {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// BaseURL returns the API root the client talks to.
func (c *Client) BaseURL() string { return c.baseURL }

// GetPlaces fetches and decodes the place list.
func (c *Client) GetPlaces(ctx context.Context) ([]types.Place, error) {
	body, err := c.get(ctx, placesPath)
	if err != nil {
		return nil, fmt.Errorf("fetch places: %w", err)
	}
	defer body.Close()

	places, err := ParsePlaces(body)
	if err != nil {
		return nil, fmt.Errorf("parse places: %w", err)
	}
	return places, nil
}

// GetCategories fetches and decodes the category list.
func (c *Client) GetCategories(ctx context.Context) ([]types.Category, error) {
	body, err := c.get(ctx, categoriesPath)
	if err != nil {
		return nil, fmt.Errorf("fetch categories: %w", err)
	}
	defer body.Close()

	categories, err := ParseCategories(body)
	if err != nil {
		return nil, fmt.Errorf("parse categories: %w", err)
	}
	return categories, nil
}

func (c *Client) get(ctx context.Context, path string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		// Read a bounded slice of the body for error context
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code: %d, body: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	return resp.Body, nil
}
