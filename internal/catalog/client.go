package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// DefaultBaseURL is the public demo catalog API.
const DefaultBaseURL = "https://dummyjson.com"

// DefaultListLimit caps how many products the list endpoint returns.
// The backing store may hold more; nothing downstream assumes the full
// catalog was fetched.
const DefaultListLimit = 200

// ErrNotFound is returned by FetchOne when the source reports the id
// does not exist. Callers distinguish it from transport failures with
// errors.Is.
var ErrNotFound = errors.New("product not found")

// Client fetches products from the remote catalog source.
// It performs exactly one network call per operation and never retries.
type Client struct {
	baseURL string
	limit   int
	client  *http.Client
	limiter *rate.Limiter
}

// NewClient creates a Client for the given base URL.
// An empty baseURL falls back to DefaultBaseURL, limit <= 0 to
// DefaultListLimit. The limiter keeps us polite toward the public demo
// API when the user mashes refresh.
func NewClient(baseURL string, limit int, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if limit <= 0 {
		limit = DefaultListLimit
	}
	return &Client{
		baseURL: baseURL,
		limit:   limit,
		client:  &http.Client{Timeout: timeout},
		limiter: rate.NewLimiter(rate.Every(250*time.Millisecond), 4),
	}
}

// listResponse is the envelope the list endpoint wraps products in.
type listResponse struct {
	Products []Product `json:"products"`
	Total    int       `json:"total"`
	Skip     int       `json:"skip"`
	Limit    int       `json:"limit"`
}

// FetchAll retrieves the product list, capped at the configured limit.
// Returns the products verbatim plus the total the source reports for
// the whole backing store.
func (c *Client) FetchAll(ctx context.Context) ([]Product, int, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, 0, fmt.Errorf("rate limiter: %w", err)
	}

	url := fmt.Sprintf("%s/products?limit=%d", c.baseURL, c.limit)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch products: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, 0, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	var list listResponse
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, 0, fmt.Errorf("failed to parse product list: %w", err)
	}

	return list.Products, list.Total, nil
}

// FetchOne retrieves a single product by id.
// A 404 from the source yields ErrNotFound; any other failure is a
// transport error. id must be positive; the detail route never produces
// anything else, so a bad id is rejected before touching the network.
func (c *Client) FetchOne(ctx context.Context, id int) (Product, error) {
	if id <= 0 {
		return Product{}, fmt.Errorf("invalid product id %d", id)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return Product{}, fmt.Errorf("rate limiter: %w", err)
	}

	url := fmt.Sprintf("%s/products/%d", c.baseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Product{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return Product{}, fmt.Errorf("failed to fetch product: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return Product{}, fmt.Errorf("product %d: %w", id, ErrNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		return Product{}, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	var p Product
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return Product{}, fmt.Errorf("failed to parse product: %w", err)
	}

	return p, nil
}

const userAgent = "DQ-Product-Dashboard/1.0 (https://github.com/PhilTech-Hub/DQ-Product-Dashboard)"
