package vivoshop

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/catalogwatch/backend/internal/domain"
)

// userAgent is sent on every outbound request; the storefront rejects
// obviously synthetic client identities.
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"

// Client talks to the shop: listing pages for the crawler and the product
// search API for price reconciliation. Every call is a single attempt with a
// bounded timeout; retrying via alternate URL templates is the crawler's
// business, not the transport's.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	pageSize    int
	rateLimiter *rate.Limiter
	debug       bool
}

// NewClient creates a shop client. rps bounds the outbound request rate
// across both listing and search calls.
func NewClient(baseURL string, pageSize int, rps float64, burst int) *Client {
	if rps <= 0 {
		rps = 2
	}
	if burst <= 0 {
		burst = 4
	}
	if pageSize <= 0 {
		pageSize = 6
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		baseURL:     baseURL,
		pageSize:    pageSize,
		rateLimiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

// SetDebug enables request/response logging.
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// FetchText retrieves one listing page. Any transport failure, non-200
// status or unreadable body degrades to the empty string; the caller treats
// that as "page absent".
func (c *Client) FetchText(ctx context.Context, pageURL string) string {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return ""
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return ""
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept-Language", "id-ID,id;q=0.9,en;q=0.8")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if c.debug {
			log.Printf("[shop] fetch %s failed: %v", pageURL, err)
		}
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		if c.debug {
			log.Printf("[shop] fetch %s returned status %d", pageURL, resp.StatusCode)
		}
		return ""
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return ""
	}
	return string(body)
}

// Search queries the product search API by keyword. Only the caller decides
// what to do with an empty list; this method does not treat it as an error.
func (c *Client) Search(ctx context.Context, keyword string) (*domain.ShopSearchResponse, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	endpoint := fmt.Sprintf("%s/api/v3/product/search", c.baseURL)
	params := url.Values{}
	params.Add("keyword", keyword)
	params.Add("page", "1")
	params.Add("pageSize", strconv.Itoa(c.pageSize))
	params.Add("platform", "1")
	params.Add("country", "ID")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s?%s", endpoint, params.Encode()), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrShopAPIFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", domain.ErrShopAPIFailure, resp.StatusCode)
	}

	var searchResp domain.ShopSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&searchResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if c.debug {
		log.Printf("[shop] search %q returned %d hits", keyword, len(searchResp.Data.List))
	}
	return &searchResp, nil
}
