package scholar

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/time/rate"
)

const (
	// BaseURL is the public Scholar origin the profile listing lives on.
	BaseURL = "https://scholar.google.com"

	// DefaultTimeout bounds each page request.
	DefaultTimeout = 30 * time.Second

	// requestsPerSecond spaces out page fetches. Scholar blocks clients
	// that hammer the listing.
	requestsPerSecond = 1.0

	// userAgent identifies the client; Scholar rejects requests that send
	// no User-Agent at all.
	userAgent = "Mozilla/5.0 (X11; Linux x86_64)"
)

// Client fetches pages of a profile's publication listing.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	baseURL    string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = u
	}
}

// NewClient creates a rate-limited client for the Scholar listing.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		limiter:    rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
		baseURL:    BaseURL,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// FetchPage retrieves one page of the listing for user, starting at the
// zero-based result offset cstart. Any transport failure or non-OK status
// is an error; callers abort the run rather than retry, since a rerun is
// cheap and idempotent.
func (c *Client) FetchPage(ctx context.Context, user string, cstart, pageSize int) (*goquery.Document, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	pageURL := c.baseURL + "/citations?" + listingQuery(user, cstart, pageSize)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching listing at offset %d: %w", cstart, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching listing at offset %d: unexpected status %d", cstart, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing listing at offset %d: %w", cstart, err)
	}
	return doc, nil
}

// listingQuery builds the query string for one page of the publication
// listing, sorted by publication date descending.
func listingQuery(user string, cstart, pageSize int) string {
	q := url.Values{}
	q.Set("hl", "en")
	q.Set("user", user)
	q.Set("view_op", "list_works")
	q.Set("sortby", "pubdate")
	q.Set("cstart", strconv.Itoa(cstart))
	q.Set("pagesize", strconv.Itoa(pageSize))
	return q.Encode()
}
