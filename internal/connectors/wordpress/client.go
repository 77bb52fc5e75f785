package wordpress

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"net/http"
	"net/url"
	"strconv"

	"golang.org/x/oauth2"

	"github.com/custodia-labs/wpmigrate/internal/core/domain"
	"github.com/custodia-labs/wpmigrate/internal/logger"
)

// maxErrorBody bounds how much of an error response is read.
const maxErrorBody = 64 << 10

// Client reads collections from the WordPress REST API.
type Client struct {
	http        *http.Client
	cfg         Config
	rateLimiter *RateLimiter
}

// NewClient creates a new WordPress API client.
func NewClient(cfg *Config) *Client {
	return &Client{
		http:        newHTTPClient(cfg),
		cfg:         *cfg,
		rateLimiter: NewRateLimiter(cfg.Rate),
	}
}

// newHTTPClient returns a bearer-authenticated client when a token is set
// without a user. Basic auth is added per request.
func newHTTPClient(cfg *Config) *http.Client {
	var hc *http.Client
	if cfg.Token != "" && cfg.User == "" {
		ts := oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: cfg.Token},
		)
		hc = oauth2.NewClient(context.Background(), ts)
	} else {
		hc = &http.Client{}
	}
	hc.Timeout = cfg.Timeout
	return hc
}

// pageURL returns the URL of one page of a collection.
func (c *Client) pageURL(collection string, page int) string {
	q := url.Values{}
	q.Set("per_page", strconv.Itoa(c.cfg.PerPage))
	q.Set("page", strconv.Itoa(page))
	q.Set("orderby", "id")
	q.Set("order", "asc")
	return c.cfg.Endpoint + "/" + collection + "?" + q.Encode()
}

// FetchPage requests a single page of a collection.
func (c *Client) FetchPage(ctx context.Context, collection string, page int) (*Page, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	pageURL := c.pageURL(collection, page)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.cfg.UserAgent)
	if c.cfg.User != "" {
		req.SetBasicAuth(c.cfg.User, c.cfg.Token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, newAPIError(resp.StatusCode, pageURL, body)
	}

	items, err := decodeItems(resp.Body)
	if err != nil {
		return nil, err
	}

	p := &Page{Number: page, Items: items}
	readPagination(p, resp.Header)
	return p, nil
}

// Each yields every object of a collection, page by page, in server order.
// A failed page is yielded as a *domain.FetchError and ends the sequence.
func (c *Client) Each(ctx context.Context, collection string) iter.Seq2[map[string]any, error] {
	return func(yield func(map[string]any, error) bool) {
		for number := 1; ; number++ {
			fail := func(err error) {
				yield(nil, &domain.FetchError{
					Collection: collection,
					Page:       number,
					URL:        c.pageURL(collection, number),
					Err:        err,
				})
			}

			if err := ctx.Err(); err != nil {
				fail(err)
				return
			}

			page, err := c.FetchPage(ctx, collection, number)
			if err != nil {
				fail(err)
				return
			}

			if number == 1 {
				logger.Debug("Fetching %s: total=%d pages=%d", collection, page.Total, page.TotalPages)
			}
			logger.Debug("Fetched %s page %d (%d items)", collection, number, len(page.Items))

			for _, item := range page.Items {
				if !yield(item, nil) {
					return
				}
			}

			if !page.HasNext() {
				return
			}
		}
	}
}

// decodeItems reads a JSON array of objects, keeping numbers exact.
func decodeItems(r io.Reader) ([]map[string]any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var raw []map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedPayload, err)
	}

	for i, item := range raw {
		if item == nil {
			return nil, fmt.Errorf("%w: item %d is null", ErrUnexpectedPayload, i)
		}
		raw[i] = normaliseMap(item)
	}
	return raw, nil
}
