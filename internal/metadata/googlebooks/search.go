package googlebooks

import (
	"context"
	"encoding/json/v2"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/bookshelfapp/bookshelf-server/internal/domain"
	"github.com/bookshelfapp/bookshelf-server/internal/errors"
)

const maxResults = 20

// Search queries the volumes API for books matching the free-text query.
// An empty query fails validation before any I/O happens.
func (c *Client) Search(ctx context.Context, query string) ([]domain.Book, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errors.Validation("search query is required")
	}

	resp, err := c.volumes(ctx, query)
	if err != nil {
		return nil, err
	}

	books := make([]domain.Book, 0, len(resp.Items))
	for i := range resp.Items {
		books = append(books, convertVolume(&resp.Items[i]))
	}
	return books, nil
}

// LookupISBN finds a single book by ISBN. Hyphens in the ISBN are
// stripped before querying. Returns a not found error when the API has
// no match.
func (c *Client) LookupISBN(ctx context.Context, isbn string) (*domain.Book, error) {
	isbn = strings.ReplaceAll(strings.TrimSpace(isbn), "-", "")
	if isbn == "" {
		return nil, errors.Validation("ISBN is required")
	}

	resp, err := c.volumes(ctx, "isbn:"+isbn)
	if err != nil {
		return nil, err
	}
	if len(resp.Items) == 0 {
		return nil, errors.NotFoundf("no book found for ISBN %s", isbn)
	}

	book := convertVolume(&resp.Items[0])
	return &book, nil
}

// volumes performs one request against the volumes endpoint.
func (c *Client) volumes(ctx context.Context, query string) (*volumesResponse, error) {
	if err := c.wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("maxResults", fmt.Sprintf("%d", maxResults))

	searchURL := c.baseURL + "/volumes?" + params.Encode()

	c.logger.Debug("searching Google Books",
		"query", query,
		"url", searchURL,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Upstream("book lookup request failed").WithCause(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Upstreamf("book lookup failed: status %d", resp.StatusCode)
	}

	var volumesResp volumesResponse
	if err := json.UnmarshalRead(resp.Body, &volumesResp); err != nil {
		return nil, errors.Upstream("parse book lookup response").WithCause(err)
	}

	c.logger.Debug("Google Books search results",
		"query", query,
		"count", volumesResp.TotalItems,
	)

	return &volumesResp, nil
}
