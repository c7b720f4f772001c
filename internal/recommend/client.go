// Package recommend provides the HTTP client for the book
// recommendation service.
package recommend

import (
	"bytes"
	"context"
	"encoding/json/v2"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/bookshelfapp/bookshelf-server/internal/domain"
	"github.com/bookshelfapp/bookshelf-server/internal/errors"
)

// Client talks to the recommendation service. Requests carry the
// user's library so the service can tailor suggestions; responses are
// either a recommendation list or a service-reported error. There is
// no retry: the caller surfaces failures directly to the user.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a new recommendation client.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// libraryBook is the shape of one library entry in the request payload.
type libraryBook struct {
	Title   string   `json:"title"`
	Authors []string `json:"authors"`
	Genres  []string `json:"genres"`
}

type recommendRequest struct {
	Books []libraryBook `json:"books"`
}

type recommendResponse struct {
	Recommendations []domain.RecommendedBook `json:"recommendations"`
	Error           string                   `json:"error,omitempty"`
}

// Recommend requests suggestions based on the given library.
func (c *Client) Recommend(ctx context.Context, books []domain.Book) ([]domain.RecommendedBook, error) {
	payload := recommendRequest{
		Books: make([]libraryBook, 0, len(books)),
	}
	for i := range books {
		payload.Books = append(payload.Books, libraryBook{
			Title:   books[i].Title,
			Authors: books[i].Authors,
			Genres:  books[i].Genres,
		})
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	url := c.baseURL + "/api/recommendations"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.logger.Debug("requesting recommendations", "library_size", len(books))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Upstream("recommendation request failed").WithCause(err)
	}
	defer resp.Body.Close()

	var recResp recommendResponse
	if err := json.UnmarshalRead(resp.Body, &recResp); err != nil {
		return nil, errors.Upstream("parse recommendation response").WithCause(err)
	}

	if resp.StatusCode != http.StatusOK {
		if recResp.Error != "" {
			return nil, errors.Upstreamf("recommendation service: %s", recResp.Error)
		}
		return nil, errors.Upstreamf("recommendation service: status %d", resp.StatusCode)
	}
	if recResp.Error != "" {
		return nil, errors.Upstreamf("recommendation service: %s", recResp.Error)
	}

	c.logger.Debug("received recommendations", "count", len(recResp.Recommendations))

	return recResp.Recommendations, nil
}
