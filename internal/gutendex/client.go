package gutendex

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/mmcdole/folio/internal/domain"
)

const (
	// DefaultBaseURL is the public books collection endpoint
	DefaultBaseURL = "https://gutendex.com/books"

	defaultTimeout = 30 * time.Second
	userAgent      = "Folio/1.0"
)

// Client implements domain.BookClient for the Gutendex API
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

var _ domain.BookClient = (*Client)(nil)

// NewClient creates a new API client. A zero timeout uses the default.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// doRequest performs a GET against the collection endpoint
func (c *Client) doRequest(ctx context.Context, query url.Values) ([]byte, error) {
	reqURL := c.baseURL
	if len(query) > 0 {
		reqURL = fmt.Sprintf("%s/?%s", reqURL, query.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	c.logger.Debug("gutendex request", "url", reqURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("gutendex request failed", "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrAPIUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("gutendex request error", "status", resp.StatusCode, "bodyLen", len(body))
		return nil, fmt.Errorf("%w: status %d", domain.ErrBadResponse, resp.StatusCode)
	}

	return body, nil
}

// parseResponse decodes the results envelope
func (c *Client) parseResponse(body []byte) (*ListResponse, error) {
	var resp ListResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		c.logger.Error("JSON parse error", "error", err, "bodyLen", len(body))
		return nil, fmt.Errorf("%w: %v", domain.ErrBadResponse, err)
	}
	return &resp, nil
}

// ListBooks fetches the collection with no query parameters
func (c *Client) ListBooks(ctx context.Context) ([]domain.Book, error) {
	body, err := c.doRequest(ctx, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.parseResponse(body)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("fetched books", "count", len(resp.Results), "total", resp.Count)
	return resp.Results, nil
}

// GetBook fetches a single book by id
func (c *Client) GetBook(ctx context.Context, id int) (*domain.Book, error) {
	query := url.Values{}
	query.Set("ids", strconv.Itoa(id))

	body, err := c.doRequest(ctx, query)
	if err != nil {
		return nil, err
	}

	resp, err := c.parseResponse(body)
	if err != nil {
		return nil, err
	}

	if len(resp.Results) == 0 {
		return nil, domain.ErrBookNotFound
	}

	book := resp.Results[0]
	return &book, nil
}
