// ABOUTME: HTTP client for the news content API
// ABOUTME: Wraps the content, reader and preview endpoints with typed results

package newsclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// maxErrorBody bounds how much of a failed response is read for its problem details
const maxErrorBody = 64 << 10

// Client talks to a running news content API server
type Client struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
}

// NewClient creates a new client with the given options
func NewClient(options ...Option) (*Client, error) {
	config := defaultConfig()

	for _, opt := range options {
		if err := opt(&config); err != nil {
			return nil, err
		}
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: config.Timeout}
	}

	return &Client{
		baseURL:    config.BaseURL,
		httpClient: httpClient,
		userAgent:  config.UserAgent,
	}, nil
}

// Content extracts the main body of one article. format is html, markdown or empty.
// A page without recognisable content is not an error; check Extracted.
func (c *Client) Content(ctx context.Context, articleURL, format string) (*Content, error) {
	if strings.TrimSpace(articleURL) == "" {
		return nil, NewError(ErrorTypeValidation, "article URL is required")
	}

	query := url.Values{"url": {articleURL}}
	if format != "" {
		query.Set("format", format)
	}

	var out Content
	if err := c.do(ctx, http.MethodGet, "/news/content", query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ContentBatch extracts several articles as HTML. Results keep the input order
// and carry per-URL failures inline.
func (c *Client) ContentBatch(ctx context.Context, articleURLs []string) ([]ContentResult, error) {
	return c.ContentBatchFormat(ctx, articleURLs, "")
}

// ContentBatchFormat is ContentBatch with an explicit output format
func (c *Client) ContentBatchFormat(ctx context.Context, articleURLs []string, format string) ([]ContentResult, error) {
	if len(articleURLs) == 0 {
		return nil, NewError(ErrorTypeValidation, "at least one article URL is required")
	}

	var out contentBatchResponse
	body := contentBatchRequest{URLs: articleURLs, Format: format}
	if err := c.do(ctx, http.MethodPost, "/news/content/batch", nil, body, &out); err != nil {
		return nil, err
	}
	return out.Results, nil
}

// ReaderView fetches the readability view of one page
func (c *Client) ReaderView(ctx context.Context, articleURL string) (*ReaderView, error) {
	if strings.TrimSpace(articleURL) == "" {
		return nil, NewError(ErrorTypeValidation, "article URL is required")
	}

	var out ReaderView
	if err := c.do(ctx, http.MethodGet, "/news/reader", url.Values{"url": {articleURL}}, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Preview fetches link card metadata for one page
func (c *Client) Preview(ctx context.Context, pageURL string) (*Preview, error) {
	if strings.TrimSpace(pageURL) == "" {
		return nil, NewError(ErrorTypeValidation, "page URL is required")
	}

	var out Preview
	if err := c.do(ctx, http.MethodGet, "/news/preview", url.Values{"url": {pageURL}}, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Health returns nil when the server answers its health check
func (c *Client) Health(ctx context.Context) error {
	var out struct {
		Status string `json:"status"`
	}
	return c.do(ctx, http.MethodGet, "/health", nil, nil, &out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return NewError(ErrorTypeValidation, "failed to encode request").WithCause(err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return NewError(ErrorTypeConfiguration, "failed to build request").WithCause(err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return NewError(ErrorTypeNetwork, "request failed").WithCause(err).WithContext("endpoint", path)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeProblem(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return NewError(ErrorTypeParsing, "failed to decode response").WithCause(err).WithContext("endpoint", path)
	}
	return nil
}

func decodeProblem(resp *http.Response) error {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Title:      http.StatusText(resp.StatusCode),
	}

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	var p problem
	if json.Unmarshal(raw, &p) == nil {
		if p.Title != "" {
			apiErr.Title = p.Title
		}
		apiErr.Detail = p.Detail
	}
	return apiErr
}
