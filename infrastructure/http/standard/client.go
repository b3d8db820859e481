// ABOUTME: Outbound page fetcher used by the extraction services
// ABOUTME: Browser-like GET with redirect following, charset decoding and a capped body size

package standard

import (
	"bytes"
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"newsfeed-api/core/domain"
	coreerrors "newsfeed-api/core/errors"
	"newsfeed-api/core/interfaces"

	"golang.org/x/net/html/charset"
)

const (
	// DefaultUserAgent mimics a desktop Chrome so news sites serve full markup
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

	// DefaultTimeout bounds a single fetch including redirects
	DefaultTimeout = 10 * time.Second

	// DefaultMaxBodyBytes caps how much of a page is read into memory
	DefaultMaxBodyBytes int64 = 5 << 20

	// DefaultMaxRedirects matches net/http's own redirect limit
	DefaultMaxRedirects = 10

	acceptHeader = "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8"
)

// ErrBodyTooLarge is returned when a page exceeds the configured body cap
var ErrBodyTooLarge = errors.New("response body exceeds size limit")

// Options configures a StandardHTTPClient
type Options struct {
	Timeout   time.Duration
	UserAgent string

	// InsecureSkipVerify disables TLS certificate verification for every
	// outbound request. SECURITY: any certificate is accepted, including
	// self-signed, expired and mismatched ones. Controlled by
	// FETCH_INSECURE_SKIP_VERIFY and enabled by default.
	InsecureSkipVerify bool

	MaxBodyBytes int64
	MaxRedirects int

	// MaxRetries is the number of extra attempts after a 5xx or transport
	// error. Extraction runs with zero.
	MaxRetries int

	// Logger enables outgoing request logging when set
	Logger interfaces.Logger
}

// DefaultOptions returns the fetch settings used for article extraction
func DefaultOptions() Options {
	return Options{
		Timeout:            DefaultTimeout,
		UserAgent:          DefaultUserAgent,
		InsecureSkipVerify: true,
		MaxBodyBytes:       DefaultMaxBodyBytes,
		MaxRedirects:       DefaultMaxRedirects,
	}
}

// StandardHTTPClient implements the HTTPClient interface using net/http
type StandardHTTPClient struct {
	client       *http.Client
	userAgent    string
	maxBodyBytes int64
	maxRetries   int
}

// NewStandardHTTPClient creates a new HTTP client from opts, filling zero values with defaults
func NewStandardHTTPClient(opts Options) *StandardHTTPClient {
	defaults := DefaultOptions()
	if opts.Timeout <= 0 {
		opts.Timeout = defaults.Timeout
	}
	if opts.UserAgent == "" {
		opts.UserAgent = defaults.UserAgent
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = defaults.MaxBodyBytes
	}
	if opts.MaxRedirects <= 0 {
		opts.MaxRedirects = defaults.MaxRedirects
	}
	if opts.MaxRetries < 0 {
		opts.MaxRetries = 0
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	// SECURITY: certificate verification is off when InsecureSkipVerify is set.
	transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: opts.InsecureSkipVerify}

	var rt http.RoundTripper = transport
	if opts.Logger != nil {
		rt = &LoggingRoundTripper{Transport: transport, Logger: opts.Logger}
	}

	maxRedirects := opts.MaxRedirects
	return &StandardHTTPClient{
		client: &http.Client{
			Timeout:   opts.Timeout,
			Transport: rt,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= maxRedirects {
					return fmt.Errorf("stopped after %d redirects", maxRedirects)
				}
				return nil
			},
		},
		userAgent:    opts.UserAgent,
		maxBodyBytes: opts.MaxBodyBytes,
		maxRetries:   opts.MaxRetries,
	}
}

// Get performs an HTTP GET request
func (c *StandardHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	resp, err := c.do(ctx, url)
	if err != nil {
		return nil, err
	}

	return &httpResponse{
		statusCode: resp.StatusCode,
		body:       resp.Body,
		headers:    resp.Header,
	}, nil
}

// Fetch retrieves an HTML page and decodes its body to UTF-8.
// Transport failures come back as *errors.FetchError and non-2xx statuses
// as *errors.ExternalAPIError.
func (c *StandardHTTPClient) Fetch(ctx context.Context, url string) (*domain.Page, error) {
	resp, err := c.do(ctx, url)
	if err != nil {
		return nil, &coreerrors.FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, &coreerrors.ExternalAPIError{
			StatusCode: resp.StatusCode,
			Message:    http.StatusText(resp.StatusCode),
			API:        resp.Request.URL.Host,
		}
	}

	contentType := resp.Header.Get("Content-Type")
	body, err := c.readBody(resp.Body, contentType)
	if err != nil {
		return nil, &coreerrors.FetchError{URL: url, Err: err}
	}

	return &domain.Page{
		URL:         resp.Request.URL.String(),
		StatusCode:  resp.StatusCode,
		ContentType: contentType,
		Body:        body,
	}, nil
}

// do sends the GET, retrying 5xx and transport errors up to maxRetries times
func (c *StandardHTTPClient) do(ctx context.Context, url string) (*http.Response, error) {
	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			// Exponential backoff: 100ms, 200ms, 400ms
			backoff := time.Duration(100*(1<<(attempt-1))) * time.Millisecond
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", c.userAgent)
		req.Header.Set("Accept", acceptHeader)

		resp, err := c.client.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		// Don't retry on success or 4xx errors, and hand the last 5xx back as-is
		if resp.StatusCode < 500 || attempt == c.maxRetries {
			return resp, nil
		}

		resp.Body.Close()
		lastErr = fmt.Errorf("server returned %d", resp.StatusCode)
	}

	return nil, lastErr
}

func (c *StandardHTTPClient) readBody(body io.Reader, contentType string) ([]byte, error) {
	raw, err := io.ReadAll(io.LimitReader(body, c.maxBodyBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read body: %w", err)
	}
	if int64(len(raw)) > c.maxBodyBytes {
		return nil, ErrBodyTooLarge
	}

	decoder, err := charset.NewReader(bytes.NewReader(raw), contentType)
	if err != nil {
		// Unknown charset labels fall back to the raw bytes
		return raw, nil
	}
	decoded, err := io.ReadAll(decoder)
	if err != nil {
		return nil, fmt.Errorf("failed to decode body: %w", err)
	}
	return decoded, nil
}

// httpResponse implements the Response interface
type httpResponse struct {
	statusCode int
	body       io.ReadCloser
	headers    http.Header
}

// StatusCode returns the HTTP status code
func (r *httpResponse) StatusCode() int {
	return r.statusCode
}

// Body returns the response body
func (r *httpResponse) Body() io.ReadCloser {
	return r.body
}

// Header returns the value of the specified header
func (r *httpResponse) Header(key string) string {
	return r.headers.Get(key)
}
