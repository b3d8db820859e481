// ABOUTME: Configuration options for the news content API client
// ABOUTME: Provides functional options pattern for flexible client configuration

package newsclient

import (
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	// DefaultBaseURL targets a locally running server
	DefaultBaseURL = "http://localhost:8000"

	// DefaultTimeout leaves headroom over the server's own 10s fetch timeout
	DefaultTimeout = 30 * time.Second

	// DefaultUserAgent identifies the client to the server
	DefaultUserAgent = "newsclient/1.0"
)

// Config holds the configuration for the client
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
	UserAgent  string
}

// Option is a functional option for configuring the client
type Option func(*Config) error

// WithBaseURL sets the server address, e.g. https://news.example.com
func WithBaseURL(baseURL string) Option {
	return func(c *Config) error {
		u, err := url.Parse(baseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return NewError(ErrorTypeConfiguration, "invalid base URL").WithContext("base_url", baseURL)
		}
		c.BaseURL = strings.TrimRight(baseURL, "/")
		return nil
	}
}

// WithHTTPClient sets a custom HTTP client. Its own timeout is kept.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Config) error {
		if client == nil {
			return NewError(ErrorTypeConfiguration, "HTTP client is required")
		}
		c.HTTPClient = client
		return nil
	}
}

// WithTimeout sets the per-request timeout of the default HTTP client
func WithTimeout(timeout time.Duration) Option {
	return func(c *Config) error {
		if timeout <= 0 {
			return NewError(ErrorTypeConfiguration, "timeout must be positive").WithContext("timeout", timeout.String())
		}
		c.Timeout = timeout
		return nil
	}
}

// WithUserAgent sets the User-Agent header sent to the server
func WithUserAgent(userAgent string) Option {
	return func(c *Config) error {
		c.UserAgent = userAgent
		return nil
	}
}

// defaultConfig returns the default client configuration
func defaultConfig() Config {
	return Config{
		BaseURL:   DefaultBaseURL,
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
	}
}
