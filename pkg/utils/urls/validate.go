// ABOUTME: URL helpers shared by the extraction services
// ABOUTME: Validates article URLs and derives hosts for logging and markdown links

package urls

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate checks that raw is an absolute http(s) URL with a host
func Validate(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("url is required")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("url could not be parsed")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("url must use http or https")
	}
	if u.Hostname() == "" {
		return nil, fmt.Errorf("url must include a host")
	}

	return u, nil
}

// Origin returns scheme://host for raw, or "" when raw is not a valid URL
func Origin(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return ""
	}
	return u.Scheme + "://" + u.Host
}
