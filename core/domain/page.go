// ABOUTME: Domain model for a fetched web page
// ABOUTME: Carries the decoded body and response metadata handed to extractors

package domain

// Page is a successfully fetched HTML document
type Page struct {
	// URL is the final URL after redirects
	URL string

	StatusCode  int
	ContentType string

	// Body is the response body decoded to UTF-8
	Body []byte
}
