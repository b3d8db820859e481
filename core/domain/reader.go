// ABOUTME: Domain models and types for reader view functionality
// ABOUTME: Defines the structure for readability-extracted article content

package domain

// ReaderView represents readability-extracted article content from a webpage
type ReaderView struct {
	URL         string `json:"url"`
	Title       string `json:"title"`
	Byline      string `json:"byline,omitempty"`
	Excerpt     string `json:"excerpt,omitempty"`
	Content     string `json:"content"`     // HTML content
	Markdown    string `json:"markdown"`    // Markdown content
	TextContent string `json:"textContent"` // Plain text content
	SiteName    string `json:"siteName"`
	Image       string `json:"image"`
	Favicon     string `json:"favicon"`
	Status      string `json:"status"`
	Error       string `json:"error,omitempty"`
}
