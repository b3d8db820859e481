// ABOUTME: Request DTOs for content extraction API endpoints
// ABOUTME: Defines the body accepted by batch content extraction

package requests

// ContentBatchRequest asks for the main content of several article pages
type ContentBatchRequest struct {
	// URLs of article pages, processed concurrently
	URLs []string `json:"urls,omitempty" example:"[\"https://example.com/article\"]" doc:"Article page URLs to extract"`

	// Format of every returned body
	Format string `json:"format,omitempty" example:"html" doc:"Output format: html (default) or markdown"`
}
