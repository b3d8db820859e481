// ABOUTME: Domain models for extracted article content
// ABOUTME: Defines single and batch extraction results returned by the content service

package domain

// Content formats supported by the content service
const (
	FormatHTML     = "html"
	FormatMarkdown = "markdown"
)

// Result statuses used in batch responses
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// ArticleContent is the main body extracted from an article page
type ArticleContent struct {
	URL       string `json:"url"`
	Content   string `json:"content"`
	Format    string `json:"format"`
	Strategy  string `json:"strategy"`
	Extracted bool   `json:"extracted"`
}

// ContentResult is one entry of a batch extraction
type ContentResult struct {
	URL       string `json:"url"`
	Status    string `json:"status"`
	Content   string `json:"content,omitempty"`
	Strategy  string `json:"strategy,omitempty"`
	Extracted bool   `json:"extracted"`
	Error     string `json:"error,omitempty"`
}
