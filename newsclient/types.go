// ABOUTME: Public types for the news content API client
// ABOUTME: Mirrors the JSON bodies returned by the server endpoints

package newsclient

// Content formats accepted by Content and ContentBatch
const (
	FormatHTML     = "html"
	FormatMarkdown = "markdown"
)

// Content is the main body extracted from one article page
type Content struct {
	Content   string `json:"content"`
	URL       string `json:"url"`
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

// OK reports whether the entry holds content
func (r ContentResult) OK() bool {
	return r.Status == "ok"
}

// ReaderView is the readability rendition of a page
type ReaderView struct {
	URL         string `json:"url"`
	Title       string `json:"title"`
	Byline      string `json:"byline,omitempty"`
	Excerpt     string `json:"excerpt,omitempty"`
	Content     string `json:"content"`
	Markdown    string `json:"markdown"`
	TextContent string `json:"textContent"`
	SiteName    string `json:"siteName"`
	Image       string `json:"image"`
	Favicon     string `json:"favicon"`
	Status      string `json:"status"`
	Error       string `json:"error,omitempty"`
}

// Preview is link card metadata for a page
type Preview struct {
	URL         string   `json:"url"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Thumbnail   string   `json:"thumbnail"`
	Images      []string `json:"images"`
	SiteName    string   `json:"siteName"`
	ThemeColor  string   `json:"themeColor,omitempty"`
	Domain      string   `json:"domain"`
	Favicon     string   `json:"favicon"`
}

type contentBatchRequest struct {
	URLs   []string `json:"urls"`
	Format string   `json:"format,omitempty"`
}

type contentBatchResponse struct {
	Results []ContentResult `json:"results"`
}

type problem struct {
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail"`
}
