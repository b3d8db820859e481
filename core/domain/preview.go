// ABOUTME: Domain model for link previews shown on article cards
// ABOUTME: Holds Open Graph and related metadata scraped from a page

package domain

// Preview is card metadata for an article URL
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
