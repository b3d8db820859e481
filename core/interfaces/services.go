// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines contracts for the content, reader and preview services used by handlers

package interfaces

import (
	"context"

	"newsfeed-api/core/domain"
)

// ContentService extracts the main article body from a page
type ContentService interface {
	// Extract fetches the page at url and returns its main content in the requested format.
	Extract(ctx context.Context, url, format string) (*domain.ArticleContent, error)

	// ExtractBatch extracts several pages concurrently. Results keep the input order.
	ExtractBatch(ctx context.Context, urls []string, format string) []domain.ContentResult
}

// ReaderService produces a readability view of a page
type ReaderService interface {
	ExtractReaderView(ctx context.Context, url string) (*domain.ReaderView, error)
	ExtractReaderViews(ctx context.Context, urls []string) []domain.ReaderView
}

// PreviewService scrapes card metadata for a page
type PreviewService interface {
	ExtractPreview(ctx context.Context, url string) (*domain.Preview, error)
}
