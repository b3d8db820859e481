// ABOUTME: Content handler for the Huma API
// ABOUTME: Exposes single and batch article body extraction

package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"newsfeed-api/api/dto/mappers"
	"newsfeed-api/api/dto/requests"
	"newsfeed-api/api/dto/responses"
	"newsfeed-api/core/domain"
	"newsfeed-api/core/interfaces"
	"newsfeed-api/pkg/featureflags"

	"github.com/danielgtaylor/huma/v2"
)

// DefaultMaxBatchSize caps the URLs accepted by one batch request
const DefaultMaxBatchSize = 20

// ContentHandler handles article content extraction requests
type ContentHandler struct {
	contentService interfaces.ContentService
	flags          featureflags.Manager
	maxBatchSize   int
}

// NewContentHandler creates a new content handler. A nil flag manager enables everything.
func NewContentHandler(contentService interfaces.ContentService, flags featureflags.Manager, maxBatchSize int) *ContentHandler {
	if flags == nil {
		flags = featureflags.NewDefaultManager()
	}
	if maxBatchSize <= 0 {
		maxBatchSize = DefaultMaxBatchSize
	}
	return &ContentHandler{
		contentService: contentService,
		flags:          flags,
		maxBatchSize:   maxBatchSize,
	}
}

// RegisterRoutes registers all content-related routes
func (h *ContentHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getContent",
		Method:      http.MethodGet,
		Path:        "/news/content",
		Summary:     "Extract article content",
		Description: "Fetches the page and returns its main article body with navigation, ads and boilerplate removed",
		Tags:        []string{"Content"},
	}, h.GetContent)

	huma.Register(api, huma.Operation{
		OperationID: "getContentBatch",
		Method:      http.MethodPost,
		Path:        "/news/content/batch",
		Summary:     "Extract article content for several URLs",
		Description: "Extracts each URL concurrently. Per-URL failures are reported inline",
		Tags:        []string{"Content"},
	}, h.GetContentBatch)
}

// GetContentInput defines the input for the GetContent operation
type GetContentInput struct {
	URL    string `query:"url" doc:"Absolute http(s) URL of the article page" example:"https://example.com/news/story"`
	Format string `query:"format" doc:"Output format: html (default) or markdown"`
}

// GetContentOutput defines the output for the GetContent operation
type GetContentOutput struct {
	Body responses.ContentResponse
}

// GetContent handles single page extraction
func (h *ContentHandler) GetContent(ctx context.Context, input *GetContentInput) (*GetContentOutput, error) {
	if strings.TrimSpace(input.URL) == "" {
		return nil, huma.Error400BadRequest("URL parameter is required")
	}
	if err := h.checkFormat(ctx, input.Format); err != nil {
		return nil, err
	}

	content, err := h.contentService.Extract(ctx, input.URL, input.Format)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &GetContentOutput{Body: *mappers.ToContentResponse(content)}, nil
}

// GetContentBatchInput defines the input for the GetContentBatch operation
type GetContentBatchInput struct {
	Body requests.ContentBatchRequest
}

// GetContentBatchOutput defines the output for the GetContentBatch operation
type GetContentBatchOutput struct {
	Body responses.ContentBatchResponse
}

// GetContentBatch handles batch extraction
func (h *ContentHandler) GetContentBatch(ctx context.Context, input *GetContentBatchInput) (*GetContentBatchOutput, error) {
	if !h.flags.IsEnabled(ctx, featureflags.BatchEnabled) {
		return nil, featureDisabled("Batch extraction")
	}
	if len(input.Body.URLs) == 0 {
		return nil, huma.Error400BadRequest("No URLs provided")
	}
	if len(input.Body.URLs) > h.maxBatchSize {
		return nil, huma.Error400BadRequest(fmt.Sprintf("At most %d URLs per request", h.maxBatchSize))
	}
	if err := h.checkFormat(ctx, input.Body.Format); err != nil {
		return nil, err
	}

	results := h.contentService.ExtractBatch(ctx, input.Body.URLs, input.Body.Format)

	return &GetContentBatchOutput{Body: *mappers.ToContentBatchResponse(results)}, nil
}

// checkFormat rejects markdown output while the markdown flag is off
func (h *ContentHandler) checkFormat(ctx context.Context, format string) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case domain.FormatMarkdown, "md":
		if !h.flags.IsEnabled(ctx, featureflags.MarkdownEnabled) {
			return huma.Error400BadRequest("Markdown output is disabled")
		}
	}
	return nil
}
