// ABOUTME: Reader handler for the Huma API
// ABOUTME: Provides readability-based reader views for one or many article URLs

package handlers

import (
	"context"
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

// ReaderHandler handles reader view extraction requests
type ReaderHandler struct {
	readerService interfaces.ReaderService
	flags         featureflags.Manager
	maxBatchSize  int
}

// NewReaderHandler creates a new reader handler
func NewReaderHandler(readerService interfaces.ReaderService, flags featureflags.Manager, maxBatchSize int) *ReaderHandler {
	if flags == nil {
		flags = featureflags.NewDefaultManager()
	}
	if maxBatchSize <= 0 {
		maxBatchSize = DefaultMaxBatchSize
	}
	return &ReaderHandler{
		readerService: readerService,
		flags:         flags,
		maxBatchSize:  maxBatchSize,
	}
}

// RegisterRoutes registers all reader-related routes
func (h *ReaderHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getReaderView",
		Method:      http.MethodGet,
		Path:        "/news/reader",
		Summary:     "Extract reader view",
		Description: "Builds a readability view of the page with markdown and plain text renditions",
		Tags:        []string{"Reader"},
	}, h.GetReaderView)

	huma.Register(api, huma.Operation{
		OperationID: "getReaderViews",
		Method:      http.MethodPost,
		Path:        "/news/reader/batch",
		Summary:     "Extract reader views from URLs",
		Description: "Builds reader views for several pages. Failures are reported per view",
		Tags:        []string{"Reader"},
	}, h.GetReaderViews)
}

// GetReaderViewInput defines the input for the GetReaderView operation
type GetReaderViewInput struct {
	URL string `query:"url" doc:"Absolute http(s) URL of the article page"`
}

// GetReaderViewOutput defines the output for the GetReaderView operation
type GetReaderViewOutput struct {
	Body domain.ReaderView
}

// GetReaderView handles reader view extraction for one page
func (h *ReaderHandler) GetReaderView(ctx context.Context, input *GetReaderViewInput) (*GetReaderViewOutput, error) {
	if !h.flags.IsEnabled(ctx, featureflags.ReaderEnabled) {
		return nil, featureDisabled("Reader view")
	}
	if strings.TrimSpace(input.URL) == "" {
		return nil, huma.Error400BadRequest("URL parameter is required")
	}

	view, err := h.readerService.ExtractReaderView(ctx, input.URL)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &GetReaderViewOutput{Body: *view}, nil
}

// GetReaderViewsInput defines the input for the GetReaderViews operation
type GetReaderViewsInput struct {
	Body requests.ReaderViewRequest
}

// GetReaderViewsOutput defines the output for the GetReaderViews operation
type GetReaderViewsOutput struct {
	Body responses.ReaderViewResponse
}

// GetReaderViews handles reader view extraction for several pages
func (h *ReaderHandler) GetReaderViews(ctx context.Context, input *GetReaderViewsInput) (*GetReaderViewsOutput, error) {
	if !h.flags.IsEnabled(ctx, featureflags.ReaderEnabled) || !h.flags.IsEnabled(ctx, featureflags.BatchEnabled) {
		return nil, featureDisabled("Batch reader view")
	}
	if len(input.Body.URLs) == 0 {
		return nil, huma.Error400BadRequest("No URLs provided")
	}
	if len(input.Body.URLs) > h.maxBatchSize {
		return nil, huma.Error400BadRequest("Too many URLs in one request")
	}

	views := h.readerService.ExtractReaderViews(ctx, input.Body.URLs)

	return &GetReaderViewsOutput{Body: *mappers.ToReaderViewResponse(views)}, nil
}
