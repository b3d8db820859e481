// ABOUTME: Preview handler for the Huma API
// ABOUTME: Serves Open Graph card metadata for article links

package handlers

import (
	"context"
	"net/http"
	"strings"

	"newsfeed-api/core/domain"
	"newsfeed-api/core/interfaces"
	"newsfeed-api/pkg/featureflags"

	"github.com/danielgtaylor/huma/v2"
)

// PreviewHandler handles link preview requests
type PreviewHandler struct {
	previewService interfaces.PreviewService
	flags          featureflags.Manager
}

// NewPreviewHandler creates a new preview handler
func NewPreviewHandler(previewService interfaces.PreviewService, flags featureflags.Manager) *PreviewHandler {
	if flags == nil {
		flags = featureflags.NewDefaultManager()
	}
	return &PreviewHandler{previewService: previewService, flags: flags}
}

// RegisterRoutes registers preview routes
func (h *PreviewHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getPreview",
		Method:      http.MethodGet,
		Path:        "/news/preview",
		Summary:     "Extract link preview",
		Description: "Scrapes Open Graph, Twitter card and JSON-LD metadata for an article card",
		Tags:        []string{"Preview"},
	}, h.GetPreview)
}

// GetPreviewInput defines the input for the GetPreview operation
type GetPreviewInput struct {
	URL string `query:"url" doc:"Absolute http(s) URL of the page"`
}

// GetPreviewOutput defines the output for the GetPreview operation
type GetPreviewOutput struct {
	Body domain.Preview
}

// GetPreview handles preview extraction
func (h *PreviewHandler) GetPreview(ctx context.Context, input *GetPreviewInput) (*GetPreviewOutput, error) {
	if !h.flags.IsEnabled(ctx, featureflags.PreviewEnabled) {
		return nil, featureDisabled("Link preview")
	}
	if strings.TrimSpace(input.URL) == "" {
		return nil, huma.Error400BadRequest("URL parameter is required")
	}

	preview, err := h.previewService.ExtractPreview(ctx, input.URL)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &GetPreviewOutput{Body: *preview}, nil
}
