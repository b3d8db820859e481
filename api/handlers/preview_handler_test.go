package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"newsfeed-api/core/domain"
	"newsfeed-api/core/errors"
	"newsfeed-api/pkg/featureflags"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreviewHandler_GetPreview(t *testing.T) {
	svc := &mockPreviewService{
		extractFunc: func(ctx context.Context, url string) (*domain.Preview, error) {
			return &domain.Preview{
				URL:       url,
				Title:     "Card title",
				Thumbnail: "https://example.com/og.jpg",
				Domain:    "example.com",
			}, nil
		},
	}
	_, api := humatest.New(t)
	NewPreviewHandler(svc, nil).RegisterRoutes(api)

	resp := api.Get("/news/preview?url=https://example.com/story")

	require.Equal(t, http.StatusOK, resp.Code)
	var preview domain.Preview
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &preview))
	assert.Equal(t, "Card title", preview.Title)
	assert.Equal(t, "https://example.com/og.jpg", preview.Thumbnail)
}

func TestPreviewHandler_Errors(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		err        error
		flagOff    bool
		wantStatus int
	}{
		{name: "missing url", path: "/news/preview", wantStatus: http.StatusBadRequest},
		{
			name:       "invalid url",
			path:       "/news/preview?url=ftp://example.com",
			err:        &errors.ValidationError{Field: "url", Message: "url must use http or https"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "upstream error",
			path:       "/news/preview?url=https://example.com",
			err:        &errors.ExternalAPIError{API: "example.com", StatusCode: 500},
			wantStatus: http.StatusInternalServerError,
		},
		{name: "disabled", path: "/news/preview?url=https://example.com", flagOff: true, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockPreviewService{
				extractFunc: func(ctx context.Context, url string) (*domain.Preview, error) {
					return nil, tt.err
				},
			}
			flags := featureflags.NewDefaultManager()
			if tt.flagOff {
				flags.SetEnabled(featureflags.PreviewEnabled, false)
			}
			_, api := humatest.New(t)
			NewPreviewHandler(svc, flags).RegisterRoutes(api)

			resp := api.Get(tt.path)

			assert.Equal(t, tt.wantStatus, resp.Code)
		})
	}
}

func TestHealthHandler(t *testing.T) {
	_, api := humatest.New(t)
	NewHealthHandler().RegisterRoutes(api)

	resp := api.Get("/health")

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"status":"ok"`)
}
