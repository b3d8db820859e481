package handlers

import (
	"context"
	"fmt"
	"testing"

	"newsfeed-api/core/errors"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHumaError(t *testing.T) {
	tests := []struct {
		name         string
		input        error
		wantStatus   int
		wantInDetail string
	}{
		{
			name:         "ValidationError returns 400",
			input:        &errors.ValidationError{Field: "url", Message: "url is required"},
			wantStatus:   400,
			wantInDetail: "url is required",
		},
		{
			name:         "NotFoundError returns 404",
			input:        &errors.NotFoundError{Resource: "page", ID: "42"},
			wantStatus:   404,
			wantInDetail: "page not found",
		},
		{
			name:         "FetchError returns 500 with generic detail",
			input:        &errors.FetchError{URL: "https://example.com", Err: context.DeadlineExceeded},
			wantStatus:   500,
			wantInDetail: retrieveFailedMessage,
		},
		{
			name:         "ExternalAPIError returns 500 with generic detail",
			input:        &errors.ExternalAPIError{API: "example.com", StatusCode: 503, Message: "unavailable"},
			wantStatus:   500,
			wantInDetail: retrieveFailedMessage,
		},
		{
			name:         "wrapped FetchError still maps",
			input:        errors.WrapError(&errors.FetchError{URL: "https://example.com", Err: fmt.Errorf("refused")}, "failed to retrieve content"),
			wantStatus:   500,
			wantInDetail: retrieveFailedMessage,
		},
		{
			name:         "wrapped ValidationError returns 400",
			input:        fmt.Errorf("context: %w", &errors.ValidationError{Field: "format", Message: "unsupported"}),
			wantStatus:   400,
			wantInDetail: "unsupported",
		},
		{
			name:         "unknown error returns 500",
			input:        fmt.Errorf("boom"),
			wantStatus:   500,
			wantInDetail: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := toHumaError(tt.input)

			humaErr, ok := result.(*huma.ErrorModel)
			require.True(t, ok, "expected *huma.ErrorModel, got %T", result)
			assert.Equal(t, tt.wantStatus, humaErr.Status)
			assert.Contains(t, humaErr.Detail, tt.wantInDetail)
		})
	}
}

func TestToHumaError_Nil(t *testing.T) {
	assert.NoError(t, toHumaError(nil))
}

func TestToHumaError_DoesNotLeakUpstreamDetails(t *testing.T) {
	err := toHumaError(&errors.FetchError{URL: "https://internal.example", Err: fmt.Errorf("dial tcp 10.0.0.1:443")})

	humaErr := err.(*huma.ErrorModel)
	assert.NotContains(t, humaErr.Detail, "10.0.0.1")
	assert.Empty(t, humaErr.Errors)
}
