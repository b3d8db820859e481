// ABOUTME: Health check handler for the Huma API
// ABOUTME: Reports liveness for load balancers and orchestration probes

package handlers

import (
	"context"
	"net/http"

	"newsfeed-api/api/dto/responses"

	"github.com/danielgtaylor/huma/v2"
)

// HealthHandler answers liveness probes
type HealthHandler struct{}

// NewHealthHandler creates a new health handler
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// RegisterRoutes registers the health route
func (h *HealthHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
		Tags:        []string{"System"},
	}, h.Health)
}

// HealthOutput defines the output for the Health operation
type HealthOutput struct {
	Body responses.HealthResponse
}

// Health reports that the service is up
func (h *HealthHandler) Health(ctx context.Context, _ *struct{}) (*HealthOutput, error) {
	return &HealthOutput{Body: responses.HealthResponse{Status: "ok"}}, nil
}
