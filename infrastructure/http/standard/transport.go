// ABOUTME: Logging round tripper for outgoing page fetches
// ABOUTME: Records method, url, status and timing of each upstream request

package standard

import (
	"net/http"
	"time"

	"newsfeed-api/core/interfaces"

	"github.com/google/uuid"
)

// RequestIDHeader carries the inbound request id onto outgoing fetches
const RequestIDHeader = "X-Request-ID"

// LoggingRoundTripper implements http.RoundTripper with logging
type LoggingRoundTripper struct {
	Transport http.RoundTripper
	Logger    interfaces.Logger
}

// RoundTrip logs outgoing HTTP requests
func (t *LoggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	requestID := req.Header.Get(RequestIDHeader)
	if requestID == "" {
		requestID = uuid.New().String()
	}

	t.Logger.Debug("Outgoing HTTP request", map[string]interface{}{
		"request_id": requestID,
		"method":     req.Method,
		"url":        req.URL.String(),
		"host":       req.URL.Host,
	})

	resp, err := t.Transport.RoundTrip(req)
	duration := time.Since(start)

	if err != nil {
		t.Logger.Warn("Outgoing HTTP request failed", map[string]interface{}{
			"request_id": requestID,
			"url":        req.URL.String(),
			"duration":   duration.String(),
			"error":      err.Error(),
		})
		return nil, err
	}

	t.Logger.Debug("Outgoing HTTP response", map[string]interface{}{
		"request_id":  requestID,
		"url":         req.URL.String(),
		"status":      resp.StatusCode,
		"duration_ms": duration.Milliseconds(),
	})

	return resp, nil
}
