// ABOUTME: Response DTOs for reader view API endpoints
// ABOUTME: Defines the structure for reader view extraction responses

package responses

import "newsfeed-api/core/domain"

// ReaderViewResponse represents the response for batch reader view extraction
type ReaderViewResponse struct {
	Views []domain.ReaderView `json:"views"`
}
