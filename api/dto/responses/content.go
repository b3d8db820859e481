// ABOUTME: Response DTOs for content extraction API endpoints
// ABOUTME: Shapes single and batch extraction results for clients

package responses

import "newsfeed-api/core/domain"

// ContentResponse is the body of a single extraction
type ContentResponse struct {
	Content   string `json:"content" doc:"Extracted article markup, markdown, or the fallback notice"`
	URL       string `json:"url" doc:"The requested article URL"`
	Format    string `json:"format" doc:"Format of content: html or markdown"`
	Strategy  string `json:"strategy" doc:"Selection strategy that produced the content"`
	Extracted bool   `json:"extracted" doc:"False when no content node was found and content holds the fallback notice"`
}

// ContentBatchResponse is the body of a batch extraction
type ContentBatchResponse struct {
	Results []domain.ContentResult `json:"results" doc:"One result per requested URL, in request order"`
}

// HealthResponse reports service liveness
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}
