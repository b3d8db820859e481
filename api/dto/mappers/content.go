// ABOUTME: Mappers for converting between domain models and API DTOs
// ABOUTME: Keeps handler responses independent from core domain structs

package mappers

import (
	"newsfeed-api/api/dto/responses"
	"newsfeed-api/core/domain"
)

// ToContentResponse converts extracted article content to its response DTO
func ToContentResponse(content *domain.ArticleContent) *responses.ContentResponse {
	if content == nil {
		return nil
	}

	return &responses.ContentResponse{
		Content:   content.Content,
		URL:       content.URL,
		Format:    content.Format,
		Strategy:  content.Strategy,
		Extracted: content.Extracted,
	}
}

// ToContentBatchResponse wraps batch results, never returning a null list
func ToContentBatchResponse(results []domain.ContentResult) *responses.ContentBatchResponse {
	if results == nil {
		results = []domain.ContentResult{}
	}
	return &responses.ContentBatchResponse{Results: results}
}

// ToReaderViewResponse wraps reader views, never returning a null list
func ToReaderViewResponse(views []domain.ReaderView) *responses.ReaderViewResponse {
	if views == nil {
		views = []domain.ReaderView{}
	}
	return &responses.ReaderViewResponse{Views: views}
}
