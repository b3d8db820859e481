package handlers

import (
	"context"

	"newsfeed-api/core/domain"
)

// mockContentService is a mock implementation of the content service
type mockContentService struct {
	extractFunc      func(ctx context.Context, url, format string) (*domain.ArticleContent, error)
	extractBatchFunc func(ctx context.Context, urls []string, format string) []domain.ContentResult
}

func (m *mockContentService) Extract(ctx context.Context, url, format string) (*domain.ArticleContent, error) {
	if m.extractFunc != nil {
		return m.extractFunc(ctx, url, format)
	}
	return &domain.ArticleContent{URL: url, Format: domain.FormatHTML}, nil
}

func (m *mockContentService) ExtractBatch(ctx context.Context, urls []string, format string) []domain.ContentResult {
	if m.extractBatchFunc != nil {
		return m.extractBatchFunc(ctx, urls, format)
	}
	return nil
}

// mockReaderService is a mock implementation of the reader service
type mockReaderService struct {
	extractFunc      func(ctx context.Context, url string) (*domain.ReaderView, error)
	extractBatchFunc func(ctx context.Context, urls []string) []domain.ReaderView
}

func (m *mockReaderService) ExtractReaderView(ctx context.Context, url string) (*domain.ReaderView, error) {
	if m.extractFunc != nil {
		return m.extractFunc(ctx, url)
	}
	return &domain.ReaderView{URL: url, Status: domain.StatusOK}, nil
}

func (m *mockReaderService) ExtractReaderViews(ctx context.Context, urls []string) []domain.ReaderView {
	if m.extractBatchFunc != nil {
		return m.extractBatchFunc(ctx, urls)
	}
	return nil
}

// mockPreviewService is a mock implementation of the preview service
type mockPreviewService struct {
	extractFunc func(ctx context.Context, url string) (*domain.Preview, error)
}

func (m *mockPreviewService) ExtractPreview(ctx context.Context, url string) (*domain.Preview, error) {
	if m.extractFunc != nil {
		return m.extractFunc(ctx, url)
	}
	return &domain.Preview{URL: url}, nil
}
