package reader

import (
	"context"
	"sync"
	"time"

	"newsfeed-api/core/domain"
	"newsfeed-api/core/interfaces"
)

// mockFetcher implements HTTPClient with a function hook for Fetch
type mockFetcher struct {
	fetchFunc func(ctx context.Context, url string) (*domain.Page, error)
}

func (m *mockFetcher) Get(ctx context.Context, url string) (interfaces.Response, error) {
	return nil, nil
}

func (m *mockFetcher) Fetch(ctx context.Context, url string) (*domain.Page, error) {
	return m.fetchFunc(ctx, url)
}

// mockCache is a map-backed implementation of the Cache interface
type mockCache struct {
	mu    sync.Mutex
	items map[string][]byte
}

func newMockCache() *mockCache {
	return &mockCache{items: make(map[string][]byte)}
}

func (m *mockCache) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if data, ok := m.items[key]; ok {
		return data, nil
	}
	return nil, interfaces.ErrCacheMiss
}

func (m *mockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = value
	return nil
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
	return nil
}

// mockLogger discards all log output
type mockLogger struct{}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}
