package content

import (
	"context"
	"io"
	"strings"
	"sync"
	"time"

	"newsfeed-api/core/domain"
	"newsfeed-api/core/interfaces"
)

// mockHTTPClient is a mock implementation of the HTTPClient interface
type mockHTTPClient struct {
	getFunc   func(ctx context.Context, url string) (interfaces.Response, error)
	fetchFunc func(ctx context.Context, url string) (*domain.Page, error)
}

func (m *mockHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, url)
	}
	return &mockResponse{statusCode: 200}, nil
}

func (m *mockHTTPClient) Fetch(ctx context.Context, url string) (*domain.Page, error) {
	if m.fetchFunc != nil {
		return m.fetchFunc(ctx, url)
	}
	return &domain.Page{URL: url, StatusCode: 200}, nil
}

// pageClient serves a fixed HTML body for every URL
func pageClient(body string) *mockHTTPClient {
	return &mockHTTPClient{
		fetchFunc: func(ctx context.Context, url string) (*domain.Page, error) {
			return &domain.Page{URL: url, StatusCode: 200, ContentType: "text/html", Body: []byte(body)}, nil
		},
	}
}

// mockResponse is a mock implementation of the Response interface
type mockResponse struct {
	statusCode int
	body       string
}

func (m *mockResponse) StatusCode() int {
	return m.statusCode
}

func (m *mockResponse) Body() io.ReadCloser {
	return io.NopCloser(strings.NewReader(m.body))
}

func (m *mockResponse) Header(key string) string {
	return ""
}

// mockCache is a map-backed implementation of the Cache interface that records TTLs
type mockCache struct {
	mu    sync.Mutex
	items map[string][]byte
	ttls  map[string]time.Duration
}

func newMockCache() *mockCache {
	return &mockCache{
		items: make(map[string][]byte),
		ttls:  make(map[string]time.Duration),
	}
}

func (m *mockCache) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.items[key]
	if !ok {
		return nil, interfaces.ErrCacheMiss
	}
	return data, nil
}

func (m *mockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = value
	m.ttls[key] = ttl
	return nil
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
	return nil
}

func (m *mockCache) has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.items[key]
	return ok
}

// mockLogger is a mock implementation of the Logger interface
type mockLogger struct {
	mu     sync.Mutex
	errors []string
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  {}

func (m *mockLogger) Error(msg string, fields map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errors = append(m.errors, msg)
}
