// ABOUTME: Content service that fetches an article page and isolates its main body
// ABOUTME: Composes the page fetcher, the generic extractor, markdown conversion and caching

package content

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"newsfeed-api/core/domain"
	"newsfeed-api/core/errors"
	"newsfeed-api/core/extractor"
	"newsfeed-api/core/interfaces"
	"newsfeed-api/pkg/utils/urls"
)

const (
	cacheKeyPrefix = "content:"

	// DefaultCacheTTL keeps extracted content for half an hour
	DefaultCacheTTL = 30 * time.Minute

	// DefaultBatchConcurrency bounds parallel fetches in ExtractBatch
	DefaultBatchConcurrency = 5
)

// Config tunes the content service
type Config struct {
	// CacheTTL is how long extraction results are cached. Zero disables caching.
	CacheTTL time.Duration

	// BatchConcurrency is the maximum number of pages fetched at once by ExtractBatch
	BatchConcurrency int
}

// Service extracts article content from URLs
type Service struct {
	deps      interfaces.Dependencies
	extractor *extractor.Extractor
	cfg       Config
}

// cachedContent is the cache payload. Only the HTML form is stored;
// markdown is derived on the way out.
type cachedContent struct {
	HTML      string `json:"html"`
	Strategy  string `json:"strategy"`
	Extracted bool   `json:"extracted"`
}

// NewService creates a content service. A nil extractor uses the default rules.
func NewService(deps interfaces.Dependencies, ext *extractor.Extractor, cfg Config) *Service {
	if ext == nil {
		ext = extractor.NewDefault()
	}
	if cfg.BatchConcurrency <= 0 {
		cfg.BatchConcurrency = DefaultBatchConcurrency
	}
	if cfg.CacheTTL < 0 {
		cfg.CacheTTL = 0
	}
	return &Service{
		deps:      deps,
		extractor: ext,
		cfg:       cfg,
	}
}

// Extract fetches rawURL and returns its main content as html or markdown.
// Transport and upstream failures are returned as errors; a page with no
// recognisable content yields the fallback message with Extracted false.
func (s *Service) Extract(ctx context.Context, rawURL, format string) (*domain.ArticleContent, error) {
	format, err := normalizeFormat(format)
	if err != nil {
		return nil, err
	}

	u, err := urls.Validate(rawURL)
	if err != nil {
		return nil, &errors.ValidationError{Field: "url", Message: err.Error()}
	}
	target := u.String()

	cached, ok := s.fromCache(ctx, target)
	if !ok {
		cached, err = s.fetchAndExtract(ctx, target)
		if err != nil {
			return nil, err
		}
		s.toCache(ctx, target, cached)
	}

	result := &domain.ArticleContent{
		URL:       target,
		Content:   cached.HTML,
		Format:    format,
		Strategy:  cached.Strategy,
		Extracted: cached.Extracted,
	}

	if format == domain.FormatMarkdown {
		markdown, err := toMarkdown(cached.HTML, target)
		if err != nil {
			return nil, errors.WrapError(err, "failed to convert content to markdown")
		}
		result.Content = markdown
	}

	return result, nil
}

// ExtractBatch extracts every URL with bounded concurrency. Results keep the
// input order and failures are reported per entry.
func (s *Service) ExtractBatch(ctx context.Context, rawURLs []string, format string) []domain.ContentResult {
	results := make([]domain.ContentResult, len(rawURLs))
	var wg sync.WaitGroup

	semaphore := make(chan struct{}, s.cfg.BatchConcurrency)

	for i, rawURL := range rawURLs {
		wg.Add(1)
		go func(index int, target string) {
			defer wg.Done()

			if err := ctx.Err(); err != nil {
				results[index] = domain.ContentResult{URL: target, Status: domain.StatusError, Error: err.Error()}
				return
			}

			select {
			case semaphore <- struct{}{}:
				defer func() { <-semaphore }()
			case <-ctx.Done():
				results[index] = domain.ContentResult{URL: target, Status: domain.StatusError, Error: ctx.Err().Error()}
				return
			}

			article, err := s.Extract(ctx, target, format)
			if err != nil {
				results[index] = domain.ContentResult{URL: target, Status: domain.StatusError, Error: err.Error()}
				return
			}
			results[index] = domain.ContentResult{
				URL:       target,
				Status:    domain.StatusOK,
				Content:   article.Content,
				Strategy:  article.Strategy,
				Extracted: article.Extracted,
			}
		}(i, rawURL)
	}

	wg.Wait()
	return results
}

func (s *Service) fetchAndExtract(ctx context.Context, target string) (cachedContent, error) {
	start := time.Now()

	page, err := s.deps.HTTPClient.Fetch(ctx, target)
	if err != nil {
		s.deps.Logger.Error("Failed to fetch article page", map[string]interface{}{
			"url":   target,
			"error": err.Error(),
		})
		return cachedContent{}, errors.WrapError(err, "failed to retrieve content")
	}

	result, err := s.extractor.ExtractFromReader(bytes.NewReader(page.Body))
	if err != nil {
		s.deps.Logger.Error("Failed to parse article page", map[string]interface{}{
			"url":   target,
			"error": err.Error(),
		})
		return cachedContent{}, err
	}

	fields := map[string]interface{}{
		"url":         target,
		"final_url":   page.URL,
		"strategy":    result.Strategy,
		"bytes":       len(page.Body),
		"duration_ms": time.Since(start).Milliseconds(),
	}
	if result.Extracted {
		s.deps.Logger.Debug("Article content extracted", fields)
	} else {
		s.deps.Logger.Info("No main content found, returning fallback", fields)
	}

	return cachedContent{HTML: result.HTML, Strategy: result.Strategy, Extracted: result.Extracted}, nil
}

func (s *Service) fromCache(ctx context.Context, target string) (cachedContent, bool) {
	if s.deps.Cache == nil || s.cfg.CacheTTL == 0 {
		return cachedContent{}, false
	}

	data, err := s.deps.Cache.Get(ctx, cacheKeyPrefix+target)
	if err != nil || len(data) == 0 {
		return cachedContent{}, false
	}

	var cached cachedContent
	if err := json.Unmarshal(data, &cached); err != nil {
		s.deps.Logger.Warn("Discarding unreadable cached content", map[string]interface{}{
			"url":   target,
			"error": err.Error(),
		})
		return cachedContent{}, false
	}
	return cached, true
}

func (s *Service) toCache(ctx context.Context, target string, cached cachedContent) {
	if s.deps.Cache == nil || s.cfg.CacheTTL == 0 {
		return
	}

	data, err := json.Marshal(cached)
	if err != nil {
		return
	}
	if err := s.deps.Cache.Set(ctx, cacheKeyPrefix+target, data, s.cfg.CacheTTL); err != nil {
		s.deps.Logger.Warn("Failed to cache content", map[string]interface{}{
			"url":   target,
			"error": err.Error(),
		})
	}
}

func normalizeFormat(format string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", domain.FormatHTML:
		return domain.FormatHTML, nil
	case domain.FormatMarkdown, "md":
		return domain.FormatMarkdown, nil
	default:
		return "", &errors.ValidationError{Field: "format", Message: "format must be html or markdown"}
	}
}
