// ABOUTME: Service layer implementation for reader view extraction
// ABOUTME: Runs go-readability over pages fetched by the shared page fetcher

package reader

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"newsfeed-api/core/domain"
	"newsfeed-api/core/errors"
	"newsfeed-api/core/interfaces"
	"newsfeed-api/pkg/utils/urls"

	md "github.com/JohannesKaufmann/html-to-markdown"
	readability "github.com/go-shiori/go-readability"
)

const (
	cacheKeyPrefix  = "reader:"
	cacheTTL        = 1 * time.Hour
	maxBatchWorkers = 5
)

var (
	excessNewlines = regexp.MustCompile(`\n{3,}`)
	trailingSpace  = regexp.MustCompile(`[ \t]+\n`)
	leadingSpace   = regexp.MustCompile(`\n[ \t]+`)
	headingBefore  = regexp.MustCompile(`\n(#{1,6} )`)
	headingAfter   = regexp.MustCompile(`(#{1,6} [^\n]+)\n([^\n])`)
)

// Service produces readability views of article pages
type Service struct {
	deps interfaces.Dependencies
}

// NewService creates a reader service
func NewService(deps interfaces.Dependencies) *Service {
	return &Service{deps: deps}
}

// ExtractReaderView returns the readability view of one page
func (s *Service) ExtractReaderView(ctx context.Context, rawURL string) (*domain.ReaderView, error) {
	u, err := urls.Validate(rawURL)
	if err != nil {
		return nil, &errors.ValidationError{Field: "url", Message: err.Error()}
	}
	target := u.String()

	if view, ok := s.fromCache(ctx, target); ok {
		return view, nil
	}

	page, err := s.deps.HTTPClient.Fetch(ctx, target)
	if err != nil {
		s.deps.Logger.Error("Failed to fetch page for reader view", map[string]interface{}{
			"url":   target,
			"error": err.Error(),
		})
		return nil, errors.WrapError(err, "failed to retrieve content")
	}

	article, err := readability.FromReader(bytes.NewReader(page.Body), u)
	if err != nil {
		s.deps.Logger.Error("Failed to parse reader view", map[string]interface{}{
			"url":   target,
			"error": err.Error(),
		})
		return nil, errors.WrapError(err, "failed to parse reader view")
	}

	view := &domain.ReaderView{
		URL:         target,
		Status:      domain.StatusOK,
		Title:       article.Title,
		Byline:      article.Byline,
		Excerpt:     article.Excerpt,
		Content:     article.Content,
		TextContent: strings.TrimSpace(article.TextContent),
		SiteName:    article.SiteName,
		Image:       article.Image,
		Favicon:     article.Favicon,
	}

	if view.Content != "" {
		converter := md.NewConverter("", true, nil)
		markdown, err := converter.ConvertString(view.Content)
		if err != nil {
			// Markdown is optional, the HTML view is still useful
			s.deps.Logger.Debug("Failed to convert HTML to markdown", map[string]interface{}{
				"url":   target,
				"error": err.Error(),
			})
		} else {
			view.Markdown = buildMarkdownWithMetadata(view.Title, view.Byline, view.SiteName, markdown)
		}
	}

	s.toCache(ctx, target, view)
	return view, nil
}

// ExtractReaderViews extracts reader views for multiple URLs. Failures are
// reported per entry with status "error" and results keep the input order.
func (s *Service) ExtractReaderViews(ctx context.Context, rawURLs []string) []domain.ReaderView {
	results := make([]domain.ReaderView, len(rawURLs))
	var wg sync.WaitGroup
	semaphore := make(chan struct{}, maxBatchWorkers)

	for i, rawURL := range rawURLs {
		wg.Add(1)
		go func(index int, target string) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			view, err := s.ExtractReaderView(ctx, target)
			if err != nil {
				results[index] = domain.ReaderView{URL: target, Status: domain.StatusError, Error: err.Error()}
				return
			}
			results[index] = *view
		}(i, rawURL)
	}

	wg.Wait()
	return results
}

func (s *Service) fromCache(ctx context.Context, target string) (*domain.ReaderView, bool) {
	if s.deps.Cache == nil {
		return nil, false
	}
	data, err := s.deps.Cache.Get(ctx, cacheKeyPrefix+target)
	if err != nil || len(data) == 0 {
		return nil, false
	}
	var view domain.ReaderView
	if err := json.Unmarshal(data, &view); err != nil {
		return nil, false
	}
	return &view, true
}

func (s *Service) toCache(ctx context.Context, target string, view *domain.ReaderView) {
	if s.deps.Cache == nil || view.Status != domain.StatusOK {
		return
	}
	if data, err := json.Marshal(view); err == nil {
		_ = s.deps.Cache.Set(ctx, cacheKeyPrefix+target, data, cacheTTL)
	}
}

// buildMarkdownWithMetadata prefixes the article markdown with a title and byline header
func buildMarkdownWithMetadata(title, author, siteName, content string) string {
	var markdown strings.Builder

	if title != "" {
		markdown.WriteString("# ")
		markdown.WriteString(title)
		markdown.WriteString("\n\n")
	}

	var metadataItems []string
	if author != "" {
		metadataItems = append(metadataItems, fmt.Sprintf("**Author:** %s", author))
	}
	if siteName != "" {
		metadataItems = append(metadataItems, fmt.Sprintf("**Source:** %s", siteName))
	}

	if len(metadataItems) > 0 {
		markdown.WriteString(strings.Join(metadataItems, " | "))
		markdown.WriteString("\n\n---\n\n")
	}

	markdown.WriteString(cleanMarkdown(content))

	return markdown.String()
}

// cleanMarkdown normalises line endings and blank lines around headings
func cleanMarkdown(markdown string) string {
	markdown = strings.ReplaceAll(markdown, "\r\n", "\n")
	markdown = strings.ReplaceAll(markdown, "\r", "\n")

	markdown = excessNewlines.ReplaceAllString(markdown, "\n\n")
	markdown = trailingSpace.ReplaceAllString(markdown, "\n")
	markdown = leadingSpace.ReplaceAllString(markdown, "\n")

	markdown = headingBefore.ReplaceAllString(markdown, "\n\n$1")
	markdown = headingAfter.ReplaceAllString(markdown, "$1\n\n$2")
	markdown = excessNewlines.ReplaceAllString(markdown, "\n\n")

	return strings.TrimSpace(markdown)
}
