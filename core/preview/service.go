// ABOUTME: Link preview service that scrapes card metadata from article pages
// ABOUTME: Uses colly to read Open Graph, Twitter card, JSON-LD and favicon tags

package preview

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"newsfeed-api/core/domain"
	"newsfeed-api/core/errors"
	"newsfeed-api/core/interfaces"
	"newsfeed-api/pkg/utils/urls"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly"
)

const (
	// DefaultUserAgent gets served the Open Graph markup sites prepare for link unfurling
	DefaultUserAgent = "facebookexternalhit/1.1 (+http://www.facebook.com/externalhit_uatext.php)"

	cacheKeyPrefix = "preview:"
	cacheTTL       = 24 * time.Hour
)

// Options configures the scraper
type Options struct {
	UserAgent    string
	Timeout      time.Duration
	MaxBodyBytes int

	// InsecureSkipVerify disables TLS certificate checks, mirroring the page fetcher
	InsecureSkipVerify bool
}

// Service extracts link previews
type Service struct {
	deps interfaces.Dependencies
	opts Options
}

// NewService creates a preview service
func NewService(deps interfaces.Dependencies, opts Options) *Service {
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = 5 * 1024 * 1024
	}
	return &Service{deps: deps, opts: opts}
}

// ExtractPreview scrapes card metadata for one URL
func (s *Service) ExtractPreview(ctx context.Context, rawURL string) (*domain.Preview, error) {
	u, err := urls.Validate(rawURL)
	if err != nil {
		return nil, &errors.ValidationError{Field: "url", Message: err.Error()}
	}
	target := u.String()

	if s.deps.Cache != nil {
		if data, err := s.deps.Cache.Get(ctx, cacheKeyPrefix+target); err == nil && data != nil {
			var cached domain.Preview
			if err := json.Unmarshal(data, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	result, err := s.scrape(ctx, target)
	if err != nil {
		s.deps.Logger.Warn("Failed to scrape link preview", map[string]interface{}{
			"url":   target,
			"error": err.Error(),
		})
		return nil, err
	}

	if s.deps.Cache != nil {
		if data, err := json.Marshal(result); err == nil {
			if err := s.deps.Cache.Set(ctx, cacheKeyPrefix+target, data, cacheTTL); err != nil {
				s.deps.Logger.Warn("Failed to cache link preview", map[string]interface{}{
					"url":   target,
					"error": err.Error(),
				})
			}
		}
	}

	return result, nil
}

func (s *Service) newCollector(ctx context.Context) *colly.Collector {
	c := colly.NewCollector(
		colly.UserAgent(s.opts.UserAgent),
		colly.MaxBodySize(s.opts.MaxBodyBytes),
		colly.Async(false),
		colly.AllowURLRevisit(),
	)
	c.SetRequestTimeout(s.opts.Timeout)

	transport := http.DefaultTransport.(*http.Transport).Clone()
	// SECURITY: certificate verification is off when InsecureSkipVerify is set.
	transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: s.opts.InsecureSkipVerify}
	c.WithTransport(transport)

	c.OnRequest(func(r *colly.Request) {
		if ctx.Err() != nil {
			r.Abort()
		}
	})

	return c
}

func (s *Service) scrape(ctx context.Context, target string) (*domain.Preview, error) {
	c := s.newCollector(ctx)

	result := &domain.Preview{
		URL:    target,
		Images: []string{},
	}
	var candidates []string
	var visitErr error

	c.OnHTML("meta", func(e *colly.HTMLElement) {
		property := e.Attr("property")
		name := e.Attr("name")
		content := strings.TrimSpace(e.Attr("content"))
		if content == "" {
			return
		}

		if name == "theme-color" {
			result.ThemeColor = content
		}
		if name == "twitter:image" && result.Thumbnail == "" {
			result.Thumbnail = e.Request.AbsoluteURL(content)
		}

		switch property {
		case "og:title":
			if result.Title == "" {
				result.Title = content
			}
		case "og:description":
			if result.Description == "" {
				result.Description = content
			}
		case "og:site_name":
			result.SiteName = content
		case "og:image":
			image := e.Request.AbsoluteURL(content)
			result.Images = append(result.Images, image)
			if result.Thumbnail == "" {
				result.Thumbnail = image
			}
		}
	})

	c.OnHTML("head", func(e *colly.HTMLElement) {
		if result.Title == "" {
			result.Title = strings.TrimSpace(e.DOM.Find("title").First().Text())
		}

		if result.Description == "" {
			if content, ok := e.DOM.Find("meta[name='description']").First().Attr("content"); ok {
				result.Description = strings.TrimSpace(content)
			}
		}

		e.DOM.Find("link[rel]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
			href := sel.AttrOr("href", "")
			if href == "" {
				return true
			}
			for _, rel := range strings.Fields(strings.ToLower(sel.AttrOr("rel", ""))) {
				if rel == "icon" || rel == "shortcut" || rel == "apple-touch-icon" {
					result.Favicon = e.Request.AbsoluteURL(href)
					return false
				}
			}
			return true
		})
	})

	c.OnHTML("script[type='application/ld+json']", func(e *colly.HTMLElement) {
		if result.Thumbnail != "" {
			return
		}
		var ldData map[string]interface{}
		if err := json.Unmarshal([]byte(e.Text), &ldData); err != nil {
			return
		}
		switch image := ldData["image"].(type) {
		case string:
			result.Thumbnail = e.Request.AbsoluteURL(image)
		case map[string]interface{}:
			if u, ok := image["url"].(string); ok {
				result.Thumbnail = e.Request.AbsoluteURL(u)
			}
		}
	})

	c.OnHTML("img[src]", func(e *colly.HTMLElement) {
		if isSignificantImage(e) {
			candidates = append(candidates, e.Request.AbsoluteURL(e.Attr("src")))
		}
	})

	c.OnResponse(func(r *colly.Response) {
		result.Domain = r.Request.URL.Host
	})

	c.OnError(func(r *colly.Response, err error) {
		if r != nil && r.StatusCode >= 400 {
			visitErr = &errors.ExternalAPIError{
				StatusCode: r.StatusCode,
				Message:    http.StatusText(r.StatusCode),
				API:        r.Request.URL.Host,
			}
			return
		}
		visitErr = &errors.FetchError{URL: target, Err: err}
	})

	if err := c.Visit(target); err != nil && visitErr == nil {
		visitErr = &errors.FetchError{URL: target, Err: err}
	}
	if visitErr != nil {
		return nil, visitErr
	}
	if err := ctx.Err(); err != nil {
		return nil, &errors.FetchError{URL: target, Err: err}
	}

	if result.Thumbnail == "" && len(candidates) > 0 {
		result.Thumbnail = candidates[0]
	}
	if len(result.Images) == 0 {
		result.Images = append(result.Images, candidates...)
	}
	if result.Favicon == "" && result.Domain != "" {
		result.Favicon = urls.Origin(target) + "/favicon.ico"
	}

	return result, nil
}

// isSignificantImage checks if an image is likely to be content (not logo/icon)
func isSignificantImage(e *colly.HTMLElement) bool {
	width := e.Attr("width")
	height := e.Attr("height")

	if width != "" && height != "" {
		w, _ := strconv.Atoi(width)
		h, _ := strconv.Atoi(height)
		if w < 200 || h < 200 {
			return false
		}
	}

	class := strings.ToLower(e.Attr("class"))
	id := strings.ToLower(e.Attr("id"))
	alt := strings.ToLower(e.Attr("alt"))

	skipPatterns := []string{"logo", "icon", "avatar", "profile", "user", "author"}
	for _, pattern := range skipPatterns {
		if strings.Contains(class, pattern) || strings.Contains(id, pattern) || strings.Contains(alt, pattern) {
			return false
		}
	}

	return true
}
