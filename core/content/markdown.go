// ABOUTME: Markdown rendering of extracted article fragments
// ABOUTME: Resolves relative links against the article URL before html-to-markdown conversion

package content

import (
	"net/url"
	"regexp"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/PuerkitoBio/goquery"
)

var excessNewlines = regexp.MustCompile(`\n{3,}`)

// toMarkdown converts an HTML fragment to markdown with links and images
// made absolute against pageURL.
func toMarkdown(fragment, pageURL string) (string, error) {
	resolved, err := resolveLinks(fragment, pageURL)
	if err != nil {
		return "", err
	}

	converter := md.NewConverter("", true, nil)
	markdown, err := converter.ConvertString(resolved)
	if err != nil {
		return "", err
	}

	markdown = strings.ReplaceAll(markdown, "\r\n", "\n")
	markdown = excessNewlines.ReplaceAllString(markdown, "\n\n")
	return strings.TrimSpace(markdown), nil
}

func resolveLinks(fragment, pageURL string) (string, error) {
	base, err := url.Parse(pageURL)
	if err != nil || base.Host == "" {
		return fragment, nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return "", err
	}

	absolutize := func(attr string) func(int, *goquery.Selection) {
		return func(_ int, s *goquery.Selection) {
			ref, err := url.Parse(strings.TrimSpace(s.AttrOr(attr, "")))
			if err != nil {
				return
			}
			s.SetAttr(attr, base.ResolveReference(ref).String())
		}
	}
	doc.Find("a[href]").Each(absolutize("href"))
	doc.Find("img[src]").Each(absolutize("src"))

	return doc.Find("body").Html()
}
