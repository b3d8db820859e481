// ABOUTME: Ordered main-content selection strategies for the article extractor
// ABOUTME: Tries <article>, known CMS container classes, then paragraph density

package extractor

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Strategy names reported alongside an extraction result.
const (
	StrategyArticle  = "article"
	StrategyClass    = "class"
	StrategyDensity  = "density"
	StrategyFallback = "fallback"
)

// selector picks a candidate content node or reports that it found none.
type selector func(doc *goquery.Document) (*goquery.Selection, string, bool)

// selectors returns the strategies in priority order.
func (e *Extractor) selectors() []selector {
	return []selector{
		e.selectArticle,
		e.selectByClass,
		e.selectByDensity,
	}
}

func (e *Extractor) selectArticle(doc *goquery.Document) (*goquery.Selection, string, bool) {
	article := doc.Find("article").First()
	if article.Length() == 0 {
		return nil, "", false
	}
	return article, StrategyArticle, true
}

func (e *Extractor) selectByClass(doc *goquery.Document) (*goquery.Selection, string, bool) {
	classed := doc.Find("[class]")
	for _, fragment := range e.rules.ContentClassFragments {
		match := classed.FilterFunction(func(_ int, s *goquery.Selection) bool {
			return attrContainsAny(s, "class", []string{fragment})
		}).First()
		if match.Length() > 0 {
			return match, StrategyClass + ":" + fragment, true
		}
	}
	return nil, "", false
}

// selectByDensity returns the div/section parent holding the most direct <p>
// children. Ties go to the parent seen first in document order.
func (e *Extractor) selectByDensity(doc *goquery.Document) (*goquery.Selection, string, bool) {
	paragraphs := doc.Find("p")
	if paragraphs.Length() <= e.rules.MinParagraphs {
		return nil, "", false
	}

	counts := make(map[*html.Node]int)
	var order []*html.Node
	paragraphs.Each(func(_ int, p *goquery.Selection) {
		parent := p.Nodes[0].Parent
		if parent == nil || parent.Type != html.ElementNode || !e.isDensityParent(parent.Data) {
			return
		}
		if _, seen := counts[parent]; !seen {
			order = append(order, parent)
		}
		counts[parent]++
	})

	var best *html.Node
	for _, node := range order {
		if best == nil || counts[node] > counts[best] {
			best = node
		}
	}
	if best == nil {
		return nil, "", false
	}
	return doc.FindNodes(best), StrategyDensity, true
}

func (e *Extractor) isDensityParent(tag string) bool {
	tag = strings.ToLower(tag)
	for _, allowed := range e.rules.DensityParentTags {
		if tag == allowed {
			return true
		}
	}
	return false
}
