// ABOUTME: Generic article content extractor built on goquery
// ABOUTME: Strips page chrome and isolates the main article body without per-site configuration

package extractor

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// FallbackMessage is returned when no strategy finds a content node.
// It is a successful result, not an error.
const FallbackMessage = "<p>Could not extract full content automatically. Please visit the source.</p>"

// Result is the outcome of one extraction.
type Result struct {
	// HTML is the outer markup of the selected node, or FallbackMessage.
	HTML string

	// Strategy names the selection strategy that matched.
	Strategy string

	// Extracted is false exactly when HTML is FallbackMessage.
	Extracted bool
}

// Extractor runs the noise-removal and content-selection pipeline.
// It holds no per-call state and is safe for concurrent use.
type Extractor struct {
	rules Rules
}

// New creates an extractor for the given rules.
func New(rules Rules) *Extractor {
	// Merging onto itself normalises case and drops duplicates.
	return &Extractor{rules: rules.Merge(Rules{})}
}

// NewDefault creates an extractor with DefaultRules.
func NewDefault() *Extractor {
	return New(DefaultRules())
}

// Rules returns a copy of the rules in use.
func (e *Extractor) Rules() Rules {
	return e.rules.Merge(Rules{})
}

// ExtractFromReader parses an HTML document and extracts its main content.
func (e *Extractor) ExtractFromReader(r io.Reader) (Result, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return Result{}, fmt.Errorf("failed to parse HTML: %w", err)
	}
	return e.Extract(doc), nil
}

// ExtractFromString is ExtractFromReader for an in-memory document.
func (e *Extractor) ExtractFromString(document string) (Result, error) {
	return e.ExtractFromReader(strings.NewReader(document))
}

// Extract cleans doc in place and returns the best content candidate.
func (e *Extractor) Extract(doc *goquery.Document) Result {
	e.removeStructuralNoise(doc)
	e.removeImageMetadata(doc)
	e.removeTextNoise(doc)

	for _, selectContent := range e.selectors() {
		node, strategy, ok := selectContent(doc)
		if !ok {
			continue
		}
		markup, err := goquery.OuterHtml(node)
		if err != nil || markup == "" {
			continue
		}
		return Result{HTML: markup, Strategy: strategy, Extracted: true}
	}

	return Result{HTML: FallbackMessage, Strategy: StrategyFallback}
}
