// ABOUTME: Noise removal stages run on the parsed document before content selection
// ABOUTME: Drops structural chrome, photo credits and short boilerplate blocks in place

package extractor

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

// removeStructuralNoise deletes denylisted tags and any element whose class or
// id contains a denylisted fragment.
func (e *Extractor) removeStructuralNoise(doc *goquery.Document) {
	if len(e.rules.NoiseTags) > 0 {
		doc.Find(strings.Join(e.rules.NoiseTags, ", ")).Remove()
	}

	if len(e.rules.NoiseAttrFragments) == 0 {
		return
	}
	candidates := doc.Find("[class], [id]")
	if e.rules.ProtectDocumentRoot {
		candidates = candidates.Not("html, body")
	}
	candidates.
		FilterFunction(func(_ int, s *goquery.Selection) bool {
			return attrContainsAny(s, "class", e.rules.NoiseAttrFragments) ||
				attrContainsAny(s, "id", e.rules.NoiseAttrFragments)
		}).
		Remove()
}

// removeImageMetadata deletes caption and credit blocks.
func (e *Extractor) removeImageMetadata(doc *goquery.Document) {
	if len(e.rules.ImageMetaTags) == 0 || len(e.rules.ImageMetaClassFragments) == 0 {
		return
	}
	doc.Find(strings.Join(e.rules.ImageMetaTags, ", ")).
		FilterFunction(func(_ int, s *goquery.Selection) bool {
			return attrContainsAny(s, "class", e.rules.ImageMetaClassFragments)
		}).
		Remove()
}

// removeTextNoise deletes short blocks carrying a boilerplate phrase and any
// block that reads like a social sharing bar.
func (e *Extractor) removeTextNoise(doc *goquery.Document) {
	if len(e.rules.JunkTextTags) == 0 {
		return
	}
	selector := strings.Join(e.rules.JunkTextTags, ", ")
	doc.Find(selector).
		FilterFunction(func(_ int, s *goquery.Selection) bool {
			text := flattenText(s)
			if e.isSocialBar(text) {
				if !e.rules.InnermostSocialBar {
					return true
				}
				nested := s.Find(selector).FilterFunction(func(_ int, inner *goquery.Selection) bool {
					return e.isSocialBar(flattenText(inner))
				})
				if nested.Length() == 0 {
					return true
				}
			}
			return e.isShortJunk(text)
		}).
		Remove()
}

// isSocialBar reports text that mentions every social bar term.
func (e *Extractor) isSocialBar(text string) bool {
	return containsAll(text, e.rules.SocialBarTerms)
}

// isShortJunk reports text under the length threshold carrying a boilerplate phrase.
func (e *Extractor) isShortJunk(text string) bool {
	if text == "" || utf8.RuneCountInString(text) >= e.rules.ShortTextThreshold {
		return false
	}
	return containsAny(text, e.rules.JunkPhrases)
}

// flattenText returns the selection's text lower-cased with whitespace runs collapsed.
func flattenText(s *goquery.Selection) string {
	return strings.ToLower(strings.Join(strings.Fields(s.Text()), " "))
}

func attrContainsAny(s *goquery.Selection, attr string, fragments []string) bool {
	val, ok := s.Attr(attr)
	if !ok || val == "" {
		return false
	}
	return containsAny(strings.ToLower(val), fragments)
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}

func containsAll(s string, needles []string) bool {
	if len(needles) == 0 {
		return false
	}
	for _, n := range needles {
		if !strings.Contains(s, n) {
			return false
		}
	}
	return true
}
