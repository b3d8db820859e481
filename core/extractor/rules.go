// ABOUTME: Heuristic rule tables for the article content extractor
// ABOUTME: Holds denylists, junk phrases and thresholds, with optional YAML overrides

package extractor

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultShortTextThreshold is the rune count below which a node carrying
	// a boilerplate phrase is treated as junk.
	DefaultShortTextThreshold = 150

	// DefaultMinParagraphs is the paragraph count that must be exceeded before
	// the density strategy is attempted.
	DefaultMinParagraphs = 5
)

// Rules configures every stage of the extraction pipeline.
// All fragment and phrase matching is case-insensitive substring matching.
type Rules struct {
	// NoiseTags are removed wholesale before anything else runs.
	NoiseTags []string `yaml:"noise_tags"`

	// NoiseAttrFragments remove any element whose class or id contains one of them.
	NoiseAttrFragments []string `yaml:"noise_attr_fragments"`

	// ImageMetaTags and ImageMetaClassFragments describe photo credits and captions.
	ImageMetaTags           []string `yaml:"image_meta_tags"`
	ImageMetaClassFragments []string `yaml:"image_meta_class_fragments"`

	// JunkTextTags are inspected for boilerplate phrases.
	JunkTextTags []string `yaml:"junk_text_tags"`
	JunkPhrases  []string `yaml:"junk_phrases"`

	// SocialBarTerms must all appear in a node's text for it to be dropped
	// as a sharing bar, whatever its length.
	SocialBarTerms []string `yaml:"social_bar_terms"`

	// ContentClassFragments are tried in order when no <article> exists.
	ContentClassFragments []string `yaml:"content_class_fragments"`

	// DensityParentTags are the only containers counted by the density strategy.
	DensityParentTags []string `yaml:"density_parent_tags"`

	ShortTextThreshold int `yaml:"short_text_threshold"`
	MinParagraphs      int `yaml:"min_paragraphs"`

	// ProtectDocumentRoot exempts <html> and <body> from attribute noise
	// matching. Off by default: a body whose class contains a denylisted
	// fragment takes the whole page with it.
	ProtectDocumentRoot bool `yaml:"protect_document_root"`

	// InnermostSocialBar removes only the deepest node holding every social
	// bar term, keeping the containers around it. Off by default.
	InnermostSocialBar bool `yaml:"innermost_social_bar"`
}

// DefaultRules returns the built-in rule set.
func DefaultRules() Rules {
	return Rules{
		NoiseTags: []string{
			"script", "style", "nav", "header", "footer",
			"iframe", "noscript", "aside", "form",
		},
		NoiseAttrFragments: []string{
			"social-share", "share-bar", "share-buttons", "sharing",
			"related-posts", "related-articles", "related-stories", "related-content",
			"newsletter-signup", "newsletter", "subscribe",
			"advertisement", "advert", "ad-container", "ad-slot", "sponsored",
			"sidebar", "comments-section", "comments", "comment-list",
			"tags", "categories", "author-bio", "promo-box", "promo",
			"breadcrumb", "popup", "modal", "cookie",
		},
		ImageMetaTags:           []string{"span", "div", "p", "figcaption"},
		ImageMetaClassFragments: []string{"credit", "caption", "source", "image-label"},
		JunkTextTags:            []string{"div", "section", "p", "span", "button"},
		JunkPhrases: []string{
			"more from", "go deeper", "related stories", "related articles",
			"read more", "read next", "suggested for you", "recommended for you",
			"sign up for our newsletter", "subscribe to our newsletter",
			"follow us on", "see all topics", "share this", "republished from",
			"most popular", "trending now", "you may also like", "advertisement",
		},
		SocialBarTerms: []string{"facebook", "tweet", "email"},
		ContentClassFragments: []string{
			"article-content", "entry-content", "post-content", "main-content",
			"story-body", "article-body", "content-body",
		},
		DensityParentTags:  []string{"div", "section"},
		ShortTextThreshold: DefaultShortTextThreshold,
		MinParagraphs:      DefaultMinParagraphs,
	}
}

// Validate reports rule sets that cannot drive the pipeline.
func (r Rules) Validate() error {
	if r.ShortTextThreshold < 0 {
		return errors.New("short text threshold cannot be negative")
	}
	if r.MinParagraphs < 0 {
		return errors.New("minimum paragraph count cannot be negative")
	}
	if len(r.DensityParentTags) == 0 {
		return errors.New("at least one density parent tag is required")
	}
	return nil
}

// Merge extends r with the entries of extra. Lists are appended without
// duplicates and positive thresholds in extra override r's.
func (r Rules) Merge(extra Rules) Rules {
	merged := Rules{
		NoiseTags:               appendUnique(r.NoiseTags, extra.NoiseTags),
		NoiseAttrFragments:      appendUnique(r.NoiseAttrFragments, extra.NoiseAttrFragments),
		ImageMetaTags:           appendUnique(r.ImageMetaTags, extra.ImageMetaTags),
		ImageMetaClassFragments: appendUnique(r.ImageMetaClassFragments, extra.ImageMetaClassFragments),
		JunkTextTags:            appendUnique(r.JunkTextTags, extra.JunkTextTags),
		JunkPhrases:             appendUnique(r.JunkPhrases, extra.JunkPhrases),
		SocialBarTerms:          appendUnique(r.SocialBarTerms, extra.SocialBarTerms),
		ContentClassFragments:   appendUnique(r.ContentClassFragments, extra.ContentClassFragments),
		DensityParentTags:       appendUnique(r.DensityParentTags, extra.DensityParentTags),
		ShortTextThreshold:      r.ShortTextThreshold,
		MinParagraphs:           r.MinParagraphs,
		ProtectDocumentRoot:     r.ProtectDocumentRoot || extra.ProtectDocumentRoot,
		InnermostSocialBar:      r.InnermostSocialBar || extra.InnermostSocialBar,
	}
	if extra.ShortTextThreshold > 0 {
		merged.ShortTextThreshold = extra.ShortTextThreshold
	}
	if extra.MinParagraphs > 0 {
		merged.MinParagraphs = extra.MinParagraphs
	}
	return merged
}

// ParseRules decodes a YAML rules document and merges it onto base.
func ParseRules(r io.Reader, base Rules) (Rules, error) {
	var extra Rules
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&extra); err != nil {
		if errors.Is(err, io.EOF) {
			return base, nil
		}
		return Rules{}, fmt.Errorf("failed to parse extractor rules: %w", err)
	}

	merged := base.Merge(extra)
	if err := merged.Validate(); err != nil {
		return Rules{}, fmt.Errorf("invalid extractor rules: %w", err)
	}
	return merged, nil
}

// LoadRulesFile reads a YAML rules file from disk and merges it onto base.
func LoadRulesFile(path string, base Rules) (Rules, error) {
	file, err := os.Open(path)
	if err != nil {
		return Rules{}, fmt.Errorf("failed to open extractor rules file: %w", err)
	}
	defer file.Close()

	return ParseRules(file, base)
}

func appendUnique(base, extra []string) []string {
	out := make([]string, 0, len(base)+len(extra))
	seen := make(map[string]struct{}, len(base)+len(extra))
	for _, list := range [][]string{base, extra} {
		for _, v := range list {
			v = strings.ToLower(strings.TrimSpace(v))
			if v == "" {
				continue
			}
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	return out
}
