package extractor

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func extract(t *testing.T, document string) Result {
	t.Helper()
	result, err := NewDefault().ExtractFromString(document)
	require.NoError(t, err)
	return result
}

func paragraphs(n int) string {
	var b strings.Builder
	for i := 1; i <= n; i++ {
		fmt.Fprintf(&b, "<p>Para %d</p>", i)
	}
	return b.String()
}

func TestExtract_EndToEnd(t *testing.T) {
	input := `<html><body><nav>Menu</nav><article><h1>T</h1><p>Body text that is reasonably long and clearly the real article content.</p></article><footer>F</footer></body></html>`

	result := extract(t, input)

	assert.Equal(t, `<article><h1>T</h1><p>Body text that is reasonably long and clearly the real article content.</p></article>`, result.HTML)
	assert.Equal(t, StrategyArticle, result.Strategy)
	assert.True(t, result.Extracted)
	assert.NotContains(t, result.HTML, "Menu")
	assert.NotContains(t, result.HTML, "<footer>")
}

func TestExtract_IsDeterministic(t *testing.T) {
	input := `<html><body>
		<div class="sidebar">Links</div>
		<div class="post-content"><p>One</p><p>Two</p><span class="caption">Photo</span></div>
	</body></html>`

	first := extract(t, input)
	second := extract(t, input)

	assert.Equal(t, first, second)
}

func TestExtract_ArticleTakesPriorityOverClassMatch(t *testing.T) {
	input := `<html><body>
		<div class="article-content"><p>Class matched body</p></div>
		<article><p>Semantic article body</p></article>
	</body></html>`

	result := extract(t, input)

	assert.Contains(t, result.HTML, "Semantic article body")
	assert.NotContains(t, result.HTML, "Class matched body")
	assert.True(t, strings.HasPrefix(result.HTML, "<article>"))
}

func TestExtract_RemovesNestedNav(t *testing.T) {
	input := `<html><body><article><nav><a href="/">Home</a> Sections</nav><p>Story text</p></article></body></html>`

	result := extract(t, input)

	assert.NotContains(t, result.HTML, "<nav")
	assert.NotContains(t, result.HTML, "Sections")
	assert.Contains(t, result.HTML, "Story text")
}

func TestExtract_RemovesScriptsAndStyles(t *testing.T) {
	input := `<html><head><style>.x{color:red}</style></head><body>
		<script>alert('hi')</script>
		<article><p>Clean content</p><noscript>Enable JS</noscript></article>
	</body></html>`

	result := extract(t, input)

	assert.Contains(t, result.HTML, "Clean content")
	assert.NotContains(t, result.HTML, "alert")
	assert.NotContains(t, result.HTML, "color:red")
	assert.NotContains(t, result.HTML, "Enable JS")
}

func TestExtract_ShortJunkPhrases(t *testing.T) {
	long := strings.Repeat("The council voted on the municipal budget late on Tuesday evening. ", 4) +
		"Residents can read more in the full report published by the city clerk."
	require.Greater(t, len(long), 150)

	input := `<html><body><article>
		<div>Read more</div>
		<div>` + long + `</div>
		<div>Follow us on Twitter</div>
	</article></body></html>`

	result := extract(t, input)

	assert.NotContains(t, result.HTML, "<div>Read more</div>")
	assert.NotContains(t, result.HTML, "Follow us on Twitter")
	assert.Contains(t, result.HTML, "read more in the full report")
}

func TestExtract_JunkThresholdBoundary(t *testing.T) {
	e := NewDefault()
	phrase := "share this"

	under := phrase + strings.Repeat("x", DefaultShortTextThreshold-len(phrase)-1)
	at := phrase + strings.Repeat("x", DefaultShortTextThreshold-len(phrase))

	assert.True(t, e.isShortJunk(under))
	assert.False(t, e.isShortJunk(at))
	assert.False(t, e.isShortJunk(""))
}

func TestExtract_RemovesClassAndIDNoise(t *testing.T) {
	input := `<html><body><article>
		<p>Real content</p>
		<div class="social-share">Share buttons</div>
		<div class="related-posts-widget">Related</div>
		<div id="sidebar">Sidebar stuff</div>
		<div id="comments">Comments section</div>
		<ul class="Post-Tags"><li>Politics</li></ul>
	</article></body></html>`

	result := extract(t, input)

	assert.Contains(t, result.HTML, "Real content")
	for _, gone := range []string{"Share buttons", "Related", "Sidebar stuff", "Comments section", "Politics"} {
		assert.NotContains(t, result.HTML, gone)
	}
}

func TestExtract_DenylistedBodyClass(t *testing.T) {
	input := `<html><body class="tags-archive has-sidebar"><div>` + paragraphs(6) + `</div></body></html>`

	t.Run("body is removed by default", func(t *testing.T) {
		result := extract(t, input)

		assert.Equal(t, FallbackMessage, result.HTML)
		assert.Equal(t, StrategyFallback, result.Strategy)
		assert.False(t, result.Extracted)
	})

	t.Run("protected document root keeps the body", func(t *testing.T) {
		rules := DefaultRules()
		rules.ProtectDocumentRoot = true

		result, err := New(rules).ExtractFromString(input)

		require.NoError(t, err)
		assert.Equal(t, StrategyDensity, result.Strategy)
		assert.Equal(t, "<div>"+paragraphs(6)+"</div>", result.HTML)
	})
}

func TestExtract_BroadFragmentsRemoveUnluckyContainers(t *testing.T) {
	tests := []struct {
		name  string
		class string
	}{
		{name: "tags inside hashtags", class: "hashtags-story"},
		{name: "promo inside promotion", class: "promotion-feature"},
		{name: "comments inside a story wrapper", class: "story-with-comments"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := `<html><body><div class="` + tt.class + `">` + paragraphs(6) + `</div></body></html>`

			result := extract(t, input)

			assert.Equal(t, FallbackMessage, result.HTML)
		})
	}
}

func TestExtract_RemovesImageMetadata(t *testing.T) {
	input := `<html><body><article>
		<p>Main content</p>
		<figure><img src="a.jpg"><figcaption class="caption">Image caption</figcaption></figure>
		<span class="photo-credit">Photo credit</span>
		<div class="Image-Label">Label</div>
	</article></body></html>`

	result := extract(t, input)

	assert.Contains(t, result.HTML, "Main content")
	assert.Contains(t, result.HTML, `<img src="a.jpg"/>`)
	assert.NotContains(t, result.HTML, "Image caption")
	assert.NotContains(t, result.HTML, "Photo credit")
	assert.NotContains(t, result.HTML, "Label")
}

func TestExtract_RemovesSocialBars(t *testing.T) {
	tests := []struct {
		name string
		bar  string
	}{
		{
			name: "short bar",
			bar:  "facebook tweetemail share link copied!",
		},
		{
			name: "bar longer than the junk threshold",
			bar: strings.Repeat("Share this article on social media: facebook tweet email ", 3) +
				"share link copied!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := `<html><body><article><p>Real article content here</p><div>` + tt.bar + `</div></article></body></html>`

			result := extract(t, input)

			assert.Contains(t, result.HTML, "Real article content here")
			assert.NotContains(t, result.HTML, "facebook")
		})
	}
}

func TestExtract_SocialBarRemovesWrappingContainers(t *testing.T) {
	input := `<html><body><div id="wrap">` + paragraphs(6) + `<div>Share: facebook tweet email</div></div></body></html>`

	t.Run("every container mentioning the bar goes", func(t *testing.T) {
		result := extract(t, input)

		assert.Equal(t, FallbackMessage, result.HTML)
		assert.Equal(t, StrategyFallback, result.Strategy)
		assert.False(t, result.Extracted)
	})

	t.Run("innermost only keeps the wrapper", func(t *testing.T) {
		rules := DefaultRules()
		rules.InnermostSocialBar = true

		result, err := New(rules).ExtractFromString(input)

		require.NoError(t, err)
		assert.Equal(t, StrategyDensity, result.Strategy)
		assert.True(t, strings.HasPrefix(result.HTML, `<div id="wrap">`))
		assert.Contains(t, result.HTML, "Para 6")
		assert.NotContains(t, result.HTML, "facebook")
	})
}

func TestExtract_SocialBarInsideClassContainer(t *testing.T) {
	body := strings.Repeat("Officials confirmed the bridge will reopen next spring after repairs. ", 3)
	input := `<html><body><div class="entry-content"><p>` + body + `</p><div>Facebook Tweet Email</div></div></body></html>`

	result := extract(t, input)

	assert.Equal(t, FallbackMessage, result.HTML)

	rules := DefaultRules()
	rules.InnermostSocialBar = true
	kept, err := New(rules).ExtractFromString(input)

	require.NoError(t, err)
	assert.Equal(t, StrategyClass+":entry-content", kept.Strategy)
	assert.Contains(t, kept.HTML, "Officials confirmed")
	assert.NotContains(t, kept.HTML, "Facebook")
}

func TestExtract_ClassFragmentsAreTriedInOrder(t *testing.T) {
	input := `<html><body>
		<div class="story-body"><p>Story body</p></div>
		<section class="js-article-content--wide"><p>Article content</p></section>
	</body></html>`

	result := extract(t, input)

	assert.Equal(t, StrategyClass+":article-content", result.Strategy)
	assert.Contains(t, result.HTML, "Article content")
	assert.True(t, strings.HasPrefix(result.HTML, "<section"))
}

func TestExtract_DensityThreshold(t *testing.T) {
	t.Run("five paragraphs fall back", func(t *testing.T) {
		result := extract(t, "<html><body><div>"+paragraphs(5)+"</div></body></html>")

		assert.Equal(t, FallbackMessage, result.HTML)
		assert.Equal(t, StrategyFallback, result.Strategy)
		assert.False(t, result.Extracted)
	})

	t.Run("six paragraphs select their div", func(t *testing.T) {
		result := extract(t, "<html><body><div>"+paragraphs(6)+"</div></body></html>")

		assert.Equal(t, "<div>"+paragraphs(6)+"</div>", result.HTML)
		assert.Equal(t, StrategyDensity, result.Strategy)
		assert.True(t, result.Extracted)
	})
}

func TestExtract_DensityIgnoresOtherParents(t *testing.T) {
	var items strings.Builder
	for i := 1; i <= 6; i++ {
		fmt.Fprintf(&items, "<li><p>Item %d</p></li>", i)
	}

	t.Run("list paragraphs only", func(t *testing.T) {
		result := extract(t, "<html><body><ul>"+items.String()+"</ul></body></html>")

		assert.Equal(t, FallbackMessage, result.HTML)
	})

	t.Run("list paragraphs plus one in a section", func(t *testing.T) {
		input := "<html><body><ul>" + items.String() + "</ul><section><p>Lone paragraph</p></section></body></html>"

		result := extract(t, input)

		assert.Equal(t, "<section><p>Lone paragraph</p></section>", result.HTML)
		assert.Equal(t, StrategyDensity, result.Strategy)
	})

	t.Run("blockquote parents", func(t *testing.T) {
		result := extract(t, "<html><body><blockquote>"+paragraphs(7)+"</blockquote></body></html>")

		assert.Equal(t, FallbackMessage, result.HTML)
	})
}

func TestExtract_DensityPicksBusiestParent(t *testing.T) {
	input := "<html><body>" +
		"<div id=\"teaser\">" + paragraphs(2) + "</div>" +
		"<section id=\"story\">" + paragraphs(4) + "</section>" +
		"</body></html>"

	result := extract(t, input)

	assert.True(t, strings.HasPrefix(result.HTML, `<section id="story">`))
}

func TestExtract_DensityTieGoesToFirstParent(t *testing.T) {
	input := "<html><body>" +
		"<div id=\"first\">" + paragraphs(3) + "</div>" +
		"<div id=\"second\">" + paragraphs(3) + "</div>" +
		"</body></html>"

	result := extract(t, input)

	assert.True(t, strings.HasPrefix(result.HTML, `<div id="first">`))
}

func TestExtract_FallbackMessageExactText(t *testing.T) {
	result := extract(t, "<html><body><p>Short</p></body></html>")

	assert.Equal(t, "<p>Could not extract full content automatically. Please visit the source.</p>", result.HTML)
}

func TestExtract_EmptyDocument(t *testing.T) {
	result := extract(t, "")

	assert.Equal(t, FallbackMessage, result.HTML)
	assert.False(t, result.Extracted)
}

func TestExtract_OutputIsSubsetOfInput(t *testing.T) {
	input := `<html><body><article><h2>Heading</h2><p>First</p><p>Second</p></article></body></html>`

	result := extract(t, input)

	assert.Contains(t, input, result.HTML)
}

func TestNew_CustomRules(t *testing.T) {
	rules := DefaultRules()
	rules.MinParagraphs = 2
	rules.JunkPhrases = append(rules.JunkPhrases, "LIVE UPDATES")
	e := New(rules)

	sentence := "Crews worked through the night to restore power to the eastern districts."
	document := "<html><body><div>" +
		"<p>" + sentence + "</p><p>" + sentence + "</p><p>" + sentence + "</p>" +
		"<p>Live updates ahead</p></div></body></html>"

	result, err := e.ExtractFromString(document)

	require.NoError(t, err)
	assert.Equal(t, StrategyDensity, result.Strategy)
	assert.NotContains(t, result.HTML, "Live updates")
	assert.Contains(t, e.Rules().JunkPhrases, "live updates")
}

func BenchmarkExtract(b *testing.B) {
	var page strings.Builder
	page.WriteString("<html><head><script>var x = 1;</script></head><body><nav>Menu</nav>")
	page.WriteString(`<div class="sidebar"><div>Read more</div></div><div id="main">`)
	for i := 0; i < 200; i++ {
		fmt.Fprintf(&page, "<p>Paragraph %d of a long article body with enough words to look real.</p>", i)
	}
	page.WriteString("</div><footer>Footer</footer></body></html>")
	document := page.String()
	e := NewDefault()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := e.ExtractFromString(document); err != nil {
			b.Fatal(err)
		}
	}
}
