// Package goquery provides a CSS-selector based implementation of
// artoc.Extractor for pages with predictable article markup.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/artoc"
)

// contentSelectors are tried in order; the first match wins. They cover
// semantic HTML5 articles plus the common CMS content containers.
var contentSelectors = []string{
	"article",
	"main",
	"[role='main']",
	"#content",
	".article-body",
	".post-content",
}

// Ensure Extractor implements artoc.Extractor at compile time.
var _ artoc.Extractor = (*Extractor)(nil)

// Extractor isolates article content by CSS selector. Unlike the
// readability and trafilatura extractors it applies no heuristics, which
// makes it predictable on sites whose markup is known in advance.
type Extractor struct {
	selectors []string
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithSelectors replaces the default content selectors.
func WithSelectors(selectors ...string) Option {
	return func(e *Extractor) {
		e.selectors = selectors
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{selectors: contentSelectors}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract returns the first matching content container as HTML. The title
// comes from og:title when present, falling back to the document title.
func (e *Extractor) Extract(rawHTML string) (*artoc.ExtractResult, error) {
	if rawHTML == "" {
		return nil, artoc.Errorf(artoc.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, artoc.Errorf(artoc.EINVALID, "failed to parse HTML: %v", err)
	}

	title, _ := doc.Find(`meta[property="og:title"]`).Attr("content")
	if title == "" {
		title = strings.TrimSpace(doc.Find("title").First().Text())
	}

	for _, selector := range e.selectors {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			continue
		}
		contentHTML, err := sel.Html()
		if err != nil {
			return nil, err
		}
		return &artoc.ExtractResult{
			Title:       title,
			ContentHTML: strings.TrimSpace(contentHTML),
		}, nil
	}

	return nil, artoc.Errorf(artoc.ENOTFOUND, "no content container matched")
}
