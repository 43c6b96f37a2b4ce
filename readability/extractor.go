// Package readability provides an artoc.Extractor backed by go-readability,
// suitable for arbitrary article pages where no selector is known upfront.
package readability

import (
	"strings"

	"github.com/fwojciec/artoc"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements artoc.Extractor at compile time.
var _ artoc.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to isolate the article body from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract runs readability over the page and returns the article body,
// ready to be handed to artoc.Parse.
func (e *Extractor) Extract(rawHTML string) (*artoc.ExtractResult, error) {
	if rawHTML == "" {
		return nil, artoc.Errorf(artoc.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &artoc.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}
