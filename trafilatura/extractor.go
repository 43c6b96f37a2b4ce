// Package trafilatura provides an artoc.Extractor backed by go-trafilatura,
// the most aggressive of the three extractors at stripping boilerplate.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/artoc"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements artoc.Extractor at compile time.
var _ artoc.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to isolate the article body from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract runs trafilatura over the page and returns the article body.
func (e *Extractor) Extract(rawHTML string) (*artoc.ExtractResult, error) {
	if rawHTML == "" {
		return nil, artoc.Errorf(artoc.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	return &artoc.ExtractResult{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
