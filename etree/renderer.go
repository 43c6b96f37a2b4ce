// Package etree provides an artoc.Renderer that builds a table-of-contents
// list fragment as an element tree rather than by string concatenation, so
// heading text and identifiers are always escaped correctly.
package etree

import (
	"github.com/beevik/etree"
	"github.com/fwojciec/artoc"
)

// DefaultClass is the class attribute on the rendered list.
const DefaultClass = "toc"

// Ensure Renderer implements artoc.Renderer at compile time.
var _ artoc.Renderer = (*Renderer)(nil)

// Renderer renders headings as a <ul> of fragment links matching the
// anchors artoc.Parse injects.
type Renderer struct {
	class string
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithClass sets the class attribute on the rendered list.
// Defaults to DefaultClass.
func WithClass(class string) Option {
	return func(r *Renderer) {
		r.class = class
	}
}

// NewRenderer creates a new Renderer.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{class: DefaultClass}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render returns `<ul class="toc"><li><a href="#id">text</a></li>…</ul>`.
// Heading text is emitted as escaped text, so inner markup left in the
// display text cannot inject elements into the list. An empty heading set
// renders the empty string.
func (r *Renderer) Render(headings []artoc.Heading) (string, error) {
	if len(headings) == 0 {
		return "", nil
	}

	doc := etree.NewDocument()
	ul := doc.CreateElement("ul")
	ul.CreateAttr("class", r.class)

	for _, h := range headings {
		a := ul.CreateElement("li").CreateElement("a")
		a.CreateAttr("href", "#"+h.ID)
		a.SetText(h.Text)
	}

	return doc.WriteToString()
}
