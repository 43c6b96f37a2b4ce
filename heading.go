package artoc

// Heading is one recognized section heading: its generated identifier and
// its display text, in the order the heading appears in the document.
type Heading struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Result is the outcome of parsing one article. It is immutable: all
// fields are unexported and exposed through read accessors only, and the
// only way to obtain a Result is Parse. A zero Result is not meaningful.
type Result struct {
	original    string
	content     string
	pureContent string
	title       *string
	perex       *string
	headings    []Heading
}

// Original returns the exact input text, byte-for-byte untouched.
func (r *Result) Original() string { return r.original }

// Content returns the input with an anchor element injected immediately
// before every section heading.
func (r *Result) Content() string { return r.content }

// PureContent returns Content with the first title heading element (tags
// and inner text) removed.
func (r *Result) PureContent() string { return r.pureContent }

// Title returns the inner text of the first title heading. The second
// return value reports whether a title heading was found, so callers can
// tell "no title" from "empty title".
func (r *Result) Title() (string, bool) {
	if r.title == nil {
		return "", false
	}
	return *r.title, true
}

// Perex returns the inner text of the first paragraph element, with the
// same found semantics as Title.
func (r *Result) Perex() (string, bool) {
	if r.perex == nil {
		return "", false
	}
	return *r.perex, true
}

// Headings returns every recognized section heading in document order.
// Duplicate identifiers are preserved: two headings with the same text
// yield two entries. The returned slice is a copy.
func (r *Result) Headings() []Heading {
	out := make([]Heading, len(r.headings))
	copy(out, r.headings)
	return out
}

// Items returns the identifier → text mapping as a plain map. When two
// headings share an identifier the later one wins; use Headings when
// order or multiplicity matters.
func (r *Result) Items() map[string]string {
	items := make(map[string]string, len(r.headings))
	for _, h := range r.headings {
		items[h.ID] = h.Text
	}
	return items
}

// String returns the canonical text form of the result, the anchor
// injected content.
func (r *Result) String() string { return r.content }
