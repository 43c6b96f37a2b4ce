package artoc

// ExtractResult holds the article body isolated from a full HTML page.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// ContentHTML is the article body as clean HTML. Boilerplate (nav,
	// footer, sidebar, ads) has been removed; headings and paragraphs
	// are preserved so the body can be fed to Parse.
	ContentHTML string
}

// Extractor isolates the main article content from a full HTML page.
// It is an optional pre-stage: Parse works on any markup, but feeding it
// a full page would pick up navigation headings alongside article ones.
type Extractor interface {
	Extract(html string) (*ExtractResult, error)
}
