package artoc

// Converter converts article HTML to Markdown, typically the pure content
// (title removed) for downstream text pipelines.
type Converter interface {
	Convert(html string) (string, error)
}
