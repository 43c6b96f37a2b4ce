package artoc

// Renderer renders headings as a navigable table-of-contents fragment.
// Links must target the identifiers Parse injected as anchors.
type Renderer interface {
	Render(headings []Heading) (string, error)
}
