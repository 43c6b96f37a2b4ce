package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/artoc"
	"github.com/fwojciec/artoc/goquery"
	"github.com/fwojciec/artoc/readability"
	"github.com/fwojciec/artoc/trafilatura"
)

// isURL reports whether the source argument is an http(s) URL.
func isURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// readSource loads article HTML from a file path, an http(s) URL, or
// stdin when source is "-".
func readSource(deps *Dependencies, source string) (string, error) {
	switch {
	case source == "-":
		b, err := io.ReadAll(deps.Stdin)
		if err != nil {
			return "", err
		}
		return string(b), nil
	case isURL(source):
		return deps.Fetcher.Fetch(deps.Ctx, source)
	default:
		b, err := os.ReadFile(source)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
}

// sourceURL normalizes a source argument into the registry's SourceURL.
func sourceURL(source string) string {
	switch {
	case isURL(source):
		return source
	case source == "-":
		return "stdin:article"
	default:
		abs, err := filepath.Abs(source)
		if err != nil {
			return "file://" + source
		}
		return "file://" + abs
	}
}

// newExtractor maps the --extract flag to an implementation. Kong's enum
// validation guarantees name is one of the known values.
func newExtractor(name string) artoc.Extractor {
	switch name {
	case "goquery":
		return goquery.NewExtractor()
	case "readability":
		return readability.NewExtractor()
	case "trafilatura":
		return trafilatura.NewExtractor()
	}
	return nil
}

// loadArticleHTML reads the source and, when requested, isolates the
// article body before parsing.
func loadArticleHTML(deps *Dependencies, source, extract string) (string, error) {
	html, err := readSource(deps, source)
	if err != nil {
		return "", err
	}

	if e := newExtractor(extract); e != nil {
		result, err := e.Extract(html)
		if err != nil {
			return "", err
		}
		html = result.ContentHTML
	}

	return html, nil
}
