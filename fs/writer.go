// Package fs provides file-based output for parsed articles.
package fs

import (
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/fwojciec/artoc"
	"github.com/gosimple/slug"
)

// FileName derives a file name for an article: the last path segment of
// the source URL, falling back to the title, slugged for the filesystem.
// Example: https://example.com/posts/Going-Deeper → going-deeper.html
//
// Heading identifiers use the package's own deterministic Slugify; file
// names go through gosimple/slug instead because path components need the
// broader transliteration it provides.
func FileName(article *artoc.Article) string {
	base := ""
	if u, err := url.Parse(article.SourceURL); err == nil {
		base = strings.TrimSuffix(path.Base(u.Path), path.Ext(u.Path))
		if base == "." || base == "/" {
			base = ""
		}
	}
	if base == "" {
		base = article.Title
	}

	slugged := slug.Make(base)
	if slugged == "" {
		slugged = "article"
	}
	return slugged + ".html"
}

// Writer writes parsed articles as HTML files under a base directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteArticle writes the article's anchor-injected content to disk and
// returns the path written.
func (w *Writer) WriteArticle(article *artoc.Article) (string, error) {
	if err := article.Validate(); err != nil {
		return "", err
	}
	return w.write(FileName(article), article.Content)
}

// WriteTOC writes a rendered table-of-contents fragment next to the
// article file, as <name>.toc.html.
func (w *Writer) WriteTOC(article *artoc.Article, toc string) (string, error) {
	if err := article.Validate(); err != nil {
		return "", err
	}
	name := strings.TrimSuffix(FileName(article), ".html") + ".toc.html"
	return w.write(name, toc)
}

func (w *Writer) write(name, content string) (string, error) {
	fullPath := filepath.Join(w.baseDir, name)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", err
	}
	if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
		return "", err
	}
	return fullPath, nil
}
