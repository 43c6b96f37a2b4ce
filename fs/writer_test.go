package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/artoc"
	"github.com/fwojciec/artoc/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		article artoc.Article
		want    string
	}{
		{
			"from URL path segment",
			artoc.Article{SourceURL: "https://example.com/posts/Going-Deeper.html", Title: "Other"},
			"going-deeper.html",
		},
		{
			"root URL falls back to title",
			artoc.Article{SourceURL: "https://example.com/", Title: "Liché & Čísla"},
			// gosimple/slug transliterates "&" to "and"; heading
			// identifiers use artoc.Slugify and drop it instead.
			"liche-and-cisla.html",
		},
		{
			"nothing usable falls back to article",
			artoc.Article{SourceURL: "https://example.com/", Title: ""},
			"article.html",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, fs.FileName(&tt.article))
		})
	}
}

func TestWriter_WriteArticle(t *testing.T) {
	t.Parallel()

	t.Run("writes content to slugged path", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewWriter(dir)

		article := &artoc.Article{
			SourceURL: "https://example.com/posts/my-article",
			Content:   `<div id="s" class="content-anchor"></div><h2>S</h2>`,
		}

		path, err := w.WriteArticle(article)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "my-article.html"), path)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, article.Content, string(data))
	})

	t.Run("invalid article is rejected", func(t *testing.T) {
		t.Parallel()

		w := fs.NewWriter(t.TempDir())

		_, err := w.WriteArticle(&artoc.Article{Content: "<p>x</p>"})
		require.Error(t, err)
		assert.Equal(t, artoc.EINVALID, artoc.ErrorCode(err))
	})
}

func TestWriter_WriteTOC(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	w := fs.NewWriter(dir)

	article := &artoc.Article{
		SourceURL: "https://example.com/posts/my-article",
		Content:   "<h2>S</h2>",
	}

	path, err := w.WriteTOC(article, `<ul class="toc"></ul>`)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "my-article.toc.html"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `<ul class="toc"></ul>`, string(data))
}
