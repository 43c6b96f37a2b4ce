package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/artoc"
	"github.com/fwojciec/artoc/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustOpenDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func parsedArticle(sourceURL, html string) *artoc.Article {
	res := artoc.Parse(html)
	title, _ := res.Title()
	perex, _ := res.Perex()
	return &artoc.Article{
		SourceURL: sourceURL,
		Title:     title,
		Perex:     perex,
		Content:   res.Content(),
		Headings:  res.Headings(),
	}
}

func TestArticleService_CreateArticle(t *testing.T) {
	t.Parallel()

	t.Run("assigns id, hash, and timestamp", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewArticleService(mustOpenDB(t))

		article := parsedArticle("https://example.com/a",
			"<h1>T</h1><p>P</p><h2>One Two</h2>")
		err := s.CreateArticle(context.Background(), article)
		require.NoError(t, err)

		assert.NotEmpty(t, article.ID)
		assert.Equal(t, sqlite.ContentHash(article.Content), article.ContentHash)
		assert.False(t, article.ParsedAt.IsZero())
	})

	t.Run("round-trips headings in order", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewArticleService(mustOpenDB(t))
		ctx := context.Background()

		article := parsedArticle("https://example.com/a",
			"<h2>Alpha</h2><h2>Beta</h2><h2>Alpha</h2>")
		require.NoError(t, s.CreateArticle(ctx, article))

		got, err := s.FindArticleByID(ctx, article.ID)
		require.NoError(t, err)

		assert.Equal(t, []artoc.Heading{
			{ID: "alpha", Text: "Alpha"},
			{ID: "beta", Text: "Beta"},
			{ID: "alpha", Text: "Alpha"},
		}, got.Headings)
	})

	t.Run("rejects invalid article", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewArticleService(mustOpenDB(t))

		err := s.CreateArticle(context.Background(), &artoc.Article{Content: "<p>x</p>"})
		require.Error(t, err)
		assert.Equal(t, artoc.EINVALID, artoc.ErrorCode(err))
	})
}

func TestArticleService_FindArticleByID(t *testing.T) {
	t.Parallel()

	t.Run("returns stored fields", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewArticleService(mustOpenDB(t))
		ctx := context.Background()

		article := parsedArticle("https://example.com/a",
			"<h1>T</h1><p>P</p><h2>S</h2>")
		require.NoError(t, s.CreateArticle(ctx, article))

		got, err := s.FindArticleByID(ctx, article.ID)
		require.NoError(t, err)

		assert.Equal(t, "T", got.Title)
		assert.Equal(t, "P", got.Perex)
		assert.Equal(t, article.Content, got.Content)
		assert.Equal(t, article.ContentHash, got.ContentHash)
	})

	t.Run("unknown id returns ENOTFOUND", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewArticleService(mustOpenDB(t))

		_, err := s.FindArticleByID(context.Background(), "no-such-id")
		require.Error(t, err)
		assert.Equal(t, artoc.ENOTFOUND, artoc.ErrorCode(err))
	})
}

func TestArticleService_FindArticles(t *testing.T) {
	t.Parallel()

	t.Run("filters by source URL", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewArticleService(mustOpenDB(t))
		ctx := context.Background()

		require.NoError(t, s.CreateArticle(ctx,
			parsedArticle("https://example.com/a", "<h2>A</h2>")))
		require.NoError(t, s.CreateArticle(ctx,
			parsedArticle("https://example.com/b", "<h2>B</h2>")))

		url := "https://example.com/b"
		articles, err := s.FindArticles(ctx, artoc.ArticleFilter{SourceURL: &url})
		require.NoError(t, err)

		require.Len(t, articles, 1)
		assert.Equal(t, url, articles[0].SourceURL)
	})

	t.Run("filters by content hash", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewArticleService(mustOpenDB(t))
		ctx := context.Background()

		article := parsedArticle("https://example.com/a", "<h2>A</h2>")
		require.NoError(t, s.CreateArticle(ctx, article))

		articles, err := s.FindArticles(ctx,
			artoc.ArticleFilter{ContentHash: &article.ContentHash})
		require.NoError(t, err)
		require.Len(t, articles, 1)

		miss := "0000000000000000"
		articles, err = s.FindArticles(ctx, artoc.ArticleFilter{ContentHash: &miss})
		require.NoError(t, err)
		assert.Empty(t, articles)
	})

	t.Run("pagination", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewArticleService(mustOpenDB(t))
		ctx := context.Background()

		for _, u := range []string{"u1", "u2", "u3"} {
			require.NoError(t, s.CreateArticle(ctx,
				parsedArticle("https://example.com/"+u, "<h2>X</h2>")))
		}

		articles, err := s.FindArticles(ctx, artoc.ArticleFilter{Limit: 2})
		require.NoError(t, err)
		assert.Len(t, articles, 2)

		articles, err = s.FindArticles(ctx, artoc.ArticleFilter{Limit: 2, Offset: 2})
		require.NoError(t, err)
		assert.Len(t, articles, 1)
	})
}

func TestArticleService_DeleteArticle(t *testing.T) {
	t.Parallel()

	t.Run("deletes existing article", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewArticleService(mustOpenDB(t))
		ctx := context.Background()

		article := parsedArticle("https://example.com/a", "<h2>A</h2>")
		require.NoError(t, s.CreateArticle(ctx, article))

		require.NoError(t, s.DeleteArticle(ctx, article.ID))

		_, err := s.FindArticleByID(ctx, article.ID)
		assert.Equal(t, artoc.ENOTFOUND, artoc.ErrorCode(err))
	})

	t.Run("unknown id returns ENOTFOUND", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewArticleService(mustOpenDB(t))

		err := s.DeleteArticle(context.Background(), "no-such-id")
		require.Error(t, err)
		assert.Equal(t, artoc.ENOTFOUND, artoc.ErrorCode(err))
	})
}
