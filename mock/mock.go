// Package mock provides function-field mock implementations of the artoc
// interfaces for testing.
package mock

import (
	"context"

	"github.com/fwojciec/artoc"
)

var _ artoc.Parser = (*Parser)(nil)

// Parser is a mock implementation of artoc.Parser.
type Parser struct {
	ParseFn func(html string) *artoc.Result
}

func (p *Parser) Parse(html string) *artoc.Result {
	return p.ParseFn(html)
}

var _ artoc.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of artoc.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*artoc.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*artoc.ExtractResult, error) {
	return e.ExtractFn(html)
}

var _ artoc.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of artoc.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}

var _ artoc.Converter = (*Converter)(nil)

// Converter is a mock implementation of artoc.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

var _ artoc.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of artoc.Renderer.
type Renderer struct {
	RenderFn func(headings []artoc.Heading) (string, error)
}

func (r *Renderer) Render(headings []artoc.Heading) (string, error) {
	return r.RenderFn(headings)
}

var _ artoc.ArticleService = (*ArticleService)(nil)

// ArticleService is a mock implementation of artoc.ArticleService.
type ArticleService struct {
	CreateArticleFn   func(ctx context.Context, article *artoc.Article) error
	FindArticleByIDFn func(ctx context.Context, id string) (*artoc.Article, error)
	FindArticlesFn    func(ctx context.Context, filter artoc.ArticleFilter) ([]*artoc.Article, error)
	DeleteArticleFn   func(ctx context.Context, id string) error
}

func (s *ArticleService) CreateArticle(ctx context.Context, article *artoc.Article) error {
	return s.CreateArticleFn(ctx, article)
}

func (s *ArticleService) FindArticleByID(ctx context.Context, id string) (*artoc.Article, error) {
	return s.FindArticleByIDFn(ctx, id)
}

func (s *ArticleService) FindArticles(ctx context.Context, filter artoc.ArticleFilter) ([]*artoc.Article, error) {
	return s.FindArticlesFn(ctx, filter)
}

func (s *ArticleService) DeleteArticle(ctx context.Context, id string) error {
	return s.DeleteArticleFn(ctx, id)
}
