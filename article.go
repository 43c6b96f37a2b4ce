package artoc

import (
	"context"
	"time"
)

// Article is a parsed article persisted in the registry. Content is the
// anchor-injected HTML; Headings mirror Result.Headings at parse time.
type Article struct {
	ID          string    `json:"id"`
	SourceURL   string    `json:"sourceUrl"`
	Title       string    `json:"title"`
	Perex       string    `json:"perex"`
	Content     string    `json:"content"`
	ContentHash string    `json:"contentHash"`
	Headings    []Heading `json:"headings"`
	ParsedAt    time.Time `json:"parsedAt"`
}

// Validate returns an error if the article contains invalid fields.
func (a *Article) Validate() error {
	if a.SourceURL == "" {
		return Errorf(EINVALID, "article source URL required")
	}
	if a.Content == "" {
		return Errorf(EINVALID, "article content required")
	}
	return nil
}

// ArticleService represents a service for managing parsed articles.
type ArticleService interface {
	// CreateArticle stores a new article. The implementation assigns
	// ID, ContentHash, and ParsedAt.
	CreateArticle(ctx context.Context, article *Article) error

	// FindArticleByID retrieves an article by ID.
	// Returns ENOTFOUND if the article does not exist.
	FindArticleByID(ctx context.Context, id string) (*Article, error)

	// FindArticles retrieves articles matching the filter, most recently
	// parsed first.
	FindArticles(ctx context.Context, filter ArticleFilter) ([]*Article, error)

	// DeleteArticle permanently removes an article.
	// Returns ENOTFOUND if the article does not exist.
	DeleteArticle(ctx context.Context, id string) error
}

// ArticleFilter represents a filter for FindArticles.
type ArticleFilter struct {
	ID          *string `json:"id"`
	SourceURL   *string `json:"sourceUrl"`
	ContentHash *string `json:"contentHash"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
