package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/artoc"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ artoc.ArticleService = (*ArticleService)(nil)

// ArticleService implements artoc.ArticleService using SQLite. Headings
// are stored as a JSON column: they are only ever read back whole and in
// order, so a relational child table would buy nothing.
type ArticleService struct {
	db *DB
}

// NewArticleService creates a new ArticleService.
func NewArticleService(db *DB) *ArticleService {
	return &ArticleService{db: db}
}

// CreateArticle stores a new article, assigning ID, ContentHash, and
// ParsedAt.
func (s *ArticleService) CreateArticle(ctx context.Context, article *artoc.Article) error {
	if err := article.Validate(); err != nil {
		return err
	}

	article.ID = uuid.New().String()
	article.ParsedAt = time.Now().UTC()
	article.ContentHash = hashContent(article.Content)

	headings, err := marshalHeadings(article.Headings)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO articles (id, source_url, title, perex, content, content_hash, headings, parsed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, article.ID, article.SourceURL, article.Title, article.Perex, article.Content,
		article.ContentHash, headings, article.ParsedAt.Format(time.RFC3339))

	return err
}

// FindArticleByID retrieves an article by ID.
func (s *ArticleService) FindArticleByID(ctx context.Context, id string) (*artoc.Article, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, source_url, title, perex, content, content_hash, headings, parsed_at
		FROM articles
		WHERE id = ?
	`, id)

	article, err := scanArticle(row.Scan)
	if err == sql.ErrNoRows {
		return nil, artoc.Errorf(artoc.ENOTFOUND, "article not found")
	}
	if err != nil {
		return nil, err
	}
	return article, nil
}

// FindArticles retrieves articles matching the filter, most recently
// parsed first.
func (s *ArticleService) FindArticles(ctx context.Context, filter artoc.ArticleFilter) ([]*artoc.Article, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, source_url, title, perex, content, content_hash, headings, parsed_at FROM articles WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}
	if filter.ContentHash != nil {
		query.WriteString(" AND content_hash = ?")
		args = append(args, *filter.ContentHash)
	}

	query.WriteString(" ORDER BY parsed_at DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	articles := []*artoc.Article{}
	for rows.Next() {
		article, err := scanArticle(rows.Scan)
		if err != nil {
			return nil, err
		}
		articles = append(articles, article)
	}
	return articles, rows.Err()
}

// DeleteArticle permanently removes an article.
func (s *ArticleService) DeleteArticle(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM articles WHERE id = ?`, id)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return artoc.Errorf(artoc.ENOTFOUND, "article not found")
	}
	return nil
}

// ContentHash exposes the content hashing used for stored articles so
// callers (e.g. batch dedup) agree with the registry on hash values.
func ContentHash(content string) string {
	return hashContent(content)
}

func marshalHeadings(headings []artoc.Heading) (string, error) {
	if headings == nil {
		headings = []artoc.Heading{}
	}
	b, err := json.Marshal(headings)
	if err != nil {
		return "", fmt.Errorf("failed to marshal headings: %w", err)
	}
	return string(b), nil
}

// scanArticle reads one article row. It takes the Scan function so the
// same code serves both sql.Row and sql.Rows.
func scanArticle(scan func(...any) error) (*artoc.Article, error) {
	var article artoc.Article
	var headings, parsedAt string

	if err := scan(&article.ID, &article.SourceURL, &article.Title, &article.Perex,
		&article.Content, &article.ContentHash, &headings, &parsedAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(headings), &article.Headings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal headings: %w", err)
	}

	var err error
	article.ParsedAt, err = parseRFC3339(parsedAt, "parsed_at")
	if err != nil {
		return nil, err
	}

	return &article, nil
}
