package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fwojciec/artoc"
	"github.com/fwojciec/artoc/bloom"
	"github.com/fwojciec/artoc/fs"
	"github.com/fwojciec/artoc/sqlite"
	"golang.org/x/sync/errgroup"
)

// Run executes the batch command: parse every .html file under the
// directory, skipping files whose exact content was already seen.
func (c *BatchCmd) Run(deps *Dependencies) error {
	paths, err := filepath.Glob(filepath.Join(c.Dir, "*.html"))
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		fmt.Fprintln(deps.Stdout, "No .html files found.")
		return nil
	}

	var articles artoc.ArticleService
	if c.Save {
		articles, err = deps.OpenArticles()
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", artoc.ErrorMessage(err))
			return err
		}
	}

	var writer *fs.Writer
	if c.Out != "" {
		writer = fs.NewWriter(c.Out)
	}

	// The filter is not safe for concurrent use, so membership checks
	// are serialized; parsing itself runs in parallel.
	seen := bloom.NewFilter(uint(max(len(paths), 64)), 0.001)
	var mu sync.Mutex

	results := make([]string, len(paths))

	g, ctx := errgroup.WithContext(deps.Ctx)
	g.SetLimit(c.Concurrency)

	for i, path := range paths {
		g.Go(func() error {
			b, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			html := string(b)
			hash := sqlite.ContentHash(html)

			mu.Lock()
			dup := seen.Seen(hash)
			if !dup {
				seen.Add(hash)
			}
			mu.Unlock()

			if dup {
				results[i] = fmt.Sprintf("%s: skipped (duplicate content)", path)
				return nil
			}

			res := deps.Parser.Parse(html)
			results[i] = fmt.Sprintf("%s: %d headings", path, len(res.Headings()))

			article := resultArticle(path, res)
			if writer != nil {
				if _, err := writer.WriteArticle(article); err != nil {
					return err
				}
			}
			if articles != nil {
				return articles.CreateArticle(ctx, article)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", artoc.ErrorMessage(err))
		return err
	}

	for _, line := range results {
		fmt.Fprintln(deps.Stdout, line)
	}
	return nil
}
