package main

import (
	"fmt"

	"github.com/fwojciec/artoc"
)

// Run executes the save command.
func (c *SaveCmd) Run(deps *Dependencies) error {
	html, err := loadArticleHTML(deps, c.Source, c.Extract)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", artoc.ErrorMessage(err))
		return err
	}

	articles, err := deps.OpenArticles()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", artoc.ErrorMessage(err))
		return err
	}

	article := resultArticle(c.Source, deps.Parser.Parse(html))

	if err := articles.CreateArticle(deps.Ctx, article); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", artoc.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved %s (%d headings)\n", article.ID, len(article.Headings))
	return nil
}
