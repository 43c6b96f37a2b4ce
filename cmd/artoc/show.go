package main

import (
	"fmt"

	"github.com/fwojciec/artoc"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	articles, err := deps.OpenArticles()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", artoc.ErrorMessage(err))
		return err
	}

	article, err := articles.FindArticleByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", artoc.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "ID:     %s\n", article.ID)
	fmt.Fprintf(deps.Stdout, "Source: %s\n", article.SourceURL)
	if article.Title != "" {
		fmt.Fprintf(deps.Stdout, "Title:  %s\n", article.Title)
	}
	if article.Perex != "" {
		fmt.Fprintf(deps.Stdout, "Perex:  %s\n", article.Perex)
	}

	if c.HTML {
		out, err := deps.Renderer.Render(article.Headings)
		if err != nil {
			return err
		}
		if out != "" {
			fmt.Fprintln(deps.Stdout, out)
		}
		return nil
	}

	for _, h := range article.Headings {
		fmt.Fprintf(deps.Stdout, "%-24s %s\n", h.ID, h.Text)
	}

	return nil
}
