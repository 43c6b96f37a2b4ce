package main

import (
	"fmt"

	"github.com/fwojciec/artoc"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	articles, err := deps.OpenArticles()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", artoc.ErrorMessage(err))
		return err
	}

	found, err := articles.FindArticles(deps.Ctx, artoc.ArticleFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", artoc.ErrorMessage(err))
		return err
	}

	if len(found) == 0 {
		fmt.Fprintln(deps.Stdout, "No articles found. Use 'artoc save' to store one.")
		return nil
	}

	for _, a := range found {
		title := a.Title
		if title == "" {
			title = "(untitled)"
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %d headings\n", a.ID, title, a.SourceURL, len(a.Headings))
	}

	return nil
}
