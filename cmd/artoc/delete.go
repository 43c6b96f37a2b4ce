package main

import (
	"fmt"

	"github.com/fwojciec/artoc"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	articles, err := deps.OpenArticles()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", artoc.ErrorMessage(err))
		return err
	}

	if err := articles.DeleteArticle(deps.Ctx, c.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", artoc.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted %s\n", c.ID)
	return nil
}
