package main

import (
	"fmt"

	"github.com/fwojciec/artoc"
	"github.com/fwojciec/artoc/fs"
)

// Run executes the parse command.
func (c *ParseCmd) Run(deps *Dependencies) error {
	html, err := loadArticleHTML(deps, c.Source, c.Extract)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", artoc.ErrorMessage(err))
		return err
	}

	res := deps.Parser.Parse(html)

	if c.Out != "" {
		if err := c.writeOut(deps, res); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", artoc.ErrorMessage(err))
			return err
		}
	}

	if c.Markdown {
		md, err := deps.Converter.Convert(res.PureContent())
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", artoc.ErrorMessage(err))
			return err
		}
		fmt.Fprintln(deps.Stdout, md)
		return nil
	}

	if title, ok := res.Title(); ok {
		fmt.Fprintf(deps.Stdout, "Title: %s\n", title)
	}
	if perex, ok := res.Perex(); ok {
		fmt.Fprintf(deps.Stdout, "Perex: %s\n", perex)
	}

	headings := res.Headings()

	if c.TOC == "html" {
		out, err := deps.Renderer.Render(headings)
		if err != nil {
			return err
		}
		if out != "" {
			fmt.Fprintln(deps.Stdout, out)
		}
		return nil
	}

	if len(headings) == 0 {
		fmt.Fprintln(deps.Stdout, "No section headings found.")
		return nil
	}
	for _, h := range headings {
		fmt.Fprintf(deps.Stdout, "%-24s %s\n", h.ID, h.Text)
	}

	return nil
}

// writeOut writes the anchor-injected HTML and its TOC fragment into the
// output directory.
func (c *ParseCmd) writeOut(deps *Dependencies, res *artoc.Result) error {
	article := resultArticle(c.Source, res)

	w := fs.NewWriter(c.Out)
	path, err := w.WriteArticle(article)
	if err != nil {
		return err
	}

	toc, err := deps.Renderer.Render(article.Headings)
	if err != nil {
		return err
	}
	if toc != "" {
		if _, err := w.WriteTOC(article, toc); err != nil {
			return err
		}
	}

	fmt.Fprintf(deps.Stderr, "wrote %s\n", path)
	return nil
}

// resultArticle bundles a parse result into an Article for storage or
// file output.
func resultArticle(source string, res *artoc.Result) *artoc.Article {
	title, _ := res.Title()
	perex, _ := res.Perex()
	return &artoc.Article{
		SourceURL: sourceURL(source),
		Title:     title,
		Perex:     perex,
		Content:   res.Content(),
		Headings:  res.Headings(),
	}
}
