package main

import (
	"context"
	"io"

	"github.com/fwojciec/artoc"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	Parser    artoc.Parser
	Fetcher   artoc.Fetcher
	Renderer  artoc.Renderer
	Converter artoc.Converter

	// OpenArticles opens the article registry on first use.
	OpenArticles func() (artoc.ArticleService, error)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool    `short:"v" help:"Log parse details to stderr"`
	Rate    float64 `help:"Max requests per second when fetching URLs (0 = unlimited)"`

	Parse  ParseCmd  `cmd:"" help:"Parse article HTML and print its table of contents"`
	Batch  BatchCmd  `cmd:"" help:"Parse every HTML file in a directory"`
	Save   SaveCmd   `cmd:"" help:"Parse an article and store it in the registry"`
	List   ListCmd   `cmd:"" help:"List stored articles"`
	Show   ShowCmd   `cmd:"" help:"Show a stored article's metadata and TOC"`
	Delete DeleteCmd `cmd:"" help:"Delete a stored article"`
}

// ParseCmd is the "parse" subcommand.
type ParseCmd struct {
	Source   string `arg:"" help:"File path, URL, or '-' for stdin"`
	Extract  string `short:"e" enum:"none,goquery,readability,trafilatura" default:"none" help:"Isolate the article body before parsing"`
	TOC      string `enum:"text,html" default:"text" help:"TOC output format"`
	Markdown bool   `short:"m" help:"Print the pure content as Markdown instead of a TOC"`
	Out      string `short:"o" help:"Directory to write the anchor-injected HTML and TOC fragment"`
}

// BatchCmd is the "batch" subcommand.
type BatchCmd struct {
	Dir         string `arg:"" help:"Directory of .html files"`
	Concurrency int    `short:"c" default:"8" help:"Concurrent parse limit"`
	Save        bool   `help:"Store parsed articles in the registry"`
	Out         string `short:"o" help:"Directory to write anchor-injected HTML files"`
}

// SaveCmd is the "save" subcommand.
type SaveCmd struct {
	Source  string `arg:"" help:"File path or URL"`
	Extract string `short:"e" enum:"none,goquery,readability,trafilatura" default:"none" help:"Isolate the article body before parsing"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID   string `arg:"" help:"Article ID"`
	HTML bool   `help:"Render the TOC as an HTML fragment"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID string `arg:"" help:"Article ID"`
}
