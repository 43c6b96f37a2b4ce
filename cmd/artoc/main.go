package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/artoc"
	"github.com/fwojciec/artoc/etree"
	"github.com/fwojciec/artoc/htmltomarkdown"
	artochttp "github.com/fwojciec/artoc/http"
	artocslog "github.com/fwojciec/artoc/slog"
	"github.com/fwojciec/artoc/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()
	defer m.Close()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path for the article registry. Set before calling Run().
	DBPath string

	// SQLite database, opened lazily by commands that need the registry.
	DB *sqlite.DB

	// Overridable services for end-to-end testing.
	Articles artoc.ArticleService
	Fetcher  artoc.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:          ctx,
		Stdin:        stdin,
		Stdout:       stdout,
		Stderr:       stderr,
		Parser:       artoc.ParserFunc(artoc.Parse),
		Renderer:     etree.NewRenderer(),
		Converter:    htmltomarkdown.NewConverter(),
		OpenArticles: m.openArticles,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("artoc"),
		kong.Description("Extract a table of contents and structural metadata from article HTML."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// The fetcher is built after flag parsing so --rate can configure it.
	deps.Fetcher = m.Fetcher
	if deps.Fetcher == nil {
		var opts []artochttp.Option
		if cli.Rate > 0 {
			opts = append(opts, artochttp.WithRateLimit(cli.Rate, 1))
		}
		fetcher := artochttp.NewFetcher(opts...)
		defer fetcher.Close()
		deps.Fetcher = fetcher
	}

	if cli.Verbose {
		logger := slog.New(slog.NewTextHandler(stderr, nil))
		deps.Parser = artocslog.NewLoggingParser(deps.Parser, logger)
	}

	return kongCtx.Run(deps)
}

// openArticles returns the article registry, opening the database on
// first use so commands that never touch storage never create it.
func (m *Main) openArticles() (artoc.ArticleService, error) {
	if m.Articles != nil {
		return m.Articles, nil
	}

	if m.DB == nil {
		if m.DBPath != ":memory:" {
			if err := os.MkdirAll(filepath.Dir(m.DBPath), 0755); err != nil {
				return nil, err
			}
		}
		db := sqlite.NewDB(m.DBPath)
		if err := db.Open(); err != nil {
			return nil, err
		}
		m.DB = db
	}

	m.Articles = sqlite.NewArticleService(m.DB)
	return m.Articles, nil
}

// defaultDBPath returns the default location of the article registry.
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "artoc.db"
	}
	return filepath.Join(home, ".artoc", "artoc.db")
}
