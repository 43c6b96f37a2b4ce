// Package slog provides logging decorators for artoc interfaces.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/artoc"
)

// Ensure LoggingParser implements artoc.Parser.
var _ artoc.Parser = (*LoggingParser)(nil)

// LoggingParser wraps a Parser with debug logging of parse outcomes.
type LoggingParser struct {
	next   artoc.Parser
	logger *slog.Logger
}

// NewLoggingParser creates a new LoggingParser.
func NewLoggingParser(next artoc.Parser, logger *slog.Logger) *LoggingParser {
	return &LoggingParser{next: next, logger: logger}
}

// Parse delegates to the wrapped parser and logs what was extracted.
func (p *LoggingParser) Parse(html string) *artoc.Result {
	begin := time.Now()
	res := p.next.Parse(html)

	title, hasTitle := res.Title()
	if !hasTitle {
		title = "(none)"
	}
	_, hasPerex := res.Perex()

	p.logger.Info("parsed article",
		"title", title,
		"perex", hasPerex,
		"headings", len(res.Headings()),
		"bytes", len(html),
		"duration", time.Since(begin),
	)

	return res
}
