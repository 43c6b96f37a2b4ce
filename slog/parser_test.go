package slog_test

import (
	"bytes"
	stdslog "log/slog"
	"testing"

	"github.com/fwojciec/artoc"
	artocslog "github.com/fwojciec/artoc/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingParser_Parse(t *testing.T) {
	t.Parallel()

	t.Run("returns the wrapped parser's result", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := stdslog.New(stdslog.NewTextHandler(&buf, nil))

		p := artocslog.NewLoggingParser(artoc.ParserFunc(artoc.Parse), logger)
		res := p.Parse("<h1>T</h1><h2>S</h2>")

		title, ok := res.Title()
		require.True(t, ok)
		assert.Equal(t, "T", title)
		assert.Len(t, res.Headings(), 1)
	})

	t.Run("logs title and heading count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := stdslog.New(stdslog.NewTextHandler(&buf, nil))

		p := artocslog.NewLoggingParser(artoc.ParserFunc(artoc.Parse), logger)
		p.Parse("<h1>My Title</h1><h2>A</h2><h2>B</h2>")

		out := buf.String()
		assert.Contains(t, out, "parsed article")
		assert.Contains(t, out, "My Title")
		assert.Contains(t, out, "headings=2")
	})

	t.Run("missing title logged as placeholder", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := stdslog.New(stdslog.NewTextHandler(&buf, nil))

		p := artocslog.NewLoggingParser(artoc.ParserFunc(artoc.Parse), logger)
		p.Parse("<h2>Only Section</h2>")

		assert.Contains(t, buf.String(), "(none)")
	})
}
