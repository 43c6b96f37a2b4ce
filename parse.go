package artoc

import (
	"regexp"
	"strings"
)

// Recognized markup conventions. Tag names are fixed, not configurable.
const (
	titleTag   = "h1"
	sectionTag = "h2"
	perexTag   = "p"

	// anchorClass marks injected anchor elements.
	anchorClass = "content-anchor"
)

// elementPattern matches one well-formed element of the given tag:
// opening tag with arbitrary attributes, inner content (non-greedy,
// may span lines and contain markup), closing tag. The attribute group
// requires whitespace after the tag name so "p" never matches "pre".
// Unclosed or otherwise malformed elements simply do not match.
func elementPattern(tag string) *regexp.Regexp {
	return regexp.MustCompile(`(?is)<` + tag + `(?:\s[^>]*)?>(.*?)</` + tag + `>`)
}

// Go's regexp is RE2: matching is linear in input size, so adversarial
// input cannot trigger catastrophic backtracking.
var (
	titleRe   = elementPattern(titleTag)
	sectionRe = elementPattern(sectionTag)
	perexRe   = elementPattern(perexTag)
)

// attrEscaper escapes text for use inside a double-quoted HTML attribute.
// All identifier escaping goes through escapeAttr so the policy cannot be
// bypassed by a second injection site.
var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

func escapeAttr(s string) string {
	return attrEscaper.Replace(s)
}

// Parser produces a Result from raw article HTML.
type Parser interface {
	Parse(html string) *Result
}

// ParserFunc adapts a plain function to the Parser interface.
type ParserFunc func(html string) *Result

// Parse calls f(html).
func (f ParserFunc) Parse(html string) *Result { return f(html) }

// Parse extracts structural metadata from article HTML. It is a pure
// function: no I/O, no shared state, safe to call concurrently. It never
// fails — unrecognized or malformed markup is passed through untouched
// and simply contributes nothing to the extracted fields.
func Parse(html string) *Result {
	headings, content := injectAnchors(html)

	res := &Result{
		original: html,
		content:  content,
		headings: headings,
	}

	// Title and perex are scanned on the raw input, not the injected
	// content, so anchor markup can never leak into extracted text.
	if m := titleRe.FindStringSubmatch(html); m != nil {
		res.title = &m[1]
	}
	if m := perexRe.FindStringSubmatch(html); m != nil {
		res.perex = &m[1]
	}

	res.pureContent = removeTitle(content)

	return res
}

// injectAnchors finds every section heading and rebuilds the text with an
// anchor element inserted immediately before each one. The rebuild is a
// single left-to-right pass over original offsets, so earlier insertions
// never shift the offsets used for later ones.
func injectAnchors(html string) ([]Heading, string) {
	matches := sectionRe.FindAllStringSubmatchIndex(html, -1)
	if len(matches) == 0 {
		return nil, html
	}

	headings := make([]Heading, 0, len(matches))
	var b strings.Builder
	b.Grow(len(html) + len(matches)*64)

	last := 0
	for _, m := range matches {
		start, end := m[0], m[1]
		text := html[m[2]:m[3]]
		id := Slugify(text)
		headings = append(headings, Heading{ID: id, Text: text})

		b.WriteString(html[last:start])
		b.WriteString(`<div id="`)
		b.WriteString(escapeAttr(id))
		b.WriteString(`" class="`)
		b.WriteString(anchorClass)
		b.WriteString(`"></div>`)
		b.WriteString(html[start:end])
		last = end
	}
	b.WriteString(html[last:])

	return headings, b.String()
}

// removeTitle strips the first title heading element, tags and inner text
// together, leaving every other byte intact.
func removeTitle(content string) string {
	loc := titleRe.FindStringIndex(content)
	if loc == nil {
		return content
	}
	return content[:loc[0]] + content[loc[1]:]
}
