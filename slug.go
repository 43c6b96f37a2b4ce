package artoc

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Slugify converts heading text to a URL-safe identifier: diacritics are
// folded to their ASCII base letters ("Čísla" → "cisla"), the text is
// lowercased, runs of anything outside [a-z0-9] collapse to a single
// hyphen, and leading/trailing hyphens are trimmed. Empty input, or input
// with nothing to keep, yields the empty string.
//
// Slugify is deterministic and stateless: it consults no registry of
// previously issued identifiers, so two headings with the same text
// produce the same slug.
func Slugify(text string) string {
	folded := foldDiacritics(text)

	var b strings.Builder
	b.Grow(len(folded))

	pending := false
	for _, r := range strings.ToLower(folded) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pending && b.Len() > 0 {
				b.WriteByte('-')
			}
			pending = false
			b.WriteRune(r)
		default:
			pending = true
		}
	}

	return b.String()
}

// foldDiacritics decomposes to NFD and removes combining marks, reducing
// accented letters to their base form. The transformer chain carries
// per-run state, so it is built per call rather than shared.
func foldDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
