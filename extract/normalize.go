package extract

import (
	"strings"
	"unicode"
)

// NormalizeWhitespace collapses every run of Unicode whitespace, newlines
// included, into a single ASCII space and trims both ends. Idempotent.
func NormalizeWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	pending := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			// leading whitespace is dropped, not collapsed
			pending = b.Len() > 0
			continue
		}
		if pending {
			b.WriteByte(' ')
			pending = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
