package plan

import (
	"strings"
	"unicode"
)

// Words kept lowercase when title-casing: articles, coordinating conjunctions
// and short prepositions. Closed set, first and last words are exempt.
var lowercaseWords = map[string]struct{}{
	"a": {}, "an": {}, "the": {},
	"and": {}, "but": {}, "or": {}, "nor": {}, "yet": {}, "so": {},
	"as": {}, "at": {}, "by": {}, "for": {}, "in": {}, "of": {}, "on": {}, "to": {}, "with": {},
}

// TitleCase lowercases the whole string and capitalizes every word outside
// the closed lowercase set, with the first and last word capitalized
// unconditionally. This is a display transform for TOC and header text only,
// stored chapter titles are never mutated.
func TitleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		if i == 0 || i == len(words)-1 {
			words[i] = capitalize(w)
			continue
		}
		if _, keep := lowercaseWords[w]; !keep {
			words[i] = capitalize(w)
		}
	}
	return strings.Join(words, " ")
}

func capitalize(w string) string {
	r := []rune(w)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
