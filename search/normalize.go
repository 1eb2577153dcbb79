package search

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize lowercases the input, strips diacritics (NFD decomposition plus
// removal of combining marks) and collapses every run of non-alphanumeric
// characters to a single space. It never fails and is idempotent, so it is
// safe to call on already-normalized text.
func Normalize(text string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, text)
	if err != nil {
		folded = text
	}
	folded = strings.ToLower(folded)

	var b strings.Builder
	b.Grow(len(folded))
	pendingSpace := false
	for _, r := range folded {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingSpace && b.Len() > 0 {
				b.WriteByte(' ')
			}
			pendingSpace = false
			b.WriteRune(r)
		} else {
			pendingSpace = true
		}
	}
	return b.String()
}

// Tokenize normalizes the input and splits it into non-empty tokens. Every
// token is a maximal run of alphanumerics in the normalized text.
func Tokenize(text string) []string {
	return strings.Fields(Normalize(text))
}
