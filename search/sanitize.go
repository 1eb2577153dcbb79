package search

import (
	"regexp"
	"strings"
)

// currencyRe matches a euro price blob such as "€9,50" or "€ 12".
// Ingestion frequently concatenates these directly after the item name.
var currencyRe = regexp.MustCompile(`€\s?\d{1,3}(?:[.,]\d{2})?`)

var (
	bulletRe        = regexp.MustCompile(`[•\-–—]+`)
	whitespaceRe    = regexp.MustCompile(`\s+`)
	trailingPunctRe = regexp.MustCompile(`[.,;:]+$`)
)

// CleanField scrubs one noisy OCR/ingested text field: price trails, leftover
// currency blobs, known noise phrases, immediate phrase repetition and bullet
// punctuation. Casing and diacritics are preserved; this is display-safe
// cleanup, not search normalization.
func (r *Rules) CleanField(text string) string {
	t := text

	// A price after position 0 means the field is a "name €9,50 ..." trail;
	// keep only what precedes the first price.
	if loc := currencyRe.FindStringIndex(t); loc != nil && loc[0] > 0 {
		t = t[:loc[0]]
	}
	t = currencyRe.ReplaceAllString(t, " ")

	for _, re := range r.noiseRes {
		t = re.ReplaceAllString(t, " ")
	}

	t = collapseRepeatedPhrase(t)

	t = bulletRe.ReplaceAllString(t, " ")
	t = strings.TrimSpace(whitespaceRe.ReplaceAllString(t, " "))
	t = strings.TrimSpace(trailingPunctRe.ReplaceAllString(t, ""))
	return t
}

// SanitizeFields cleans a dish's name and description together.
func (r *Rules) SanitizeFields(name string, description *string) (string, *string) {
	cleanName := r.CleanField(name)
	if description == nil {
		return cleanName, nil
	}
	cleanDesc := r.CleanField(*description)
	return cleanName, &cleanDesc
}

// collapseRepeatedPhrase folds "Pizza Margherita Pizza Margherita" style
// duplication: a phrase of three or more words immediately followed by itself
// is reduced to a single occurrence. Comparison is case-insensitive.
func collapseRepeatedPhrase(text string) string {
	words := strings.Fields(text)
	for n := len(words) / 2; n >= 3; n-- {
		for i := 0; i+2*n <= len(words); i++ {
			if phraseEqualFold(words[i:i+n], words[i+n:i+2*n]) {
				collapsed := append(append([]string{}, words[:i+n]...), words[i+2*n:]...)
				return collapseRepeatedPhrase(strings.Join(collapsed, " "))
			}
		}
	}
	return strings.Join(words, " ")
}

func phraseEqualFold(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !strings.EqualFold(a[i], b[i]) {
			return false
		}
	}
	return true
}
