package search

import "strings"

// maxNameLength rejects pathological concatenation artifacts that survive
// sanitization.
const maxNameLength = 120

// noiseHits counts remaining noise-phrase matches across name and description.
func (r *Rules) noiseHits(name, description string) int {
	hits := 0
	for _, re := range r.noiseRes {
		hits += len(re.FindAllStringIndex(name, -1))
		hits += len(re.FindAllStringIndex(description, -1))
	}
	return hits
}

// isGenericCategoryName reports whether a dish name is really a menu section
// header mis-ingested as an item ("Pizza's", "Dranken", ...).
func (r *Rules) isGenericCategoryName(name string) bool {
	n := Normalize(name)
	if r.banned[n] {
		return true
	}
	for _, p := range r.BannedPrefixes {
		if n == p || strings.HasPrefix(n, p+" ") {
			return true
		}
	}
	// A short name that is a category word followed only by size or marker
	// fragments ("pizza 30cm", "pasta xl") is a header, not a dish. A real
	// word after the category ("pizza margherita") keeps the item.
	if len(n) <= r.MaxHeaderLength {
		tokens := strings.Fields(n)
		if len(tokens) > 0 {
			for _, p := range r.HeaderPrefixes {
				if tokens[0] == p && allQualifiers(tokens[1:]) {
					return true
				}
			}
		}
	}
	return false
}

// allQualifiers reports whether every token is a size/marker fragment rather
// than a real word: one or two letters, or anything containing a digit.
func allQualifiers(tokens []string) bool {
	for _, tok := range tokens {
		if len(tok) <= 2 || strings.ContainsAny(tok, "0123456789") {
			continue
		}
		return false
	}
	return true
}

// IsAllowed decides whether a sanitized dish is a legitimate menu item and,
// when a query is given, whether it overlaps the query at all. Pure predicate
// over arbitrary input; it never fails.
func (r *Rules) IsAllowed(d Dish, query string) bool {
	desc := ""
	if d.Description != nil {
		desc = *d.Description
	}

	if len(d.Name) > maxNameLength {
		return false
	}
	if r.noiseHits(d.Name, desc) >= 2 {
		return false
	}
	if r.isGenericCategoryName(d.Name) {
		return false
	}

	if strings.TrimSpace(query) != "" {
		hay := Normalize(strings.Join([]string{d.Name, d.Section, strings.Join(d.Tags, " "), desc}, " "))
		matched := false
		for _, t := range Tokenize(query) {
			if strings.Contains(hay, t) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	return len(Normalize(d.Name)) >= 2
}
