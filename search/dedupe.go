package search

// noPriceSentinel stands in for a missing price in the dedupe key so that an
// unpriced duplicate does not collide with a priced one.
const noPriceSentinel = -1

type dedupeKey struct {
	name         string
	restaurantID uint
	priceCents   int
}

// Dedupe collapses candidates that represent the same physical dish: same
// normalized name, same owning venue and same price. The same item can appear
// more than once when overlapping menu uploads are re-ingested. First seen
// wins; order is preserved.
func Dedupe(dishes []Dish) []Dish {
	seen := make(map[dedupeKey]bool, len(dishes))
	out := dishes[:0:0]
	for _, d := range dishes {
		price := noPriceSentinel
		if d.PriceCents != nil {
			price = *d.PriceCents
		}
		key := dedupeKey{name: Normalize(d.Name), restaurantID: d.Restaurant.ID, priceCents: price}
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, d)
	}
	return out
}
