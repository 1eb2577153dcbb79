package search

import (
	"math"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortMode selects the ordering of a result page.
type SortMode string

const (
	SortRelevance SortMode = "relevance"
	SortPriceAsc  SortMode = "price_asc"
	SortPriceDesc SortMode = "price_desc"
	SortName      SortMode = "name"
)

// ScoredDish pairs a candidate with its relevance score.
type ScoredDish struct {
	Dish
	Score int
}

// ScoredRestaurant pairs a venue candidate with its relevance score.
type ScoredRestaurant struct {
	RestaurantRef
	Score int
}

// Unpriced items sort last in BOTH price directions: price_asc substitutes
// +Inf and price_desc substitutes -1. This is a deliberate policy (an item
// without a price is never an interesting extreme), not a bug.
func priceOrMax(d ScoredDish) int {
	if d.PriceCents == nil {
		return math.MaxInt
	}
	return *d.PriceCents
}

func priceOrNeg(d ScoredDish) int {
	if d.PriceCents == nil {
		return -1
	}
	return *d.PriceCents
}

// SortDishes orders scored candidates in place. The sort is stable, so in the
// price and name modes items that tie on the full comparator chain keep their
// retrieval order (which the store already makes deterministic).
func SortDishes(items []ScoredDish, mode SortMode) {
	switch mode {
	case SortPriceAsc:
		sort.SliceStable(items, func(i, j int) bool {
			if pi, pj := priceOrMax(items[i]), priceOrMax(items[j]); pi != pj {
				return pi < pj
			}
			return items[i].Score > items[j].Score
		})
	case SortPriceDesc:
		sort.SliceStable(items, func(i, j int) bool {
			if pi, pj := priceOrNeg(items[i]), priceOrNeg(items[j]); pi != pj {
				return pi > pj
			}
			return items[i].Score > items[j].Score
		})
	case SortName:
		c := collate.New(language.Dutch, collate.IgnoreCase)
		sort.SliceStable(items, func(i, j int) bool {
			if cmp := c.CompareString(items[i].Name, items[j].Name); cmp != 0 {
				return cmp < 0
			}
			return items[i].Score > items[j].Score
		})
	default: // relevance
		sort.SliceStable(items, func(i, j int) bool {
			if items[i].Score != items[j].Score {
				return items[i].Score > items[j].Score
			}
			if pi, pj := priceOrMax(items[i]), priceOrMax(items[j]); pi != pj {
				return pi < pj
			}
			if items[i].Name != items[j].Name {
				return items[i].Name < items[j].Name
			}
			return items[i].ID < items[j].ID
		})
	}
}

// SortRestaurants orders venues by score, then name, then id.
func SortRestaurants(items []ScoredRestaurant) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Score != items[j].Score {
			return items[i].Score > items[j].Score
		}
		if items[i].Name != items[j].Name {
			return items[i].Name < items[j].Name
		}
		return items[i].ID < items[j].ID
	})
}
