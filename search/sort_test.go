package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func names(items []ScoredDish) []string {
	out := make([]string, len(items))
	for i, d := range items {
		out[i] = d.Name
	}
	return out
}

func TestSortDishesPriceAscStable(t *testing.T) {
	// Equal prices and equal scores keep retrieval order; the unpriced item
	// sorts last.
	items := []ScoredDish{
		{Dish: Dish{ID: 1, Name: "B", PriceCents: intptr(500)}, Score: 10},
		{Dish: Dish{ID: 2, Name: "A", PriceCents: intptr(500)}, Score: 10},
		{Dish: Dish{ID: 3, Name: "C"}, Score: 10},
	}
	SortDishes(items, SortPriceAsc)
	assert.Equal(t, []string{"B", "A", "C"}, names(items))
}

func TestSortDishesPriceAscScoreBreaksTies(t *testing.T) {
	items := []ScoredDish{
		{Dish: Dish{ID: 1, Name: "B", PriceCents: intptr(500)}, Score: 10},
		{Dish: Dish{ID: 2, Name: "A", PriceCents: intptr(500)}, Score: 20},
	}
	SortDishes(items, SortPriceAsc)
	assert.Equal(t, []string{"A", "B"}, names(items))
}

func TestSortDishesPriceDescUnpricedStillLast(t *testing.T) {
	// price_desc substitutes -1 for a missing price so unpriced items sort
	// last in BOTH directions. Deliberate policy; easy to invert by accident.
	items := []ScoredDish{
		{Dish: Dish{ID: 1, Name: "cheap", PriceCents: intptr(500)}, Score: 10},
		{Dish: Dish{ID: 2, Name: "unpriced"}, Score: 99},
		{Dish: Dish{ID: 3, Name: "dear", PriceCents: intptr(1500)}, Score: 10},
	}
	SortDishes(items, SortPriceDesc)
	assert.Equal(t, []string{"dear", "cheap", "unpriced"}, names(items))
}

func TestSortDishesRelevanceChain(t *testing.T) {
	items := []ScoredDish{
		{Dish: Dish{ID: 4, Name: "D"}, Score: 50},
		{Dish: Dish{ID: 1, Name: "A", PriceCents: intptr(900)}, Score: 50},
		{Dish: Dish{ID: 2, Name: "B", PriceCents: intptr(700)}, Score: 50},
		{Dish: Dish{ID: 3, Name: "C", PriceCents: intptr(700)}, Score: 80},
	}
	SortDishes(items, SortRelevance)
	// score desc, then price asc with missing prices last, then name
	assert.Equal(t, []string{"C", "B", "A", "D"}, names(items))
}

func TestSortDishesNameLocaleAware(t *testing.T) {
	items := []ScoredDish{
		{Dish: Dish{ID: 1, Name: "Örloffgebraad"}, Score: 1},
		{Dish: Dish{ID: 2, Name: "Zuurkool"}, Score: 1},
		{Dish: Dish{ID: 3, Name: "appeltaart"}, Score: 1},
		{Dish: Dish{ID: 4, Name: "Biefstuk"}, Score: 1},
	}
	SortDishes(items, SortName)
	// collation is case-insensitive and treats Ö as a variant of O
	assert.Equal(t, []string{"appeltaart", "Biefstuk", "Örloffgebraad", "Zuurkool"}, names(items))
}

func TestSortRestaurantsDeterministic(t *testing.T) {
	items := []ScoredRestaurant{
		{RestaurantRef: RestaurantRef{ID: 2, Name: "Roma"}, Score: 40},
		{RestaurantRef: RestaurantRef{ID: 1, Name: "Napoli"}, Score: 40},
		{RestaurantRef: RestaurantRef{ID: 3, Name: "Venezia"}, Score: 90},
	}
	SortRestaurants(items)
	assert.Equal(t, uint(3), items[0].ID)
	assert.Equal(t, uint(1), items[1].ID, "equal scores fall back to name order")
	assert.Equal(t, uint(2), items[2].ID)
}
