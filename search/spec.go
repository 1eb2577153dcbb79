package search

// MatchMode selects how retrieval combines query tokens.
type MatchMode string

const (
	// MatchAll requires every token to hit at least one field (strict).
	MatchAll MatchMode = "all"
	// MatchAny requires any token to hit (relaxed fallback).
	MatchAny MatchMode = "any"
)

// FilterSpec is a store-agnostic description of a dish candidate fetch.
// Adapters translate it to their native query language; the engine never
// builds store-specific queries itself.
type FilterSpec struct {
	Tokens        []string
	Mode          MatchMode
	City          string // case-insensitive substring on the owning venue's city
	MaxPriceCents *int
	Section       string // exact match
	Tags          []string
	ApprovedOnly  bool // restrict to items of APPROVED menus
	Limit         int
}

// RestaurantFilterSpec describes a venue candidate fetch over name, city and
// street address.
type RestaurantFilterSpec struct {
	Tokens       []string
	Mode         MatchMode
	City         string
	VerifiedOnly bool
	Limit        int
}

// Store is the persistence boundary of the search engine. Each token must
// match case-insensitively as a substring of at least one of the searchable
// fields; rows come back with denormalized owning-venue fields attached, in a
// deterministic order.
type Store interface {
	FindDishes(spec FilterSpec) ([]Dish, error)
	FindRestaurants(spec RestaurantFilterSpec) ([]RestaurantRef, error)
}

// RestaurantRef carries the denormalized venue fields attached to candidates.
type RestaurantRef struct {
	ID         uint    `json:"id"`
	Name       string  `json:"name"`
	Slug       string  `json:"slug"`
	City       string  `json:"city"`
	Address    *string `json:"address"`
	WebsiteURL *string `json:"website_url,omitempty"`
	Verified   bool    `json:"verified"`
}

// Dish is a menu item candidate as retrieved from the store.
type Dish struct {
	ID          uint          `json:"id"`
	MenuID      uint          `json:"-"`
	Name        string        `json:"name"`
	Slug        string        `json:"slug"`
	Description *string       `json:"description"`
	PriceCents  *int          `json:"price_cents"`
	Section     string        `json:"section"`
	Tags        []string      `json:"tags"`
	Restaurant  RestaurantRef `json:"restaurant"`
}
