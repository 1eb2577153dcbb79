package search

import "math"

// Environment gates moderation filtering. It is passed in explicitly so the
// engine stays a pure function of its inputs; nothing here reads process
// state.
type Environment string

const (
	EnvProduction  Environment = "production"
	EnvDevelopment Environment = "development"
)

const (
	maxDishLimit           = 100
	defaultDishLimit       = 100
	maxRestaurantLimit     = 100
	defaultRestaurantLimit = 50

	minFetch     = 100
	maxFetch     = 300
	relaxedFetch = 300
)

// DishQuery is a dish search request. MaxPrice is in whole currency units
// (euros) and is converted to minor units before filtering.
type DishQuery struct {
	Query    string   `json:"query"`
	City     string   `json:"city"`
	MaxPrice *float64 `json:"maxPrice"`
	Section  string   `json:"section"`
	Tags     []string `json:"tags"`
	SortBy   SortMode `json:"sortBy"`
	Limit    int      `json:"limit"`
}

// RestaurantQuery is a venue search request.
type RestaurantQuery struct {
	Query string `json:"query"`
	City  string `json:"city"`
	Limit int    `json:"limit"`
}

// DishResult is the client-visible projection of a ranked dish.
type DishResult struct {
	ID          uint             `json:"id"`
	Name        string           `json:"name"`
	Slug        string           `json:"slug"`
	Description *string          `json:"description"`
	PriceCents  *int             `json:"price_cents"`
	Section     string           `json:"section"`
	Tags        []string         `json:"tags"`
	Restaurant  RestaurantResult `json:"restaurant"`
}

// RestaurantResult is the client-visible projection of a venue.
type RestaurantResult struct {
	ID         uint    `json:"id"`
	Name       string  `json:"name"`
	Slug       string  `json:"slug"`
	City       string  `json:"city"`
	Address    *string `json:"address"`
	WebsiteURL *string `json:"website_url,omitempty"`
	Verified   *bool   `json:"verified,omitempty"`
}

// Engine runs the dish/restaurant relevance pipeline: retrieve (strict, then
// relaxed) → sanitize → filter → dedupe → score → sort → limit. It holds no
// per-request state; every search is a pure function of the request and the
// rows the store returns.
type Engine struct {
	store Store
	rules *Rules
	env   Environment
}

func NewEngine(store Store, rules *Rules, env Environment) *Engine {
	if rules == nil {
		rules = DefaultRules()
	}
	return &Engine{store: store, rules: rules, env: env}
}

// Rules exposes the deny-lists the engine runs with.
func (e *Engine) Rules() *Rules { return e.rules }

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// SearchDishes runs the full dish pipeline and returns an ordered result page.
func (e *Engine) SearchDishes(q DishQuery) ([]DishResult, error) {
	tokens := Tokenize(q.Query)
	normQuery := Normalize(q.Query)

	limit := q.Limit
	if limit <= 0 {
		limit = defaultDishLimit
	}
	if limit > maxDishLimit {
		limit = maxDishLimit
	}

	spec := FilterSpec{
		Tokens:       tokens,
		Mode:         MatchAll,
		City:         q.City,
		Section:      q.Section,
		Tags:         q.Tags,
		ApprovedOnly: e.env == EnvProduction,
		// Fetch three pages worth of candidates: sanitization, filtering and
		// dedupe thin the set before ranking, so overfetching keeps short
		// result pages full.
		Limit: clamp(limit*3, minFetch, maxFetch),
	}
	if q.MaxPrice != nil {
		cents := int(math.Round(*q.MaxPrice * 100))
		spec.MaxPriceCents = &cents
	}

	rows, err := e.store.FindDishes(spec)
	if err != nil {
		return nil, err
	}

	// OCR-derived menus rarely contain exact multi-word phrases; when the
	// strict AND fetch comes up empty, relax to OR across tokens. The price,
	// section, tag and city filters stay in force.
	if len(rows) == 0 && len(tokens) > 0 {
		spec.Mode = MatchAny
		spec.Limit = relaxedFetch
		rows, err = e.store.FindDishes(spec)
		if err != nil {
			return nil, err
		}
	}

	kept := make([]Dish, 0, len(rows))
	for _, d := range rows {
		d.Name, d.Description = e.rules.SanitizeFields(d.Name, d.Description)
		if e.rules.IsAllowed(d, q.Query) {
			kept = append(kept, d)
		}
	}
	kept = Dedupe(kept)

	scored := make([]ScoredDish, len(kept))
	for i, d := range kept {
		scored[i] = ScoredDish{Dish: d, Score: ScoreDish(d, normQuery, tokens)}
	}
	SortDishes(scored, q.SortBy)
	if len(scored) > limit {
		scored = scored[:limit]
	}

	results := make([]DishResult, len(scored))
	for i, s := range scored {
		results[i] = DishResult{
			ID:          s.ID,
			Name:        s.Name,
			Slug:        s.Slug,
			Description: s.Description,
			PriceCents:  s.PriceCents,
			Section:     s.Section,
			Tags:        s.Tags,
			Restaurant: RestaurantResult{
				ID:      s.Restaurant.ID,
				Name:    s.Restaurant.Name,
				Slug:    s.Restaurant.Slug,
				City:    s.Restaurant.City,
				Address: s.Restaurant.Address,
			},
		}
	}
	return results, nil
}

// SearchRestaurants runs the simpler venue pipeline: retrieval with the same
// strict/relaxed fallback, scoring and a deterministic sort.
func (e *Engine) SearchRestaurants(q RestaurantQuery) ([]RestaurantResult, error) {
	tokens := Tokenize(q.Query)
	normQuery := Normalize(q.Query)

	limit := q.Limit
	if limit <= 0 {
		limit = defaultRestaurantLimit
	}
	if limit > maxRestaurantLimit {
		limit = maxRestaurantLimit
	}

	spec := RestaurantFilterSpec{
		Tokens:       tokens,
		Mode:         MatchAll,
		City:         q.City,
		VerifiedOnly: e.env == EnvProduction,
		Limit:        clamp(limit*3, minFetch, maxFetch),
	}

	rows, err := e.store.FindRestaurants(spec)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 && len(tokens) > 0 {
		spec.Mode = MatchAny
		spec.Limit = relaxedFetch
		rows, err = e.store.FindRestaurants(spec)
		if err != nil {
			return nil, err
		}
	}

	scored := make([]ScoredRestaurant, len(rows))
	for i, r := range rows {
		scored[i] = ScoredRestaurant{RestaurantRef: r, Score: ScoreRestaurant(r, normQuery, tokens)}
	}
	SortRestaurants(scored)
	if len(scored) > limit {
		scored = scored[:limit]
	}

	results := make([]RestaurantResult, len(scored))
	for i, s := range scored {
		verified := s.Verified
		results[i] = RestaurantResult{
			ID:         s.ID,
			Name:       s.Name,
			Slug:       s.Slug,
			City:       s.City,
			Address:    s.Address,
			WebsiteURL: s.WebsiteURL,
			Verified:   &verified,
		}
	}
	return results, nil
}
