package store

import (
	"encoding/json"
	"strings"

	"menuswap-api/models"
	"menuswap-api/search"

	"gorm.io/gorm"
)

// GormStore translates the search engine's filter specs into SQL. It is the
// only place that knows the table layout; the engine itself never touches the
// ORM.
type GormStore struct {
	db *gorm.DB
}

func New(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func like(s string) string {
	return "%" + strings.ToLower(s) + "%"
}

// dishRow is the denormalized scan target for dish candidates. Tags arrive as
// the raw JSON column text and are decoded afterwards.
type dishRow struct {
	ID                 uint
	MenuID             uint
	Slug               string
	Name               string
	Description        *string
	Section            string
	Tags               string
	PriceCents         *int
	RestaurantID       uint
	RestaurantSlug     string
	RestaurantName     string
	RestaurantCity     string
	RestaurantAddress  *string
	RestaurantVerified bool
}

// Fields a single token can hit, OR-combined. Tag matches are exact element
// matches, approximated as a quoted substring of the serialized JSON array.
const dishTokenClause = `(LOWER(menu_items.name) LIKE ? OR LOWER(menu_items.description) LIKE ? OR LOWER(menu_items.section) LIKE ? OR menu_items.tags LIKE ? OR LOWER(restaurants.name) LIKE ? OR LOWER(restaurants.city) LIKE ?)`

func dishTokenArgs(token string) []interface{} {
	p := like(token)
	return []interface{}{p, p, p, `%"` + strings.ToLower(token) + `"%`, p, p}
}

// FindDishes fetches a bounded candidate set for the spec. Rows are ordered by
// name then id so retrieval order, and therefore stable-sort tie-breaking, is
// deterministic.
func (s *GormStore) FindDishes(spec search.FilterSpec) ([]search.Dish, error) {
	q := s.db.Model(&models.MenuItem{}).
		Joins("JOIN menus ON menus.id = menu_items.menu_id").
		Joins("JOIN restaurants ON restaurants.id = menus.restaurant_id").
		Select(`menu_items.id, menu_items.menu_id, menu_items.slug, menu_items.name,
			menu_items.description, menu_items.section, menu_items.tags, menu_items.price_cents,
			restaurants.id AS restaurant_id, restaurants.slug AS restaurant_slug,
			restaurants.name AS restaurant_name, restaurants.city AS restaurant_city,
			restaurants.address AS restaurant_address, restaurants.verified AS restaurant_verified`)

	if spec.ApprovedOnly {
		q = q.Where("menus.status = ?", models.StatusApproved)
	}
	if spec.City != "" {
		q = q.Where("LOWER(restaurants.city) LIKE ?", like(spec.City))
	}
	if spec.MaxPriceCents != nil {
		q = q.Where("menu_items.price_cents IS NOT NULL AND menu_items.price_cents <= ?", *spec.MaxPriceCents)
	}
	if spec.Section != "" {
		q = q.Where("menu_items.section = ?", spec.Section)
	}
	if len(spec.Tags) > 0 {
		conds := make([]string, len(spec.Tags))
		args := make([]interface{}, len(spec.Tags))
		for i, tag := range spec.Tags {
			conds[i] = "menu_items.tags LIKE ?"
			args[i] = `%"` + tag + `"%`
		}
		q = q.Where("("+strings.Join(conds, " OR ")+")", args...)
	}

	switch spec.Mode {
	case search.MatchAny:
		if len(spec.Tokens) > 0 {
			conds := make([]string, len(spec.Tokens))
			var args []interface{}
			for i, t := range spec.Tokens {
				conds[i] = dishTokenClause
				args = append(args, dishTokenArgs(t)...)
			}
			q = q.Where("("+strings.Join(conds, " OR ")+")", args...)
		}
	default: // strict: AND across tokens
		for _, t := range spec.Tokens {
			q = q.Where(dishTokenClause, dishTokenArgs(t)...)
		}
	}

	var rows []dishRow
	if err := q.Order("menu_items.name ASC, menu_items.id ASC").
		Limit(spec.Limit).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	dishes := make([]search.Dish, len(rows))
	for i, r := range rows {
		var tags []string
		if r.Tags != "" {
			_ = json.Unmarshal([]byte(r.Tags), &tags)
		}
		dishes[i] = search.Dish{
			ID:          r.ID,
			MenuID:      r.MenuID,
			Name:        r.Name,
			Slug:        r.Slug,
			Description: r.Description,
			PriceCents:  r.PriceCents,
			Section:     r.Section,
			Tags:        tags,
			Restaurant: search.RestaurantRef{
				ID:       r.RestaurantID,
				Name:     r.RestaurantName,
				Slug:     r.RestaurantSlug,
				City:     r.RestaurantCity,
				Address:  r.RestaurantAddress,
				Verified: r.RestaurantVerified,
			},
		}
	}
	return dishes, nil
}

const restaurantTokenClause = `(LOWER(name) LIKE ? OR LOWER(city) LIKE ? OR LOWER(address) LIKE ?)`

func restaurantTokenArgs(token string) []interface{} {
	p := like(token)
	return []interface{}{p, p, p}
}

// FindRestaurants fetches venue candidates over name, city and address.
func (s *GormStore) FindRestaurants(spec search.RestaurantFilterSpec) ([]search.RestaurantRef, error) {
	q := s.db.Model(&models.Restaurant{})

	if spec.VerifiedOnly {
		q = q.Where("verified = ?", true)
	}
	if spec.City != "" {
		q = q.Where("LOWER(city) LIKE ?", like(spec.City))
	}

	switch spec.Mode {
	case search.MatchAny:
		if len(spec.Tokens) > 0 {
			conds := make([]string, len(spec.Tokens))
			var args []interface{}
			for i, t := range spec.Tokens {
				conds[i] = restaurantTokenClause
				args = append(args, restaurantTokenArgs(t)...)
			}
			q = q.Where("("+strings.Join(conds, " OR ")+")", args...)
		}
	default:
		for _, t := range spec.Tokens {
			q = q.Where(restaurantTokenClause, restaurantTokenArgs(t)...)
		}
	}

	var restaurants []models.Restaurant
	if err := q.Order("name ASC, id ASC").Limit(spec.Limit).Find(&restaurants).Error; err != nil {
		return nil, err
	}

	refs := make([]search.RestaurantRef, len(restaurants))
	for i, r := range restaurants {
		refs[i] = search.RestaurantRef{
			ID:         r.ID,
			Name:       r.Name,
			Slug:       r.Slug,
			City:       r.City,
			Address:    r.Address,
			WebsiteURL: r.WebsiteURL,
			Verified:   r.Verified,
		}
	}
	return refs, nil
}
