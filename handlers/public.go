package handlers

import (
	"net/http"
	"strings"

	"menuswap-api/config"
	"menuswap-api/models"
	"menuswap-api/search"
	"menuswap-api/seo"
	"menuswap-api/statemachine"

	"github.com/gin-gonic/gin"
)

// ListRestaurants returns restaurants for browsing (public)
func ListRestaurants(c *gin.Context) {
	var restaurants []models.Restaurant
	query := config.DB.Model(&models.Restaurant{})

	if config.Env == search.EnvProduction {
		query = query.Where("verified = ?", true)
	}
	if city := c.Query("city"); city != "" {
		query = query.Where("LOWER(city) LIKE ?", "%"+strings.ToLower(city)+"%")
	}

	query.Order("name asc").Find(&restaurants)
	c.JSON(http.StatusOK, gin.H{
		"count":       len(restaurants),
		"restaurants": restaurants,
	})
}

// findRestaurantByPath resolves a /:city/:slug pair. Slugs are unique on their
// own; the city segment is verified afterwards by folding both sides through
// Slugify, since a city stored with accents or punctuation ("'s-Hertogenbosch")
// never equals its own URL form in SQL.
func findRestaurantByPath(c *gin.Context) (models.Restaurant, bool) {
	var restaurant models.Restaurant
	if err := config.DB.Where("slug = ?", c.Param("slug")).First(&restaurant).Error; err != nil {
		return restaurant, false
	}
	if seo.Slugify(restaurant.City) != seo.Slugify(c.Param("city")) {
		return restaurant, false
	}
	return restaurant, true
}

// GetRestaurant returns a single restaurant addressed by city + slug, with
// the SEO strings its page renders
func GetRestaurant(c *gin.Context) {
	restaurant, ok := findRestaurantByPath(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"restaurant":      restaurant,
		"seo_title":       seo.Title(restaurant.Name, restaurant.City, ""),
		"seo_description": seo.Description(restaurant.Name, restaurant.City, ""),
	})
}

// GetRestaurantMenu returns the restaurant's menu items, sanitized and with
// noise records filtered out. Outside production, items of unapproved menus
// are visible for testing.
func GetRestaurantMenu(c *gin.Context) {
	restaurant, ok := findRestaurantByPath(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}

	query := config.DB.Model(&models.MenuItem{}).
		Joins("JOIN menus ON menus.id = menu_items.menu_id").
		Where("menus.restaurant_id = ?", restaurant.ID)
	if config.Env == search.EnvProduction {
		query = query.Where("menus.status = ?", models.StatusApproved)
	}
	if section := c.Query("section"); section != "" {
		query = query.Where("menu_items.section = ?", section)
	}

	var items []models.MenuItem
	query.Order("menu_items.section asc, menu_items.name asc").Find(&items)

	rules := config.SearchRules
	cleaned := make([]models.MenuItem, 0, len(items))
	for _, item := range items {
		item.Name, item.Description = rules.SanitizeFields(item.Name, item.Description)
		candidate := search.Dish{Name: item.Name, Description: item.Description, Section: item.Section, Tags: item.Tags}
		if rules.IsAllowed(candidate, "") {
			cleaned = append(cleaned, item)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"restaurant": restaurant.Name,
		"count":      len(cleaned),
		"menu":       cleaned,
	})
}

// GetDish returns a dish detail page payload addressed by city + slug. Dish
// slugs are only unique per menu, so every slug match is fetched and the city
// segment is resolved by slug folding, same as the restaurant pages.
func GetDish(c *gin.Context) {
	query := config.DB.Model(&models.MenuItem{}).
		Joins("JOIN menus ON menus.id = menu_items.menu_id").
		Where("menu_items.slug = ?", c.Param("slug")).
		Select("menu_items.*")
	if config.Env == search.EnvProduction {
		query = query.Where("menus.status = ?", models.StatusApproved)
	}
	var candidates []models.MenuItem
	query.Order("menu_items.id asc").Find(&candidates)

	citySlug := seo.Slugify(c.Param("city"))
	for _, item := range candidates {
		var menu models.Menu
		if err := config.DB.Preload("Restaurant").First(&menu, item.MenuID).Error; err != nil {
			continue
		}
		restaurant := menu.Restaurant
		if seo.Slugify(restaurant.City) != citySlug {
			continue
		}

		item.Name, item.Description = config.SearchRules.SanitizeFields(item.Name, item.Description)

		c.JSON(http.StatusOK, gin.H{
			"dish": item,
			"restaurant": gin.H{
				"id":      restaurant.ID,
				"name":    restaurant.Name,
				"slug":    restaurant.Slug,
				"city":    restaurant.City,
				"address": restaurant.Address,
			},
			"seo_title":       seo.Title(restaurant.Name, restaurant.City, item.Name),
			"seo_description": seo.Description(restaurant.Name, restaurant.City, item.Name),
		})
		return
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "Dish not found"})
}

// GetCities lists the cities restaurants are in, with counts
func GetCities(c *gin.Context) {
	type cityCount struct {
		City  string `json:"city"`
		Count int    `json:"count"`
	}
	var cities []cityCount
	query := config.DB.Model(&models.Restaurant{}).
		Select("city, COUNT(*) AS count").
		Group("city").
		Order("count DESC, city ASC")
	if config.Env == search.EnvProduction {
		query = query.Where("verified = ?", true)
	}
	query.Scan(&cities)
	c.JSON(http.StatusOK, gin.H{"count": len(cities), "cities": cities})
}

// GetStateMachineInfo returns the menu moderation lifecycle for informational purposes
func GetStateMachineInfo(c *gin.Context) {
	var info []gin.H
	for _, t := range statemachine.GetAllTransitions() {
		info = append(info, gin.H{"from": t.From, "to": t.To, "actor": t.Actor})
	}
	c.JSON(http.StatusOK, gin.H{
		"state_machine":   info,
		"terminal_states": []string{},
		"description":     "Menu Moderation Lifecycle State Machine",
	})
}
