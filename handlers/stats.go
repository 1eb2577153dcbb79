package handlers

import (
	"encoding/json"
	"log"
	"math"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"menuswap-api/config"
	"menuswap-api/models"
	"menuswap-api/search"
	"menuswap-api/store"

	"github.com/gin-gonic/gin"
)

const statsCacheKey = "menuswap:stats"

type siteStats struct {
	Restaurants int64   `json:"restaurants"`
	Dishes      int64   `json:"dishes"`
	Cities      int64   `json:"cities"`
	AvgPriceEur float64 `json:"avgPriceEuros"`
}

// GetStats returns site-wide counts and the average dish price. The payload is
// served from the Redis cache when one is configured.
func GetStats(c *gin.Context) {
	if cached, ok := config.Stats.Get(c.Request.Context(), statsCacheKey); ok {
		c.Data(http.StatusOK, "application/json", []byte(cached))
		return
	}

	var stats siteStats

	restaurantQuery := config.DB.Model(&models.Restaurant{})
	if config.Env == search.EnvProduction {
		restaurantQuery = restaurantQuery.Where("verified = ?", true)
	}
	if err := restaurantQuery.Count(&stats.Restaurants).Error; err != nil {
		log.Println("stats query failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch statistics"})
		return
	}

	dishQuery := config.DB.Model(&models.MenuItem{}).
		Joins("JOIN menus ON menus.id = menu_items.menu_id")
	if config.Env == search.EnvProduction {
		dishQuery = dishQuery.Where("menus.status = ?", models.StatusApproved)
	}
	dishQuery.Count(&stats.Dishes)

	cityQuery := config.DB.Model(&models.Restaurant{}).Distinct("city")
	if config.Env == search.EnvProduction {
		cityQuery = cityQuery.Where("verified = ?", true)
	}
	cityQuery.Count(&stats.Cities)

	var avgCents float64
	avgQuery := config.DB.Model(&models.MenuItem{}).
		Joins("JOIN menus ON menus.id = menu_items.menu_id").
		Where("menu_items.price_cents IS NOT NULL")
	if config.Env == search.EnvProduction {
		avgQuery = avgQuery.Where("menus.status = ?", models.StatusApproved)
	}
	avgQuery.Select("COALESCE(AVG(menu_items.price_cents), 0)").Scan(&avgCents)
	stats.AvgPriceEur = math.Round(avgCents) / 100

	payload, err := json.Marshal(stats)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch statistics"})
		return
	}
	config.Stats.Set(c.Request.Context(), statsCacheKey, string(payload))
	c.Data(http.StatusOK, "application/json", payload)
}

// GetPopularDishes returns priced dishes grouped by name, keeping the cheapest
// variant of each, ordered by price
func GetPopularDishes(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	spec := search.FilterSpec{
		City:         c.Query("city"),
		ApprovedOnly: config.Env == search.EnvProduction,
		Limit:        300,
	}
	dishes, err := store.New(config.DB).FindDishes(spec)
	if err != nil {
		log.Println("popular dishes query failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch popular dishes"})
		return
	}

	rules := config.SearchRules
	cheapest := map[string]search.Dish{}
	for _, d := range dishes {
		if d.PriceCents == nil {
			continue
		}
		d.Name, d.Description = rules.SanitizeFields(d.Name, d.Description)
		if !rules.IsAllowed(d, "") {
			continue
		}
		key := strings.ToLower(d.Name)
		if existing, ok := cheapest[key]; !ok || *d.PriceCents < *existing.PriceCents {
			cheapest[key] = d
		}
	}

	result := make([]search.Dish, 0, len(cheapest))
	for _, d := range cheapest {
		result = append(result, d)
	}
	sort.Slice(result, func(i, j int) bool {
		if *result[i].PriceCents != *result[j].PriceCents {
			return *result[i].PriceCents < *result[j].PriceCents
		}
		return result[i].Name < result[j].Name
	})
	if len(result) > limit {
		result = result[:limit]
	}

	c.JSON(http.StatusOK, result)
}
