package handlers

import (
	"log"
	"net/http"

	"menuswap-api/config"
	"menuswap-api/search"
	"menuswap-api/store"

	"github.com/gin-gonic/gin"
)

// searchEngine wires the relevance engine to the live database with the
// boot-time rules and environment.
func searchEngine() *search.Engine {
	return search.NewEngine(store.New(config.DB), config.SearchRules, config.Env)
}

// SearchDishes runs the ranked dish search pipeline (retrieve with
// strict/relaxed fallback, sanitize, filter, dedupe, score, sort, limit) and
// returns the ordered result list.
func SearchDishes(c *gin.Context) {
	var req search.DishQuery
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.MaxPrice != nil && *req.MaxPrice < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "maxPrice must not be negative"})
		return
	}
	switch req.SortBy {
	case "", search.SortRelevance, search.SortPriceAsc, search.SortPriceDesc, search.SortName:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "sortBy must be one of: relevance, price_asc, price_desc, name"})
		return
	}

	results, err := searchEngine().SearchDishes(req)
	if err != nil {
		log.Println("dish search failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed"})
		return
	}
	c.JSON(http.StatusOK, results)
}

// SearchRestaurants runs the ranked venue search.
func SearchRestaurants(c *gin.Context) {
	var req search.RestaurantQuery
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	results, err := searchEngine().SearchRestaurants(req)
	if err != nil {
		log.Println("restaurant search failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed"})
		return
	}
	c.JSON(http.StatusOK, results)
}
