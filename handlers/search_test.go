package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"menuswap-api/config"
	"menuswap-api/models"
	"menuswap-api/routes"
	"menuswap-api/search"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupRouter boots the API against a throwaway database seeded with two
// restaurants, one approved and one pending menu.
func setupRouter(t *testing.T, env search.Environment) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Restaurant{},
		&models.Menu{},
		&models.MenuItem{},
		&models.MenuStatusHistory{},
	))

	config.DB = db
	config.Env = env
	config.SearchRules = search.DefaultRules()
	config.JWTSecret = []byte("test-secret")
	config.UploadsDir = t.TempDir()

	napoli := models.Restaurant{Slug: "napoli-amsterdam", Name: "Napoli", City: "Amsterdam", Verified: true}
	roma := models.Restaurant{Slug: "roma-rotterdam", Name: "Roma", City: "Rotterdam"}
	require.NoError(t, db.Create(&napoli).Error)
	require.NoError(t, db.Create(&roma).Error)

	approved := models.Menu{RestaurantID: napoli.ID, Status: models.StatusApproved, SourceType: models.SourcePDF}
	pending := models.Menu{RestaurantID: roma.ID, Status: models.StatusPending, SourceType: models.SourceImage}
	require.NoError(t, db.Create(&approved).Error)
	require.NoError(t, db.Create(&pending).Error)

	cheap := 950
	dear := 1050
	items := []models.MenuItem{
		{MenuID: approved.ID, Slug: "pizza-margherita", Name: "Pizza Margherita", Section: "Pizza's", PriceCents: &cheap},
		{MenuID: pending.ID, Slug: "pizza-margherita", Name: "Pizza Margherita €10,50", Section: "Pizza's", PriceCents: &dear},
	}
	for i := range items {
		require.NoError(t, db.Create(&items[i]).Error)
	}

	r := gin.New()
	routes.SetupRoutes(r)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSearchDishesEndpoint(t *testing.T) {
	r := setupRouter(t, search.EnvDevelopment)

	w := postJSON(t, r, "/api/search/dishes", gin.H{
		"query":  "pizza margherita",
		"sortBy": "price_asc",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var results []search.DishResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &results))
	require.Len(t, results, 2, "development serves pending menus too")
	assert.Equal(t, "Amsterdam", results[0].Restaurant.City)
	assert.Equal(t, "Rotterdam", results[1].Restaurant.City)
	assert.Equal(t, "Pizza Margherita", results[1].Name, "price trail stripped from the OCR name")
}

func TestSearchDishesEndpointProductionGate(t *testing.T) {
	r := setupRouter(t, search.EnvProduction)

	w := postJSON(t, r, "/api/search/dishes", gin.H{"query": "pizza margherita"})
	require.Equal(t, http.StatusOK, w.Code)

	var results []search.DishResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &results))
	require.Len(t, results, 1)
	assert.Equal(t, "Amsterdam", results[0].Restaurant.City)
}

func TestSearchDishesEndpointValidation(t *testing.T) {
	r := setupRouter(t, search.EnvDevelopment)

	w := postJSON(t, r, "/api/search/dishes", gin.H{"query": "pizza", "sortBy": "cheapest"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(t, r, "/api/search/dishes", gin.H{"query": "pizza", "maxPrice": -1})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSearchRestaurantsEndpoint(t *testing.T) {
	r := setupRouter(t, search.EnvDevelopment)

	w := postJSON(t, r, "/api/search/restaurants", gin.H{"query": "roma"})
	require.Equal(t, http.StatusOK, w.Code)

	var results []search.RestaurantResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &results))
	require.Len(t, results, 1)
	assert.Equal(t, "Roma", results[0].Name)
}
