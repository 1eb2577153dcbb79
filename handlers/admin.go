package handlers

import (
	"net/http"

	"menuswap-api/config"
	"menuswap-api/middleware"
	"menuswap-api/models"
	"menuswap-api/seo"
	"menuswap-api/statemachine"

	"github.com/gin-gonic/gin"
)

// AdminGetMenus returns the moderation queue, oldest submissions first
func AdminGetMenus(c *gin.Context) {
	var menus []models.Menu
	query := config.DB.Preload("Restaurant")

	status := c.DefaultQuery("status", string(models.StatusPending))
	if status != "all" {
		query = query.Where("status = ?", status)
	}

	query.Order("uploaded_at asc").Find(&menus)

	// Moderation dashboard: aggregate by status
	summary := map[string]int64{}
	for _, s := range []models.MenuStatus{models.StatusPending, models.StatusApproved, models.StatusRejected} {
		var n int64
		config.DB.Model(&models.Menu{}).Where("status = ?", s).Count(&n)
		summary[string(s)] = n
	}

	c.JSON(http.StatusOK, gin.H{
		"status_summary": summary,
		"count":          len(menus),
		"menus":          menus,
	})
}

// AdminUpdateMenuStatus moves a menu through the moderation lifecycle
func AdminUpdateMenuStatus(c *gin.Context) {
	var req struct {
		Status models.MenuStatus `json:"status" binding:"required"`
		Note   string            `json:"note"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var menu models.Menu
	if err := config.DB.First(&menu, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu not found"})
		return
	}

	if err := statemachine.CanTransition(menu.Status, req.Status, "admin"); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	prevStatus := menu.Status
	config.DB.Model(&menu).Update("status", req.Status)
	config.DB.Create(&models.MenuStatusHistory{
		MenuID:     menu.ID,
		FromStatus: prevStatus,
		ToStatus:   req.Status,
		ChangedBy:  middleware.GetUserID(c),
		Note:       req.Note,
	})

	c.JSON(http.StatusOK, gin.H{
		"message":         "Menu status updated",
		"menu_id":         menu.ID,
		"previous_status": prevStatus,
		"new_status":      req.Status,
	})
}

type ImportDishRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description *string  `json:"description"`
	PriceCents  *int     `json:"price_cents"`
	Section     string   `json:"section"`
	Tags        []string `json:"tags"`
}

// AdminImportMenuItems bulk-creates the dishes parsed out of a menu upload.
// Duplicates within the menu (same slug) are skipped.
func AdminImportMenuItems(c *gin.Context) {
	var req struct {
		Items []ImportDishRequest `json:"items" binding:"required,min=1,dive"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var menu models.Menu
	if err := config.DB.First(&menu, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu not found"})
		return
	}

	for _, item := range req.Items {
		if item.PriceCents != nil && *item.PriceCents < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "price_cents must not be negative: " + item.Name})
			return
		}
	}

	created := 0
	skipped := 0
	for _, item := range req.Items {
		slug := seo.Slugify(item.Name)
		var existing models.MenuItem
		if err := config.DB.Where("menu_id = ? AND slug = ?", menu.ID, slug).First(&existing).Error; err == nil {
			skipped++
			continue
		}
		dish := models.MenuItem{
			MenuID:      menu.ID,
			Slug:        slug,
			Name:        item.Name,
			Description: item.Description,
			PriceCents:  item.PriceCents,
			Section:     item.Section,
			Tags:        item.Tags,
		}
		if err := config.DB.Create(&dish).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to import menu items"})
			return
		}
		created++
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Menu items imported",
		"menu_id": menu.ID,
		"created": created,
		"skipped": skipped,
	})
}

type CreateRestaurantRequest struct {
	Name       string   `json:"name" binding:"required"`
	City       string   `json:"city" binding:"required"`
	Address    *string  `json:"address"`
	WebsiteURL *string  `json:"website_url"`
	Lat        *float64 `json:"lat"`
	Lon        *float64 `json:"lon"`
}

// AdminCreateRestaurant registers a venue (normally seeded by the scraper)
func AdminCreateRestaurant(c *gin.Context) {
	var req CreateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	restaurant := models.Restaurant{
		Slug:       seo.Slugify(req.Name + " " + req.City),
		Name:       req.Name,
		City:       req.City,
		Address:    req.Address,
		WebsiteURL: req.WebsiteURL,
		Lat:        req.Lat,
		Lon:        req.Lon,
	}
	if err := config.DB.Create(&restaurant).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Failed to create restaurant (duplicate slug?)"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Restaurant created", "restaurant": restaurant})
}

// AdminVerifyRestaurant toggles a venue's verified flag
func AdminVerifyRestaurant(c *gin.Context) {
	var req struct {
		Verified *bool `json:"verified" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var restaurant models.Restaurant
	if err := config.DB.First(&restaurant, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}
	config.DB.Model(&restaurant).Update("verified", *req.Verified)
	c.JSON(http.StatusOK, gin.H{"message": "Restaurant updated", "restaurant": restaurant})
}
