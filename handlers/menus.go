package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"regexp"

	"menuswap-api/config"
	"menuswap-api/middleware"
	"menuswap-api/models"
	"menuswap-api/statemachine"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SubmitMenuRequest struct {
	RestaurantID uint                  `json:"restaurant_id" binding:"required"`
	SourceType   models.MenuSourceType `json:"source_type" binding:"required"`
	SourceURL    *string               `json:"source_url"`
}

// SubmitMenu lets an owner submit a menu for moderation. Parsing of the
// uploaded source into dishes happens out of band; the menu starts PENDING.
func SubmitMenu(c *gin.Context) {
	var req SubmitMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	validSources := map[models.MenuSourceType]bool{
		models.SourcePDF:   true,
		models.SourceImage: true,
		models.SourceURL:   true,
	}
	if !validSources[req.SourceType] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid source_type. Must be: pdf, image, or url"})
		return
	}
	if req.SourceType == models.SourceURL && req.SourceURL == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "source_url is required for url submissions"})
		return
	}

	var restaurant models.Restaurant
	if err := config.DB.First(&restaurant, req.RestaurantID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}

	menu := models.Menu{
		RestaurantID: restaurant.ID,
		Status:       models.StatusPending,
		SourceType:   req.SourceType,
		SourceURL:    req.SourceURL,
		SubmittedBy:  middleware.GetUserID(c),
	}
	if err := config.DB.Create(&menu).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit menu"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Menu submitted for review", "menu": menu})
}

// ResubmitMenu puts a rejected menu back into the moderation queue
func ResubmitMenu(c *gin.Context) {
	var menu models.Menu
	if err := config.DB.First(&menu, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu not found"})
		return
	}
	if menu.SubmittedBy != middleware.GetUserID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You don't own this menu submission"})
		return
	}
	if err := statemachine.CanTransition(menu.Status, models.StatusPending, "owner"); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	prevStatus := menu.Status
	config.DB.Model(&menu).Update("status", models.StatusPending)
	config.DB.Create(&models.MenuStatusHistory{
		MenuID:     menu.ID,
		FromStatus: prevStatus,
		ToStatus:   models.StatusPending,
		ChangedBy:  middleware.GetUserID(c),
		Note:       "Resubmitted by owner",
	})

	c.JSON(http.StatusOK, gin.H{"message": "Menu resubmitted for review", "menu": menu})
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// UploadFile stores a submitted menu file (PDF or image) on local disk and
// returns the URL it will be served from
func UploadFile(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}

	if err := os.MkdirAll(config.UploadsDir, 0755); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create upload directory"})
		return
	}

	safeName := unsafeFilenameChars.ReplaceAllString(filepath.Base(file.Filename), "_")
	filename := uuid.NewString() + "-" + safeName
	if err := c.SaveUploadedFile(file, filepath.Join(config.UploadsDir, filename)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save file"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": "/uploads/" + filename})
}
