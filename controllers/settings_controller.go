package controllers

import (
	"errors"
	"net/http"
	"strings"

	"hotel-website/config"
	"hotel-website/models"
	"hotel-website/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SettingsController struct {
	Settings *services.SettingsService
}

func NewSettingsController(svc *services.SettingsService) *SettingsController {
	return &SettingsController{Settings: svc}
}

// GetSettings (GET /api/admin/settings) lists every key/value pair.
func (ctrl *SettingsController) GetSettings(c *gin.Context) {
	settings, err := ctrl.Settings.All()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

type updateSettingsPayload struct {
	Settings map[string]string `json:"settings" binding:"required"`
}

// UpdateSettings (PUT /api/admin/settings) upserts the supplied pairs.
func (ctrl *SettingsController) UpdateSettings(c *gin.Context) {
	var payload updateSettingsPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "settings map is required"})
		return
	}

	for key, value := range payload.Settings {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		if err := ctrl.Settings.Set(key, strings.TrimSpace(value)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

type hotelSettingsPayload struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Website string `json:"website"`
	Logo    string `json:"logo"`
}

// GetHotelSettings (GET /api/settings/hotel) serves the public site identity.
func GetHotelSettings(c *gin.Context) {
	var hotel models.HotelSetting
	if err := config.DB.First(&hotel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, gin.H{"hotel": models.HotelSetting{}})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"hotel": hotel})
}

// UpdateHotelSettings (PUT /api/admin/settings/hotel)
func UpdateHotelSettings(c *gin.Context) {
	var payload hotelSettingsPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var hotel models.HotelSetting
	err := config.DB.First(&hotel).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	hotel.Name = payload.Name
	hotel.Address = payload.Address
	hotel.Phone = payload.Phone
	hotel.Email = payload.Email
	hotel.Website = payload.Website
	hotel.Logo = payload.Logo

	if err := config.DB.Save(&hotel).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"hotel": hotel})
}

// hotelNotifyEmail resolves the inbox that receives inquiry/contact
// notifications.
func hotelNotifyEmail() string {
	var hotel models.HotelSetting
	if err := config.DB.First(&hotel).Error; err != nil {
		return ""
	}
	return strings.TrimSpace(hotel.Email)
}
