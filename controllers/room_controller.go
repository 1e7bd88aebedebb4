package controllers

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"hotel-website/config"
	"hotel-website/models"

	"github.com/gin-gonic/gin"
)

// GetRooms (GET /api/rooms) returns the publicly bookable rooms.
func GetRooms(c *gin.Context) {
	var rooms []models.Room
	if err := config.DB.Where("active = ?", true).Order("name ASC").Find(&rooms).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// GetAllRooms (GET /api/admin/rooms) returns every room, inactive included.
func GetAllRooms(c *gin.Context) {
	var rooms []models.Room
	if err := config.DB.Order("name ASC").Find(&rooms).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// CreateRoom (POST /api/admin/rooms)
func CreateRoom(c *gin.Context) {
	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request payload",
			"details": err.Error(),
		})
		return
	}

	room.Name = strings.TrimSpace(room.Name)
	if room.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Room name is required.",
		})
		return
	}
	if room.UnitsAvailable < 1 {
		room.UnitsAvailable = 1
	}

	if result := config.DB.Create(&room); result.Error != nil {
		if strings.Contains(result.Error.Error(), "Duplicate entry") {
			c.JSON(http.StatusConflict, gin.H{
				"status":  "error",
				"message": fmt.Sprintf("Room '%s' already exists.", room.Name),
			})
			return
		}
		log.Printf("failed to create room: %v", result.Error)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Database error",
		})
		return
	}

	c.JSON(http.StatusCreated, room)
}

// UpdateRoom (PATCH/PUT /api/admin/rooms/:id)
func UpdateRoom(c *gin.Context) {
	id := c.Param("id")
	var updateData map[string]interface{}

	if err := c.ShouldBindJSON(&updateData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request payload",
			"details": err.Error(),
		})
		return
	}

	delete(updateData, "id")
	delete(updateData, "created_at")
	delete(updateData, "updated_at")
	delete(updateData, "deleted_at")

	if err := config.DB.Model(&models.Room{}).Where("id = ?", id).Updates(updateData).Error; err != nil {
		log.Printf("failed to update room %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Update failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Room updated"})
}

// DeleteRoom (DELETE /api/admin/rooms/:id) soft-deletes a room; existing
// bookings keep their room_id.
func DeleteRoom(c *gin.Context) {
	id := c.Param("id")
	res := config.DB.Delete(&models.Room{}, "id = ?", id)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": res.Error.Error()})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Room not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}
