package controllers

import (
	"net/http"
	"strings"
	"time"

	"hotel-website/config"
	"hotel-website/models"
	"hotel-website/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type loginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

const adminTokenTTL = 24 * time.Hour

// Login (POST /api/auth/login) verifies credentials and issues a bearer
// token stored on the admin row.
func Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	username := strings.TrimSpace(payload.Username)
	if username == "" || payload.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password required"})
		return
	}

	var admin models.Admin
	if err := config.DB.Where("username = ?", username).First(&admin).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(payload.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, err := utils.GenerateSecureToken(32)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}
	expires := time.Now().UTC().Add(adminTokenTTL)

	if err := config.DB.Model(&admin).Updates(map[string]interface{}{
		"auth_token":         token,
		"auth_token_expires": expires,
	}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":      token,
		"expires_at": expires,
		"admin":      gin.H{"id": admin.ID, "full_name": admin.FullName, "username": admin.Username},
	})
}

// Logout (POST /api/admin/logout) invalidates the current token.
func Logout(c *gin.Context) {
	v, ok := c.Get("admin")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not logged in"})
		return
	}
	admin := v.(models.Admin)

	if err := config.DB.Model(&admin).Updates(map[string]interface{}{
		"auth_token":         nil,
		"auth_token_expires": nil,
	}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clear token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}
