package middleware

import (
	"net/http"
	"strings"
	"time"

	"hotel-website/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RequireAdmin guards back-office routes with the bearer token issued at
// login. The matched admin is stored in the context under "admin".
func RequireAdmin(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ""
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				token = strings.TrimSpace(parts[1])
			}
		}
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"code": "error.unauthorized", "message": "missing bearer token"},
			})
			return
		}

		var admin models.Admin
		err := db.
			Where("auth_token = ?", token).
			Where("auth_token_expires IS NULL OR auth_token_expires > ?", time.Now().UTC()).
			First(&admin).Error
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"code": "error.unauthorized", "message": "invalid or expired token"},
			})
			return
		}

		c.Set("admin", admin)
		c.Next()
	}
}
