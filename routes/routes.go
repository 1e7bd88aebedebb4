package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"hotel-website/controllers"
	"hotel-website/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires the public site API and the token-guarded back-office.
func SetupRouter(
	db *gorm.DB,
	bc *controllers.BookingController,
	rvc *controllers.ReviewController,
	iqc *controllers.InquiryController,
	mc *controllers.MenuController,
	cc *controllers.ContactController,
	sc *controllers.SettingsController,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestLogger(), gin.Recovery())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		// Public site surface
		rooms := api.Group("/rooms")
		{
			rooms.GET("", controllers.GetRooms)
			rooms.GET("/:id/quote", bc.QuoteRoom)
		}

		bookings := api.Group("/bookings")
		{
			bookings.POST("", bc.CreateBooking)
			bookings.POST("/cancel", bc.CancelBooking)
			bookings.GET("/:reference", bc.GetBooking)
		}

		reviews := api.Group("/reviews")
		{
			reviews.GET("", rvc.GetReviews)
			reviews.POST("", rvc.SubmitReview)
		}

		api.POST("/conference-inquiries", iqc.SubmitInquiry)
		api.GET("/menu", mc.GetMenu)
		api.POST("/contact", cc.SubmitContact)
		api.GET("/settings/hotel", controllers.GetHotelSettings)

		api.POST("/auth/login", controllers.Login)

		// Back-office
		admin := api.Group("/admin")
		admin.Use(middleware.RequireAdmin(db))
		{
			admin.POST("/logout", controllers.Logout)

			adminBookings := admin.Group("/bookings")
			{
				adminBookings.GET("", bc.ListBookings)
				adminBookings.POST("/:id/status", bc.UpdateStatus)
				adminBookings.POST("/sweep-expired", bc.SweepExpired)
			}

			adminRooms := admin.Group("/rooms")
			{
				adminRooms.GET("", controllers.GetAllRooms)
				adminRooms.POST("", controllers.CreateRoom)
				adminRooms.PATCH("/:id", controllers.UpdateRoom)
				adminRooms.PUT("/:id", controllers.UpdateRoom)
				adminRooms.DELETE("/:id", controllers.DeleteRoom)
			}

			adminReviews := admin.Group("/reviews")
			{
				adminReviews.GET("", rvc.ListAllReviews)
				adminReviews.POST("/:id/approve", rvc.ApproveReview)
				adminReviews.DELETE("/:id", rvc.DeleteReview)
			}

			adminInquiries := admin.Group("/conference-inquiries")
			{
				adminInquiries.GET("", iqc.ListInquiries)
				adminInquiries.POST("/:id/status", iqc.UpdateInquiryStatus)
			}

			adminMenu := admin.Group("/menu")
			{
				adminMenu.GET("", mc.GetFullMenu)
				adminMenu.POST("/categories", mc.CreateCategory)
				adminMenu.DELETE("/categories/:id", mc.DeleteCategory)
				adminMenu.POST("/items", mc.CreateItem)
				adminMenu.PATCH("/items/:id", mc.UpdateItem)
				adminMenu.DELETE("/items/:id", mc.DeleteItem)
			}

			adminContact := admin.Group("/contact-messages")
			{
				adminContact.GET("", cc.ListContactMessages)
				adminContact.POST("/:id/read", cc.MarkContactRead)
				adminContact.DELETE("/:id", cc.DeleteContactMessage)
			}

			adminSettings := admin.Group("/settings")
			{
				adminSettings.GET("", sc.GetSettings)
				adminSettings.PUT("", sc.UpdateSettings)
				adminSettings.PUT("/hotel", controllers.UpdateHotelSettings)
			}

			admins := admin.Group("/admins")
			{
				admins.GET("", controllers.GetAdmins)
				admins.POST("", controllers.CreateAdmin)
				admins.DELETE("/:id", controllers.DeleteAdmin)
			}
		}
	}

	return r
}
