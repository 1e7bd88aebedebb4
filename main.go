package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"hotel-website/config"
	"hotel-website/controllers"
	"hotel-website/routes"
	"hotel-website/services"
)

func sweepInterval() time.Duration {
	raw := os.Getenv("SWEEP_INTERVAL_MINUTES")
	if raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			return time.Duration(n) * time.Minute
		}
	}
	return 15 * time.Minute
}

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found or couldn't load it; continuing with environment variables")
	}

	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("config.DB is nil after ConnectDatabase()")
	}
	log.Println("database connection established, migrations applied")

	// Services
	settingsService := services.NewSettingsService(db)
	bookingService := services.NewBookingService(db, settingsService)
	reviewService := services.NewReviewService(db)
	inquiryService := services.NewInquiryService(db)
	menuService := services.NewMenuService(db)
	contactService := services.NewContactService(db)

	// Controllers
	bookingController := controllers.NewBookingController(bookingService)
	reviewController := controllers.NewReviewController(reviewService)
	inquiryController := controllers.NewInquiryController(inquiryService)
	menuController := controllers.NewMenuController(menuService)
	contactController := controllers.NewContactController(contactService)
	settingsController := controllers.NewSettingsController(settingsService)

	router := routes.SetupRouter(
		db,
		bookingController,
		reviewController,
		inquiryController,
		menuController,
		contactController,
		settingsController,
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Cancel expired tentative bookings in the background.
	sweepCtx, stopSweeper := context.WithCancel(context.Background())
	go func() {
		ticker := time.NewTicker(sweepInterval())
		defer ticker.Stop()
		for {
			select {
			case <-sweepCtx.Done():
				return
			case <-ticker.C:
				n, err := bookingService.SweepExpired()
				if err != nil {
					log.Printf("expiry sweep failed: %v", err)
				} else if n > 0 {
					log.Printf("expiry sweep cancelled %d booking(s)", n)
				}
			}
		}
	}()

	go func() {
		log.Printf("server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	// Graceful shutdown on interrupt.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("shutdown signal received, shutting down server...")

	stopSweeper()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("server stopped gracefully")
}
