package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"hotel-website/models"
	"hotel-website/services"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "UTC")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "hotel_site")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		user, pass, host, port, dbName,
	), nil
}

// seedSettings creates the booking defaults only when absent, so operator
// changes survive restarts.
func seedSettings(settings *services.SettingsService) {
	defaults := map[string]string{
		services.SettingReferencePrefix:       services.DefaultReferencePrefix,
		services.SettingTentativeDuration:     strconv.Itoa(services.DefaultTentativeHours),
		services.SettingChildPriceMultiplier:  strconv.FormatFloat(services.DefaultChildPriceMultiplier, 'f', -1, 64),
		services.SettingMaxAdvanceBookingDays: strconv.Itoa(services.DefaultMaxAdvanceBookingDays),
	}
	for key, value := range defaults {
		if err := settings.EnsureDefault(key, value); err != nil {
			log.Printf("warning: failed to seed setting %s: %v", key, err)
		}
	}
}

// SeedDatabase ensures a default admin, booking settings and the site
// identity row exist.
func SeedDatabase() {
	var adminCount int64
	DB.Model(&models.Admin{}).Count(&adminCount)
	if adminCount == 0 {
		password := envOrDefault("ADMIN_DEFAULT_PASSWORD", "admin123")
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("warning: failed to hash default admin password: %v", err)
		} else {
			admin := models.Admin{
				FullName: "Admin User",
				Username: envOrDefault("ADMIN_DEFAULT_USERNAME", "admin@hotel.local"),
				Password: string(hash),
			}
			if err := DB.Create(&admin).Error; err != nil {
				log.Printf("warning: failed to create default admin: %v", err)
			} else {
				log.Println("Default admin seeded")
			}
		}
	}

	seedSettings(services.NewSettingsService(DB))

	var hotelCount int64
	DB.Model(&models.HotelSetting{}).Count(&hotelCount)
	if hotelCount == 0 {
		hotel := models.HotelSetting{
			Name:  envOrDefault("HOTEL_NAME", "Horizon Hotel"),
			Email: envOrDefault("HOTEL_EMAIL", ""),
		}
		if err := DB.Create(&hotel).Error; err != nil {
			log.Printf("warning: failed to seed hotel settings: %v", err)
		}
	}
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	// AutoMigrate in parent->child order.
	if err := DB.AutoMigrate(
		&models.Admin{},
		&models.Setting{},
		&models.HotelSetting{},
		&models.Room{},
		&models.Booking{},
		&models.NotificationLog{},
		&models.Review{},
		&models.ConferenceInquiry{},
		&models.MenuCategory{},
		&models.MenuItem{},
		&models.ContactMessage{},
	); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}
