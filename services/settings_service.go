package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"hotel-website/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Setting keys consumed by the booking flow.
const (
	SettingReferencePrefix       = "booking_reference_prefix"
	SettingTentativeDuration     = "tentative_duration_hours"
	SettingChildPriceMultiplier  = "booking_child_price_multiplier"
	SettingChildGuestMultiplier  = "child_guest_price_multiplier" // legacy alias
	SettingMaxAdvanceBookingDays = "max_advance_booking_days"
)

// Defaults used when a key is absent from the settings table.
const (
	DefaultReferencePrefix       = "BK"
	DefaultTentativeHours        = 24
	DefaultMaxAdvanceBookingDays = 365
)

// SettingsService reads and writes the key/value settings table.
type SettingsService struct {
	DB *gorm.DB
}

func NewSettingsService(db *gorm.DB) *SettingsService {
	return &SettingsService{DB: db}
}

func (s *SettingsService) Get(key string) (string, bool) {
	var setting models.Setting
	if err := s.DB.Where("setting_key = ?", key).First(&setting).Error; err != nil {
		return "", false
	}
	return setting.Value, true
}

func (s *SettingsService) GetString(key, def string) string {
	if v, ok := s.Get(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return def
}

func (s *SettingsService) GetInt(key string, def int) int {
	if v, ok := s.Get(key); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
	}
	return def
}

func (s *SettingsService) GetFloat(key string, def float64) float64 {
	if v, ok := s.Get(key); ok {
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return f
		}
	}
	return def
}

// Set upserts one setting.
func (s *SettingsService) Set(key, value string) error {
	setting := models.Setting{Key: key, Value: value}
	err := s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "setting_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"setting_value", "updated_at"}),
	}).Create(&setting).Error
	if err != nil {
		return fmt.Errorf("failed to save setting %s: %w", key, err)
	}
	return nil
}

func (s *SettingsService) All() ([]models.Setting, error) {
	var settings []models.Setting
	if err := s.DB.Order("setting_key ASC").Find(&settings).Error; err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return settings, nil
}

// EnsureDefault creates a setting only when the key is absent.
func (s *SettingsService) EnsureDefault(key, value string) error {
	var existing models.Setting
	err := s.DB.Where("setting_key = ?", key).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return s.DB.Create(&models.Setting{Key: key, Value: value}).Error
}

// BookingConfig is the explicit configuration snapshot handed to the
// allocator; allocation code never reaches into the settings table itself.
type BookingConfig struct {
	ReferencePrefix      string
	TentativeDuration    time.Duration
	ChildPriceMultiplier float64
	MaxAdvanceDays       int
}

func (s *SettingsService) BookingConfig() BookingConfig {
	multiplier := s.GetFloat(SettingChildPriceMultiplier,
		s.GetFloat(SettingChildGuestMultiplier, DefaultChildPriceMultiplier))
	if multiplier < 0 {
		multiplier = 0
	}

	hours := s.GetInt(SettingTentativeDuration, DefaultTentativeHours)
	if hours < 0 {
		hours = 0
	}

	return BookingConfig{
		ReferencePrefix:      s.GetString(SettingReferencePrefix, DefaultReferencePrefix),
		TentativeDuration:    time.Duration(hours) * time.Hour,
		ChildPriceMultiplier: multiplier,
		MaxAdvanceDays:       s.GetInt(SettingMaxAdvanceBookingDays, DefaultMaxAdvanceBookingDays),
	}
}
