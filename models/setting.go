package models

import "time"

// Setting is one key/value pair of runtime-tunable configuration
// (reference prefix, tentative duration, pricing defaults, ...).
type Setting struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Key       string    `gorm:"column:setting_key;size:100;uniqueIndex" json:"key"`
	Value     string    `gorm:"column:setting_value;size:255" json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
