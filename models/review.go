package models

import (
	"time"

	"gorm.io/gorm"
)

// Review is a guest review. Submissions start unapproved and only approved
// rows are served on the public site.
type Review struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	GuestName string `gorm:"column:guest_name;size:150" json:"guestName"`
	Email     string `gorm:"size:255" json:"-"`
	Rating    int    `gorm:"column:rating" json:"rating"` // 1..5
	Title     string `gorm:"size:255" json:"title"`
	Body      string `gorm:"type:text" json:"body"`
	Approved  bool   `gorm:"default:false;index" json:"approved"`
}
