package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Conference inquiry workflow statuses.
const (
	InquiryNew       = "new"
	InquiryContacted = "contacted"
	InquiryClosed    = "closed"
)

type ConferenceInquiry struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name      string     `gorm:"size:255" json:"name"`
	Email     string     `gorm:"size:255" json:"email"`
	Phone     string     `gorm:"size:50" json:"phone,omitempty"`
	Company   string     `gorm:"size:255" json:"company,omitempty"`
	EventDate *time.Time `gorm:"column:event_date" json:"eventDate,omitempty"`
	Attendees int        `gorm:"column:attendees" json:"attendees"`
	Message   string     `gorm:"type:text" json:"message"`

	// Requested equipment (projector, stage, ...) as submitted by the form.
	Equipment datatypes.JSON `gorm:"column:equipment" json:"equipment,omitempty"`

	Status string `gorm:"size:32;default:new;index" json:"status"`
}
