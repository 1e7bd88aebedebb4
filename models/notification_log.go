package models

import "time"

// Notification channels and delivery states.
const (
	NotifyEmail    = "email"
	NotifyWhatsApp = "whatsapp"

	NotifySent   = "SENT"
	NotifyFailed = "FAILED"
)

// NotificationLog records one outbound notification attempt. Delivery
// failures are recorded here and logged, never surfaced to the booking flow.
type NotificationLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	BookingID *uint  `gorm:"index" json:"bookingId,omitempty"`
	Channel   string `gorm:"size:16" json:"channel"`
	Recipient string `gorm:"size:255" json:"recipient"`
	Status    string `gorm:"size:16" json:"status"`
	Error     string `gorm:"type:text" json:"error,omitempty"`
}
