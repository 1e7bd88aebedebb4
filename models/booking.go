package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Booking statuses. Cancellation is a status change, rows are never deleted.
const (
	BookingPending    = "pending"
	BookingTentative  = "tentative"
	BookingConfirmed  = "confirmed"
	BookingCancelled  = "cancelled"
	BookingCheckedIn  = "checked-in"
	BookingCheckedOut = "checked-out"
	BookingNoShow     = "no-show"
)

// ActiveBookingStatuses are the statuses that hold a room (duplicate
// detection), a superset of ConflictingBookingStatuses, which are the ones
// counted against availability.
var (
	ActiveBookingStatuses      = []string{BookingPending, BookingTentative, BookingConfirmed, BookingCheckedIn}
	ConflictingBookingStatuses = []string{BookingPending, BookingConfirmed, BookingCheckedIn}
)

// Booking is one row per physical room reserved. A party split across
// several rooms produces several rows sharing ParentReference.
type Booking struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	ReferenceCode   string `gorm:"column:reference_code;size:32;uniqueIndex" json:"reference_code"`
	ParentReference string `gorm:"column:parent_reference;size:32;index" json:"parent_reference,omitempty"`

	RoomID uint `gorm:"index;column:room_id" json:"roomId"`

	GuestName  string `gorm:"column:guest_name;size:255" json:"guestName"`
	GuestEmail string `gorm:"column:guest_email;size:255;index" json:"guestEmail"`
	GuestPhone string `gorm:"column:guest_phone;size:50" json:"guestPhone,omitempty"`

	CheckIn  time.Time `gorm:"column:check_in" json:"check_in"`
	CheckOut time.Time `gorm:"column:check_out" json:"check_out"`
	Nights   int       `gorm:"column:nights" json:"nights"`

	Adults    int    `gorm:"column:adults;default:1" json:"adults"`
	Children  int    `gorm:"column:children;default:0" json:"children"`
	Occupancy string `gorm:"column:occupancy;size:16" json:"occupancy"`

	TotalAmount     float64 `gorm:"column:total_amount" json:"totalAmount"`
	ChildSupplement float64 `gorm:"column:child_supplement" json:"childSupplement"`

	Status             string     `gorm:"column:status;size:32;index" json:"status"`
	TentativeExpiresAt *time.Time `gorm:"column:tentative_expires_at" json:"tentativeExpiresAt,omitempty"`

	SpecialRequests string `gorm:"column:special_requests;type:text" json:"specialRequests,omitempty"`

	// Draft list of accompanying guest names supplied at submission time.
	AccompanyingGuests datatypes.JSON `gorm:"column:accompanying_guests" json:"accompanyingGuests,omitempty"`

	// Opaque token for guest self-service (view / cancel) links.
	ManageToken string `gorm:"column:manage_token;size:64;index" json:"-"`

	Room Room `gorm:"foreignKey:RoomID;references:ID" json:"room,omitempty"`
}
