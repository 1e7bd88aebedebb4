package models

import (
	"gorm.io/gorm"
)

// Room is one bookable room type. Occupancy tier prices are nullable:
// a nil (or non-positive) price means that tier is not offered. Single
// occupancy falls back to PricePerNight when no dedicated single rate is set.
type Room struct {
	gorm.Model

	Name        string `json:"name" gorm:"size:150"`
	Description string `json:"description" gorm:"type:text"`
	Floor       string `json:"floor" gorm:"type:varchar(10)"`

	PricePerNight float64  `json:"pricePerNight" gorm:"column:price_per_night"`
	PriceSingle   *float64 `json:"priceSingle,omitempty" gorm:"column:price_single_occupancy"`
	PriceDouble   *float64 `json:"priceDouble,omitempty" gorm:"column:price_double_occupancy"`
	PriceTriple   *float64 `json:"priceTriple,omitempty" gorm:"column:price_triple_occupancy"`

	ChildrenAllowed bool `json:"childrenAllowed" gorm:"column:children_allowed;default:true"`

	// Percentage of the adult nightly rate charged per child. Nil means use
	// the global setting (which itself has a hardcoded default).
	ChildPriceMultiplier *float64 `json:"childPriceMultiplier,omitempty" gorm:"column:child_price_multiplier"`

	// Number of physical units of this room type.
	UnitsAvailable int `json:"unitsAvailable" gorm:"column:units_available;default:1"`

	Active bool `json:"active" gorm:"default:true"`
}
