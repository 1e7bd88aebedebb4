package services

import (
	"fmt"

	"hotel-website/models"
)

// DefaultChildPriceMultiplier is the hardcoded fallback (percent of the
// adult nightly rate) used when neither the room nor the settings table
// carries a multiplier.
const DefaultChildPriceMultiplier = 50.0

// NightlyRate resolves the adult nightly rate for one occupancy tier.
// Single occupancy falls back to the room's base per-night price when no
// dedicated single rate is configured.
func NightlyRate(room *models.Room, occupancy string) (float64, error) {
	switch occupancy {
	case OccupancySingle:
		if priced(room.PriceSingle) {
			return *room.PriceSingle, nil
		}
		if room.PricePerNight > 0 {
			return room.PricePerNight, nil
		}
	case OccupancyDouble:
		if priced(room.PriceDouble) {
			return *room.PriceDouble, nil
		}
	case OccupancyTriple:
		if priced(room.PriceTriple) {
			return *room.PriceTriple, nil
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrOccupancyNotPriced, occupancy)
}

// ChildMultiplier returns the child-price percentage for a room, preferring
// the room-specific override, clamped to >= 0.
func ChildMultiplier(room *models.Room, defaultMultiplier float64) float64 {
	m := defaultMultiplier
	if room.ChildPriceMultiplier != nil {
		m = *room.ChildPriceMultiplier
	}
	if m < 0 {
		m = 0
	}
	return m
}

// StayQuote is the computed price of one booking slot.
type StayQuote struct {
	Rate            float64 `json:"rate"`
	BaseAmount      float64 `json:"baseAmount"`
	ChildSupplement float64 `json:"childSupplement"`
	Total           float64 `json:"total"`
}

// QuoteStay prices one slot: base = rate * nights, plus a child supplement
// of rate * multiplier% per child per night.
func QuoteStay(room *models.Room, occupancy string, nights, children int, defaultMultiplier float64) (StayQuote, error) {
	rate, err := NightlyRate(room, occupancy)
	if err != nil {
		return StayQuote{}, err
	}

	base := rate * float64(nights)

	supplement := 0.0
	if children > 0 {
		childRate := rate * (ChildMultiplier(room, defaultMultiplier) / 100)
		supplement = childRate * float64(children) * float64(nights)
	}

	return StayQuote{
		Rate:            rate,
		BaseAmount:      base,
		ChildSupplement: supplement,
		Total:           base + supplement,
	}, nil
}
