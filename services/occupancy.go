package services

import (
	"fmt"

	"hotel-website/models"
)

// Occupancy tiers. Each tier carries its own nightly rate and guest ceiling.
const (
	OccupancySingle = "single"
	OccupancyDouble = "double"
	OccupancyTriple = "triple"
)

// OccupancyPolicy captures which tiers of a room are bookable and whether
// children may be added. It is derived per request from the room row and
// never persisted.
type OccupancyPolicy struct {
	SingleEnabled   bool
	DoubleEnabled   bool
	TripleEnabled   bool
	ChildrenAllowed bool
}

func priced(p *float64) bool {
	return p != nil && *p > 0
}

// ResolvePolicy derives the occupancy policy from a room row. A tier is
// enabled only when its price is set and positive; single occupancy also
// falls back to the room's base per-night price.
func ResolvePolicy(room *models.Room) OccupancyPolicy {
	return OccupancyPolicy{
		SingleEnabled:   priced(room.PriceSingle) || room.PricePerNight > 0,
		DoubleEnabled:   priced(room.PriceDouble),
		TripleEnabled:   priced(room.PriceTriple),
		ChildrenAllowed: room.ChildrenAllowed,
	}
}

// MaxPerBooking returns the guest ceiling of the highest enabled tier,
// or 0 when no tier is enabled.
func (p OccupancyPolicy) MaxPerBooking() int {
	switch {
	case p.TripleEnabled:
		return 3
	case p.DoubleEnabled:
		return 2
	case p.SingleEnabled:
		return 1
	default:
		return 0
	}
}

func (p OccupancyPolicy) TierEnabled(occupancy string) bool {
	switch occupancy {
	case OccupancySingle:
		return p.SingleEnabled
	case OccupancyDouble:
		return p.DoubleEnabled
	case OccupancyTriple:
		return p.TripleEnabled
	}
	return false
}

// SlotPlan is the allocation for one sub-booking of a split request.
type SlotPlan struct {
	Guests    int
	Adults    int
	Children  int
	Occupancy string
}

func occupancyForGuests(n int) (string, bool) {
	switch n {
	case 1:
		return OccupancySingle, true
	case 2:
		return OccupancyDouble, true
	case 3:
		return OccupancyTriple, true
	}
	return "", false
}

// PlanSlots splits a party across the minimum number of same-type bookings.
// Greedy left-to-right packing: every slot keeps at least one guest reserved
// for each remaining slot, children fill slots up to guests-1 so every
// booking keeps at least one adult. Deterministic for a fixed input.
func PlanSlots(guests, children int, policy OccupancyPolicy) ([]SlotPlan, error) {
	if guests < 1 {
		verr := newValidationError()
		verr.add("guests", "at least one guest is required")
		return nil, verr
	}
	if children < 0 {
		children = 0
	}
	if children > 0 && !policy.ChildrenAllowed {
		return nil, ErrChildrenNotAllowed
	}

	maxPer := policy.MaxPerBooking()
	if maxPer == 0 {
		return nil, ErrNoOccupancyAvailable
	}

	roomsNeeded := (guests + maxPer - 1) / maxPer

	// Every slot holds >= 1 adult, so the party can carry at most
	// guests - roomsNeeded children.
	if children > guests-roomsNeeded {
		verr := newValidationError()
		verr.add("children", "not enough adults to accompany the requested children")
		return nil, verr
	}

	plan := make([]SlotPlan, 0, roomsNeeded)
	remainingGuests := guests
	remainingChildren := children

	for i := 0; i < roomsNeeded; i++ {
		roomsLeft := roomsNeeded - i

		slotGuests := remainingGuests - (roomsLeft - 1)
		if slotGuests < 1 {
			slotGuests = 1
		}
		if slotGuests > maxPer {
			slotGuests = maxPer
		}

		slotChildren := slotGuests - 1
		if slotChildren > remainingChildren {
			slotChildren = remainingChildren
		}

		occupancy, ok := occupancyForGuests(slotGuests)
		if !ok || !policy.TierEnabled(occupancy) {
			// Defensive: maxPer was derived from an enabled tier, but a
			// partially-filled final slot can land on a disabled one
			// (e.g. double enabled, single not).
			return nil, fmt.Errorf("%w: no enabled tier for %d guest(s)", ErrOccupancyMappingFailed, slotGuests)
		}

		plan = append(plan, SlotPlan{
			Guests:    slotGuests,
			Adults:    slotGuests - slotChildren,
			Children:  slotChildren,
			Occupancy: occupancy,
		})

		remainingGuests -= slotGuests
		remainingChildren -= slotChildren
	}

	return plan, nil
}
