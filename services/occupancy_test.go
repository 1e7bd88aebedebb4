package services

import (
	"errors"
	"testing"

	"hotel-website/models"
)

func fptr(v float64) *float64 { return &v }

func TestResolvePolicy(t *testing.T) {
	tests := []struct {
		name string
		room models.Room
		want OccupancyPolicy
	}{
		{
			name: "all tiers priced",
			room: models.Room{
				PricePerNight: 80, PriceSingle: fptr(90), PriceDouble: fptr(120),
				PriceTriple: fptr(150), ChildrenAllowed: true,
			},
			want: OccupancyPolicy{SingleEnabled: true, DoubleEnabled: true, TripleEnabled: true, ChildrenAllowed: true},
		},
		{
			name: "single falls back to base price",
			room: models.Room{PricePerNight: 80, PriceDouble: fptr(120)},
			want: OccupancyPolicy{SingleEnabled: true, DoubleEnabled: true},
		},
		{
			name: "zero prices disable tiers",
			room: models.Room{PricePerNight: 0, PriceDouble: fptr(0), PriceTriple: fptr(150)},
			want: OccupancyPolicy{TripleEnabled: true},
		},
		{
			name: "nothing priced",
			room: models.Room{},
			want: OccupancyPolicy{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolvePolicy(&tt.room)
			if got != tt.want {
				t.Errorf("ResolvePolicy() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestMaxPerBooking(t *testing.T) {
	tests := []struct {
		policy OccupancyPolicy
		want   int
	}{
		{OccupancyPolicy{SingleEnabled: true, DoubleEnabled: true, TripleEnabled: true}, 3},
		{OccupancyPolicy{SingleEnabled: true, DoubleEnabled: true}, 2},
		{OccupancyPolicy{SingleEnabled: true}, 1},
		{OccupancyPolicy{DoubleEnabled: true}, 2},
		{OccupancyPolicy{}, 0},
	}
	for _, tt := range tests {
		if got := tt.policy.MaxPerBooking(); got != tt.want {
			t.Errorf("MaxPerBooking(%+v) = %d, want %d", tt.policy, got, tt.want)
		}
	}
}

func TestPlanSlotsSingleRoom(t *testing.T) {
	policy := OccupancyPolicy{SingleEnabled: true, DoubleEnabled: true, TripleEnabled: true, ChildrenAllowed: true}

	plan, err := PlanSlots(2, 1, policy)
	if err != nil {
		t.Fatalf("PlanSlots: %v", err)
	}
	if len(plan) != 1 {
		t.Fatalf("expected 1 slot, got %d", len(plan))
	}
	slot := plan[0]
	if slot.Guests != 2 || slot.Adults != 1 || slot.Children != 1 || slot.Occupancy != OccupancyDouble {
		t.Errorf("unexpected slot: %+v", slot)
	}
}

func TestPlanSlotsSplit(t *testing.T) {
	// Double-only room (single enabled via base price): 5 guests -> [2,2,1].
	policy := OccupancyPolicy{SingleEnabled: true, DoubleEnabled: true, ChildrenAllowed: true}

	plan, err := PlanSlots(5, 0, policy)
	if err != nil {
		t.Fatalf("PlanSlots: %v", err)
	}
	if len(plan) != 3 {
		t.Fatalf("expected 3 slots, got %d", len(plan))
	}

	wantGuests := []int{2, 2, 1}
	wantOccupancy := []string{OccupancyDouble, OccupancyDouble, OccupancySingle}
	for i, slot := range plan {
		if slot.Guests != wantGuests[i] {
			t.Errorf("slot %d guests = %d, want %d", i, slot.Guests, wantGuests[i])
		}
		if slot.Occupancy != wantOccupancy[i] {
			t.Errorf("slot %d occupancy = %s, want %s", i, slot.Occupancy, wantOccupancy[i])
		}
	}
}

func TestPlanSlotsMappingFailure(t *testing.T) {
	// Double enabled but single not: the final partially-filled slot has no
	// tier to land on.
	policy := OccupancyPolicy{DoubleEnabled: true}

	_, err := PlanSlots(5, 0, policy)
	if !errors.Is(err, ErrOccupancyMappingFailed) {
		t.Fatalf("expected ErrOccupancyMappingFailed, got %v", err)
	}
}

func TestPlanSlotsInvariants(t *testing.T) {
	policy := OccupancyPolicy{SingleEnabled: true, DoubleEnabled: true, TripleEnabled: true, ChildrenAllowed: true}

	for guests := 1; guests <= 9; guests++ {
		maxChildren := guests - (guests+2)/3 // guests - roomsNeeded
		for children := 0; children <= maxChildren; children++ {
			plan, err := PlanSlots(guests, children, policy)
			if err != nil {
				t.Fatalf("PlanSlots(%d,%d): %v", guests, children, err)
			}

			wantSlots := (guests + 2) / 3
			if len(plan) != wantSlots {
				t.Errorf("PlanSlots(%d,%d): %d slots, want %d", guests, children, len(plan), wantSlots)
			}

			sumGuests, sumChildren := 0, 0
			for _, slot := range plan {
				if slot.Adults < 1 {
					t.Errorf("PlanSlots(%d,%d): slot without adult: %+v", guests, children, slot)
				}
				if slot.Guests < 1 || slot.Guests > 3 {
					t.Errorf("PlanSlots(%d,%d): slot guest count out of range: %+v", guests, children, slot)
				}
				if slot.Adults+slot.Children != slot.Guests {
					t.Errorf("PlanSlots(%d,%d): inconsistent slot: %+v", guests, children, slot)
				}
				sumGuests += slot.Guests
				sumChildren += slot.Children
			}
			if sumGuests != guests {
				t.Errorf("PlanSlots(%d,%d): guest sum %d", guests, children, sumGuests)
			}
			if sumChildren != children {
				t.Errorf("PlanSlots(%d,%d): child sum %d, want %d", guests, children, sumChildren, children)
			}
		}
	}
}

func TestPlanSlotsFailures(t *testing.T) {
	t.Run("no occupancy available", func(t *testing.T) {
		_, err := PlanSlots(2, 0, OccupancyPolicy{})
		if !errors.Is(err, ErrNoOccupancyAvailable) {
			t.Fatalf("expected ErrNoOccupancyAvailable, got %v", err)
		}
	})

	t.Run("children not allowed", func(t *testing.T) {
		policy := OccupancyPolicy{SingleEnabled: true, DoubleEnabled: true}
		_, err := PlanSlots(2, 1, policy)
		if !errors.Is(err, ErrChildrenNotAllowed) {
			t.Fatalf("expected ErrChildrenNotAllowed, got %v", err)
		}
	})

	t.Run("too many children for adult coverage", func(t *testing.T) {
		policy := OccupancyPolicy{SingleEnabled: true, DoubleEnabled: true, ChildrenAllowed: true}
		// 3 guests across 2 double-capped rooms leaves space for 1 child.
		_, err := PlanSlots(3, 2, policy)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		if _, ok := verr.Fields["children"]; !ok {
			t.Errorf("expected children field error, got %+v", verr.Fields)
		}
	})

	t.Run("zero guests", func(t *testing.T) {
		policy := OccupancyPolicy{SingleEnabled: true}
		_, err := PlanSlots(0, 0, policy)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})
}
