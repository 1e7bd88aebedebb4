package services

import (
	"errors"
	"math"
	"testing"

	"hotel-website/models"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestQuoteStayDoubleWithChild(t *testing.T) {
	room := models.Room{
		PricePerNight:   80,
		PriceDouble:     fptr(100),
		ChildrenAllowed: true,
	}

	quote, err := QuoteStay(&room, OccupancyDouble, 2, 1, 50)
	if err != nil {
		t.Fatalf("QuoteStay: %v", err)
	}

	if !almostEqual(quote.BaseAmount, 200) {
		t.Errorf("base = %.2f, want 200", quote.BaseAmount)
	}
	if !almostEqual(quote.ChildSupplement, 100) {
		t.Errorf("child supplement = %.2f, want 100", quote.ChildSupplement)
	}
	if !almostEqual(quote.Total, 300) {
		t.Errorf("total = %.2f, want 300", quote.Total)
	}
}

func TestNightlyRateSingleFallback(t *testing.T) {
	room := models.Room{PricePerNight: 80}

	rate, err := NightlyRate(&room, OccupancySingle)
	if err != nil {
		t.Fatalf("NightlyRate: %v", err)
	}
	if !almostEqual(rate, 80) {
		t.Errorf("rate = %.2f, want 80", rate)
	}

	// A dedicated single rate wins over the base price.
	room.PriceSingle = fptr(95)
	rate, err = NightlyRate(&room, OccupancySingle)
	if err != nil {
		t.Fatalf("NightlyRate: %v", err)
	}
	if !almostEqual(rate, 95) {
		t.Errorf("rate = %.2f, want 95", rate)
	}
}

func TestNightlyRateUnpricedTier(t *testing.T) {
	room := models.Room{PricePerNight: 80}

	for _, occupancy := range []string{OccupancyDouble, OccupancyTriple} {
		if _, err := NightlyRate(&room, occupancy); !errors.Is(err, ErrOccupancyNotPriced) {
			t.Errorf("NightlyRate(%s): expected ErrOccupancyNotPriced, got %v", occupancy, err)
		}
	}

	room.PricePerNight = 0
	if _, err := NightlyRate(&room, OccupancySingle); !errors.Is(err, ErrOccupancyNotPriced) {
		t.Errorf("expected ErrOccupancyNotPriced for unpriced single, got %v", err)
	}
}

func TestChildMultiplier(t *testing.T) {
	room := models.Room{}

	if got := ChildMultiplier(&room, 50); !almostEqual(got, 50) {
		t.Errorf("default multiplier = %.2f, want 50", got)
	}

	room.ChildPriceMultiplier = fptr(25)
	if got := ChildMultiplier(&room, 50); !almostEqual(got, 25) {
		t.Errorf("room multiplier = %.2f, want 25", got)
	}

	// Negative values clamp to zero.
	room.ChildPriceMultiplier = fptr(-10)
	if got := ChildMultiplier(&room, 50); got != 0 {
		t.Errorf("clamped multiplier = %.2f, want 0", got)
	}
}

func TestQuoteStayNoChildren(t *testing.T) {
	room := models.Room{PriceTriple: fptr(150)}

	quote, err := QuoteStay(&room, OccupancyTriple, 3, 0, 50)
	if err != nil {
		t.Fatalf("QuoteStay: %v", err)
	}
	if quote.ChildSupplement != 0 {
		t.Errorf("child supplement = %.2f, want 0", quote.ChildSupplement)
	}
	if !almostEqual(quote.Total, 450) {
		t.Errorf("total = %.2f, want 450", quote.Total)
	}
}
