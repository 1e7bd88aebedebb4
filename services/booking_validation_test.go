package services

import (
	"errors"
	"testing"
	"time"
)

var testNow = time.Date(2026, time.August, 29, 10, 0, 0, 0, time.UTC)

func validBookingRequest() CreateBookingRequest {
	return CreateBookingRequest{
		RoomID:     1,
		GuestName:  "Jane Doe",
		GuestEmail: "Jane@Example.com",
		GuestPhone: "+4712345678",
		CheckIn:    "2026-09-10",
		CheckOut:   "2026-09-12",
		Guests:     2,
		Children:   0,
	}
}

func TestValidateRequestValid(t *testing.T) {
	req := validBookingRequest()
	cfg := BookingConfig{MaxAdvanceDays: 365}

	checkIn, checkOut, nights, err := validateRequest(&req, cfg, testNow)
	if err != nil {
		t.Fatalf("validateRequest: %v", err)
	}
	if nights != 2 {
		t.Errorf("nights = %d, want 2", nights)
	}
	if !checkOut.After(checkIn) {
		t.Errorf("checkOut %v not after checkIn %v", checkOut, checkIn)
	}
	if req.GuestEmail != "jane@example.com" {
		t.Errorf("email not normalized: %q", req.GuestEmail)
	}
}

func TestValidateRequestAggregatesFieldErrors(t *testing.T) {
	req := CreateBookingRequest{}
	cfg := BookingConfig{MaxAdvanceDays: 365}

	_, _, _, err := validateRequest(&req, cfg, testNow)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	for _, field := range []string{"guest_name", "guest_email", "room_id", "guests", "check_in", "check_out"} {
		if _, ok := verr.Fields[field]; !ok {
			t.Errorf("missing field error for %s: %+v", field, verr.Fields)
		}
	}
}

func TestValidateRequestRejections(t *testing.T) {
	cfg := BookingConfig{MaxAdvanceDays: 365}

	tests := []struct {
		name   string
		mutate func(*CreateBookingRequest)
		field  string
	}{
		{"email without at sign", func(r *CreateBookingRequest) { r.GuestEmail = "not-an-email" }, "guest_email"},
		{"children equal guests", func(r *CreateBookingRequest) { r.Children = 2 }, "children"},
		{"negative children", func(r *CreateBookingRequest) { r.Children = -1 }, "children"},
		{"unknown occupancy", func(r *CreateBookingRequest) { r.Occupancy = "quad" }, "occupancy"},
		{"checkout before checkin", func(r *CreateBookingRequest) { r.CheckOut = "2026-09-09" }, "check_out"},
		{"same-day stay", func(r *CreateBookingRequest) { r.CheckOut = r.CheckIn }, "check_out"},
		{"past check-in", func(r *CreateBookingRequest) {
			r.CheckIn = "2026-08-01"
			r.CheckOut = "2026-08-03"
		}, "check_in"},
		{"too far in advance", func(r *CreateBookingRequest) {
			r.CheckIn = "2027-10-01"
			r.CheckOut = "2027-10-03"
		}, "check_in"},
		{"malformed date", func(r *CreateBookingRequest) { r.CheckIn = "10/09/2026" }, "check_in"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validBookingRequest()
			tt.mutate(&req)

			_, _, _, err := validateRequest(&req, cfg, testNow)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if _, ok := verr.Fields[tt.field]; !ok {
				t.Errorf("expected error on %s, got %+v", tt.field, verr.Fields)
			}
		})
	}
}

func TestValidateRequestAcceptsOccupancyPreference(t *testing.T) {
	cfg := BookingConfig{MaxAdvanceDays: 365}
	for _, occupancy := range []string{"", OccupancySingle, OccupancyDouble, OccupancyTriple, " Double "} {
		req := validBookingRequest()
		req.Occupancy = occupancy
		if _, _, _, err := validateRequest(&req, cfg, testNow); err != nil {
			t.Errorf("occupancy %q rejected: %v", occupancy, err)
		}
	}
}

func TestValidateRequestNoAdvanceLimit(t *testing.T) {
	req := validBookingRequest()
	req.CheckIn = "2029-01-01"
	req.CheckOut = "2029-01-05"

	if _, _, _, err := validateRequest(&req, BookingConfig{}, testNow); err != nil {
		t.Fatalf("expected far-future booking to pass without a limit, got %v", err)
	}
}

func TestTransitionAllowed(t *testing.T) {
	tests := []struct {
		from, to string
		want     bool
	}{
		{"pending", "confirmed", true},
		{"pending", "cancelled", true},
		{"tentative", "confirmed", true},
		{"confirmed", "checked-in", true},
		{"confirmed", "no-show", true},
		{"checked-in", "checked-out", true},
		{"cancelled", "confirmed", false},
		{"checked-out", "checked-in", false},
		{"confirmed", "pending", false},
	}
	for _, tt := range tests {
		if got := transitionAllowed(tt.from, tt.to); got != tt.want {
			t.Errorf("transitionAllowed(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestNormalizeGuestList(t *testing.T) {
	in := []map[string]interface{}{
		{"name": "  Ola Nordmann  ", "type": "Adult"},
		{"fullName": "Kari Nordmann", "guestType": "Child"},
		{"name": ""},
		{"age": 7},
	}

	out := normalizeGuestList(in)
	if len(out) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(out))
	}
	if out[0]["fullName"] != "Ola Nordmann" || out[0]["type"] != "Adult" {
		t.Errorf("unexpected first entry: %+v", out[0])
	}
	if out[1]["fullName"] != "Kari Nordmann" || out[1]["type"] != "Child" {
		t.Errorf("unexpected second entry: %+v", out[1])
	}
}
