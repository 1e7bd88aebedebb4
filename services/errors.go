package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Allocation failures surfaced to the page layer. Controllers map these to
// HTTP statuses with errors.Is.
var (
	ErrRoomUnavailable        = errors.New("room_unavailable")
	ErrNoOccupancyAvailable   = errors.New("no_occupancy_available")
	ErrChildrenNotAllowed     = errors.New("children_not_allowed")
	ErrOccupancyNotPriced     = errors.New("occupancy_not_priced")
	ErrOccupancyMappingFailed = errors.New("occupancy_mapping_failed")
	ErrInsufficientRooms      = errors.New("insufficient_rooms")
	ErrDuplicateBooking       = errors.New("duplicate_booking")
	ErrReferenceGeneration    = errors.New("reference_generation_failed")

	ErrBookingNotFound   = errors.New("booking_not_found")
	ErrInvalidTransition = errors.New("invalid_status_transition")
)

// ValidationError aggregates field-level messages for one submission.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation: " + strings.Join(parts, "; ")
}

func newValidationError() *ValidationError {
	return &ValidationError{Fields: map[string]string{}}
}

func (e *ValidationError) add(field, msg string) {
	if _, exists := e.Fields[field]; !exists {
		e.Fields[field] = msg
	}
}

func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}
