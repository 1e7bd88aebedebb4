package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"hotel-website/models"
	"hotel-website/utils"

	mysql "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const dateLayout = "2006-01-02"

// BookingService owns the allocation flow: validation, duplicate detection,
// split planning, pricing, reference generation and the transactional insert.
type BookingService struct {
	DB       *gorm.DB
	Settings *SettingsService

	// notify runs after a successful commit. Failures are logged and
	// recorded, never propagated. Replaceable in tests.
	notify func(bookings []models.Booking, room *models.Room)
}

func NewBookingService(db *gorm.DB, settings *SettingsService) *BookingService {
	s := &BookingService{DB: db, Settings: settings}
	s.notify = s.sendBookingNotifications
	return s
}

// CreateBookingRequest is one public booking form submission.
type CreateBookingRequest struct {
	RoomID          uint                     `json:"room_id"`
	GuestName       string                   `json:"guest_name"`
	GuestEmail      string                   `json:"guest_email"`
	GuestPhone      string                   `json:"guest_phone"`
	CheckIn         string                   `json:"check_in"`
	CheckOut        string                   `json:"check_out"`
	Guests          int                      `json:"guests"`
	Children        int                      `json:"children"`
	Occupancy       string                   `json:"occupancy"`
	SpecialRequests string                   `json:"special_requests"`
	GuestList       []map[string]interface{} `json:"guest_list,omitempty"`
}

// BookingResult is the success payload handed back to the page layer.
type BookingResult struct {
	References         []string         `json:"references"`
	Bookings           []models.Booking `json:"bookings"`
	Nights             int              `json:"nights"`
	TotalAmount        float64          `json:"totalAmount"`
	ChildSupplement    float64          `json:"childSupplement"`
	TentativeExpiresAt *time.Time       `json:"tentativeExpiresAt,omitempty"`
	ManageToken        string           `json:"manageToken"`
}

func validateRequest(req *CreateBookingRequest, cfg BookingConfig, now time.Time) (checkIn, checkOut time.Time, nights int, err error) {
	verr := newValidationError()

	req.GuestName = strings.TrimSpace(req.GuestName)
	req.GuestEmail = strings.ToLower(strings.TrimSpace(req.GuestEmail))
	req.GuestPhone = strings.TrimSpace(req.GuestPhone)
	req.Occupancy = strings.ToLower(strings.TrimSpace(req.Occupancy))

	if req.GuestName == "" {
		verr.add("guest_name", "name is required")
	}
	if req.GuestEmail == "" {
		verr.add("guest_email", "email is required")
	} else if !strings.Contains(req.GuestEmail, "@") {
		verr.add("guest_email", "email is not valid")
	}
	if req.RoomID == 0 {
		verr.add("room_id", "room is required")
	}
	if req.Guests < 1 {
		verr.add("guests", "at least one guest is required")
	}
	if req.Children < 0 {
		verr.add("children", "child count cannot be negative")
	} else if req.Guests >= 1 && req.Children >= req.Guests {
		verr.add("children", "at least one adult is required")
	}

	switch req.Occupancy {
	case "", OccupancySingle, OccupancyDouble, OccupancyTriple:
	default:
		verr.add("occupancy", "unknown occupancy type")
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	if req.CheckIn == "" {
		verr.add("check_in", "check-in date is required")
	} else if checkIn, err = time.ParseInLocation(dateLayout, req.CheckIn, time.UTC); err != nil {
		verr.add("check_in", "check-in date must be YYYY-MM-DD")
	}
	if req.CheckOut == "" {
		verr.add("check_out", "check-out date is required")
	} else if checkOut, err = time.ParseInLocation(dateLayout, req.CheckOut, time.UTC); err != nil {
		verr.add("check_out", "check-out date must be YYYY-MM-DD")
	}

	if !checkIn.IsZero() && !checkOut.IsZero() {
		if !checkOut.After(checkIn) {
			verr.add("check_out", "check-out must be after check-in")
		}
		if checkIn.Before(today) {
			verr.add("check_in", "check-in cannot be in the past")
		}
		if cfg.MaxAdvanceDays > 0 && checkIn.After(today.AddDate(0, 0, cfg.MaxAdvanceDays)) {
			verr.add("check_in", fmt.Sprintf("bookings can be made at most %d days in advance", cfg.MaxAdvanceDays))
		}
		nights = int(checkOut.Sub(checkIn).Hours() / 24)
	}

	return checkIn, checkOut, nights, verr.orNil()
}

func isDuplicateKeyErr(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == 1062
}

// countConflicts counts bookings of the room holding inventory over an
// overlapping date range: NOT (existing.check_out <= check_in OR
// existing.check_in >= check_out).
func countConflicts(tx *gorm.DB, roomID uint, checkIn, checkOut time.Time) (int64, error) {
	var conflicts int64
	err := tx.Model(&models.Booking{}).
		Where("room_id = ?", roomID).
		Where("status IN ?", models.ConflictingBookingStatuses).
		Where("NOT (check_out <= ? OR check_in >= ?)", checkIn, checkOut).
		Count(&conflicts).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count conflicting bookings: %w", err)
	}
	return conflicts, nil
}

// CreateBooking runs the whole allocation for one submission. All
// sub-bookings are inserted inside a single transaction; any mid-loop
// failure rolls the entire set back.
func (s *BookingService) CreateBooking(req CreateBookingRequest) (*BookingResult, error) {
	cfg := s.Settings.BookingConfig()
	now := time.Now().UTC()

	checkIn, checkOut, nights, err := validateRequest(&req, cfg, now)
	if err != nil {
		return nil, err
	}

	var room models.Room
	if err := s.DB.First(&room, req.RoomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomUnavailable
		}
		return nil, fmt.Errorf("db error loading room %d: %w", req.RoomID, err)
	}
	if !room.Active {
		return nil, ErrRoomUnavailable
	}

	policy := ResolvePolicy(&room)

	// The requested occupancy preference must at least be an enabled tier;
	// the stored occupancy of each slot comes from the split plan.
	if req.Occupancy != "" && !policy.TierEnabled(req.Occupancy) {
		return nil, fmt.Errorf("%w: %s", ErrOccupancyNotPriced, req.Occupancy)
	}

	plan, err := PlanSlots(req.Guests, req.Children, policy)
	if err != nil {
		return nil, err
	}

	// Duplicate detection precedes allocation: same guest, room and exact
	// date range in an active status blocks the submission.
	var dupes int64
	err = s.DB.Model(&models.Booking{}).
		Where("room_id = ? AND LOWER(guest_email) = ? AND check_in = ? AND check_out = ?",
			room.ID, req.GuestEmail, checkIn, checkOut).
		Where("status IN ?", models.ActiveBookingStatuses).
		Count(&dupes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to check for duplicate booking: %w", err)
	}
	if dupes > 0 {
		return nil, ErrDuplicateBooking
	}

	accompanying, _ := json.Marshal(normalizeGuestList(req.GuestList))

	var expiresAt *time.Time
	if cfg.TentativeDuration > 0 {
		t := now.Add(cfg.TentativeDuration)
		expiresAt = &t
	}

	manageToken := uuid.NewString()

	var created []models.Booking

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		// Lock the room row before counting conflicts so two concurrent
		// submissions for the same room serialize instead of both passing
		// the availability check.
		var lockedRoom models.Room
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&lockedRoom, room.ID).Error; err != nil {
			return fmt.Errorf("failed to lock room %d: %w", room.ID, err)
		}

		conflicts, err := countConflicts(tx, room.ID, checkIn, checkOut)
		if err != nil {
			return err
		}
		if conflicts+int64(len(plan)) > int64(lockedRoom.UnitsAvailable) {
			return ErrInsufficientRooms
		}

		refExists := func(ref string) (bool, error) {
			var n int64
			if err := tx.Model(&models.Booking{}).Where("reference_code = ?", ref).Count(&n).Error; err != nil {
				return false, err
			}
			return n > 0, nil
		}

		baseRef, err := GenerateReference(cfg.ReferencePrefix, refExists)
		if err != nil {
			return err
		}

		for i, slot := range plan {
			ref := baseRef
			if i > 0 {
				ref, err = SubReference(baseRef, i+1, refExists)
				if err != nil {
					return err
				}
			}

			quote, err := QuoteStay(&room, slot.Occupancy, nights, slot.Children, cfg.ChildPriceMultiplier)
			if err != nil {
				return err
			}

			booking := models.Booking{
				ReferenceCode:      ref,
				ParentReference:    baseRef,
				RoomID:             room.ID,
				GuestName:          req.GuestName,
				GuestEmail:         req.GuestEmail,
				GuestPhone:         req.GuestPhone,
				CheckIn:            checkIn,
				CheckOut:           checkOut,
				Nights:             nights,
				Adults:             slot.Adults,
				Children:           slot.Children,
				Occupancy:          slot.Occupancy,
				TotalAmount:        quote.Total,
				ChildSupplement:    quote.ChildSupplement,
				Status:             models.BookingPending,
				TentativeExpiresAt: expiresAt,
				SpecialRequests:    strings.TrimSpace(req.SpecialRequests),
				AccompanyingGuests: datatypes.JSON(accompanying),
				ManageToken:        manageToken,
			}

			if err := tx.Create(&booking).Error; err != nil {
				if isDuplicateKeyErr(err) {
					// Lost a reference race despite the uniqueness check.
					return fmt.Errorf("%w: %s", ErrReferenceGeneration, ref)
				}
				return fmt.Errorf("failed to create booking %s: %w", ref, err)
			}
			created = append(created, booking)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	// Notifications are best-effort; the committed booking is the
	// authoritative outcome.
	s.notify(created, &room)

	result := &BookingResult{
		References:         make([]string, 0, len(created)),
		Bookings:           created,
		Nights:             nights,
		TentativeExpiresAt: expiresAt,
		ManageToken:        manageToken,
	}
	for _, b := range created {
		result.References = append(result.References, b.ReferenceCode)
		result.TotalAmount += b.TotalAmount
		result.ChildSupplement += b.ChildSupplement
	}
	return result, nil
}

// normalizeGuestList keeps only safe fields of the accompanying-guest draft.
func normalizeGuestList(guestList []map[string]interface{}) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(guestList))
	for _, g := range guestList {
		name := ""
		for _, k := range []string{"name", "fullName", "full_name"} {
			if v, ok := g[k]; ok && v != nil {
				if sv, ok2 := v.(string); ok2 {
					name = strings.TrimSpace(sv)
				}
				break
			}
		}
		if name == "" {
			continue
		}
		typ := "Adult"
		for _, k := range []string{"type", "guestType", "guest_type"} {
			if v, ok := g[k]; ok {
				if sv, ok2 := v.(string); ok2 && strings.TrimSpace(sv) != "" {
					typ = strings.TrimSpace(sv)
				}
				break
			}
		}
		out = append(out, map[string]interface{}{"fullName": name, "type": typ})
	}
	return out
}

// --------------------------------------------------------------------------
// Availability quote (no rows created)
// --------------------------------------------------------------------------

// SlotQuote pairs one planned slot with its price.
type SlotQuote struct {
	Occupancy       string  `json:"occupancy"`
	Adults          int     `json:"adults"`
	Children        int     `json:"children"`
	Rate            float64 `json:"rate"`
	Total           float64 `json:"total"`
	ChildSupplement float64 `json:"childSupplement"`
}

type QuoteResult struct {
	Available       bool        `json:"available"`
	RoomsNeeded     int         `json:"roomsNeeded"`
	Nights          int         `json:"nights"`
	Slots           []SlotQuote `json:"slots"`
	TotalAmount     float64     `json:"totalAmount"`
	ChildSupplement float64     `json:"childSupplement"`
}

// Quote prices a prospective stay and reports whether enough units are free,
// without creating anything.
func (s *BookingService) Quote(roomID uint, checkInStr, checkOutStr string, guests, children int) (*QuoteResult, error) {
	cfg := s.Settings.BookingConfig()
	req := CreateBookingRequest{
		RoomID:     roomID,
		GuestName:  "quote",
		GuestEmail: "quote@localhost",
		CheckIn:    checkInStr,
		CheckOut:   checkOutStr,
		Guests:     guests,
		Children:   children,
	}
	checkIn, checkOut, nights, err := validateRequest(&req, cfg, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	var room models.Room
	if err := s.DB.First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomUnavailable
		}
		return nil, fmt.Errorf("db error loading room %d: %w", roomID, err)
	}
	if !room.Active {
		return nil, ErrRoomUnavailable
	}

	plan, err := PlanSlots(guests, children, ResolvePolicy(&room))
	if err != nil {
		return nil, err
	}

	conflicts, err := countConflicts(s.DB, room.ID, checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	result := &QuoteResult{
		Available:   conflicts+int64(len(plan)) <= int64(room.UnitsAvailable),
		RoomsNeeded: len(plan),
		Nights:      nights,
	}
	for _, slot := range plan {
		quote, err := QuoteStay(&room, slot.Occupancy, nights, slot.Children, cfg.ChildPriceMultiplier)
		if err != nil {
			return nil, err
		}
		result.Slots = append(result.Slots, SlotQuote{
			Occupancy:       slot.Occupancy,
			Adults:          slot.Adults,
			Children:        slot.Children,
			Rate:            quote.Rate,
			Total:           quote.Total,
			ChildSupplement: quote.ChildSupplement,
		})
		result.TotalAmount += quote.Total
		result.ChildSupplement += quote.ChildSupplement
	}
	return result, nil
}

// --------------------------------------------------------------------------
// Lookups and status transitions
// --------------------------------------------------------------------------

// GetByReference loads every row of a booking group (primary reference or
// any of its split sub-references) for the given guest email.
func (s *BookingService) GetByReference(reference, email string) ([]models.Booking, error) {
	reference = strings.ToUpper(strings.TrimSpace(reference))
	email = strings.ToLower(strings.TrimSpace(email))

	var bookings []models.Booking
	err := s.DB.Preload("Room").
		Where("(reference_code = ? OR parent_reference = ?)", reference, reference).
		Where("LOWER(guest_email) = ?", email).
		Order("reference_code ASC").
		Find(&bookings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load booking %s: %w", reference, err)
	}
	if len(bookings) == 0 {
		return nil, ErrBookingNotFound
	}
	return bookings, nil
}

var allowedTransitions = map[string][]string{
	models.BookingPending:   {models.BookingTentative, models.BookingConfirmed, models.BookingCancelled},
	models.BookingTentative: {models.BookingConfirmed, models.BookingCancelled},
	models.BookingConfirmed: {models.BookingCheckedIn, models.BookingCancelled, models.BookingNoShow},
	models.BookingCheckedIn: {models.BookingCheckedOut},
}

func transitionAllowed(from, to string) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// UpdateStatus applies one admin status transition to a single booking row.
// Confirming clears the tentative expiry.
func (s *BookingService) UpdateStatus(bookingID uint, next string) (*models.Booking, error) {
	var booking models.Booking
	if err := s.DB.First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to load booking %d: %w", bookingID, err)
	}

	if !transitionAllowed(booking.Status, next) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, next)
	}

	updates := map[string]interface{}{"status": next}
	if next == models.BookingConfirmed {
		updates["tentative_expires_at"] = nil
	}
	if err := s.DB.Model(&booking).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update booking %d: %w", bookingID, err)
	}
	return &booking, nil
}

// CancelByGuest cancels every row of a booking group. The caller proves
// ownership with the manage token issued at submission, or with the guest
// email used for the booking.
func (s *BookingService) CancelByGuest(reference, email, manageToken string) error {
	reference = strings.ToUpper(strings.TrimSpace(reference))

	return s.DB.Transaction(func(tx *gorm.DB) error {
		var bookings []models.Booking
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("(reference_code = ? OR parent_reference = ?)", reference, reference).
			Find(&bookings).Error
		if err != nil {
			return fmt.Errorf("failed to load booking %s: %w", reference, err)
		}
		if len(bookings) == 0 {
			return ErrBookingNotFound
		}

		authorized := false
		for _, b := range bookings {
			if manageToken != "" && b.ManageToken == manageToken {
				authorized = true
			}
			if email != "" && strings.EqualFold(b.GuestEmail, strings.TrimSpace(email)) {
				authorized = true
			}
		}
		if !authorized {
			return ErrBookingNotFound
		}

		for _, b := range bookings {
			if b.Status == models.BookingCancelled {
				continue
			}
			if !transitionAllowed(b.Status, models.BookingCancelled) {
				return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, b.Status, models.BookingCancelled)
			}
		}

		ids := make([]uint, 0, len(bookings))
		for _, b := range bookings {
			if b.Status != models.BookingCancelled {
				ids = append(ids, b.ID)
			}
		}
		if len(ids) == 0 {
			return nil
		}
		return tx.Model(&models.Booking{}).Where("id IN ?", ids).
			Update("status", models.BookingCancelled).Error
	})
}

// ListBookings returns bookings for the back-office, newest first,
// optionally filtered by status.
func (s *BookingService) ListBookings(status string) ([]models.Booking, error) {
	q := s.DB.Preload("Room").Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var bookings []models.Booking
	if err := q.Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

// SweepExpired cancels held bookings whose tentative expiry has passed.
func (s *BookingService) SweepExpired() (int64, error) {
	res := s.DB.Model(&models.Booking{}).
		Where("status IN ?", []string{models.BookingPending, models.BookingTentative}).
		Where("tentative_expires_at IS NOT NULL AND tentative_expires_at < ?", time.Now().UTC()).
		Update("status", models.BookingCancelled)
	if res.Error != nil {
		return 0, fmt.Errorf("failed to sweep expired bookings: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// --------------------------------------------------------------------------
// Notifications
// --------------------------------------------------------------------------

func (s *BookingService) logNotification(bookingID uint, channel, recipient string, sendErr error) {
	entry := models.NotificationLog{
		BookingID: &bookingID,
		Channel:   channel,
		Recipient: recipient,
		Status:    models.NotifySent,
	}
	if sendErr != nil {
		entry.Status = models.NotifyFailed
		entry.Error = sendErr.Error()
	}
	if err := s.DB.Create(&entry).Error; err != nil {
		log.Printf("warning: failed to record %s notification for booking %d: %v", channel, bookingID, err)
	}
}

func (s *BookingService) sendBookingNotifications(bookings []models.Booking, room *models.Room) {
	if len(bookings) == 0 {
		return
	}
	primary := bookings[0]

	refs := make([]string, 0, len(bookings))
	total := 0.0
	for _, b := range bookings {
		refs = append(refs, b.ReferenceCode)
		total += b.TotalAmount
	}

	mailErr := utils.SendBookingConfirmationEmail(
		primary.GuestEmail,
		primary.GuestName,
		refs,
		room.Name,
		primary.CheckIn.Format(dateLayout),
		primary.CheckOut.Format(dateLayout),
		primary.Nights,
		total,
		primary.TentativeExpiresAt,
	)
	if mailErr != nil {
		log.Printf("warning: booking %s confirmation email failed: %v", primary.ReferenceCode, mailErr)
	}
	s.logNotification(primary.ID, models.NotifyEmail, primary.GuestEmail, mailErr)

	if primary.GuestPhone != "" {
		msg := fmt.Sprintf("Your booking %s (%s, %s to %s) is received. Total: %.2f.",
			primary.ReferenceCode, room.Name,
			primary.CheckIn.Format(dateLayout), primary.CheckOut.Format(dateLayout), total)
		waErr := utils.SendWhatsAppMessage(primary.GuestPhone, msg)
		if waErr != nil {
			log.Printf("warning: booking %s WhatsApp notification failed: %v", primary.ReferenceCode, waErr)
		}
		s.logNotification(primary.ID, models.NotifyWhatsApp, primary.GuestPhone, waErr)
	}
}
