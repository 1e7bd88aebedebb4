package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"hotel-website/services"
	"hotel-website/utils"

	"github.com/gin-gonic/gin"
)

type BookingController struct {
	BookingSvc *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{BookingSvc: svc}
}

// respondBookingError maps allocator failures onto HTTP statuses and the
// availability/capacity/validation categories the page layer renders.
func respondBookingError(c *gin.Context, err error) {
	var verr *services.ValidationError
	if errors.As(err, &verr) {
		utils.JSONFieldErrors(c, http.StatusBadRequest, verr.Fields)
		return
	}

	switch {
	case errors.Is(err, services.ErrRoomUnavailable):
		c.JSON(http.StatusNotFound, gin.H{"error": gin.H{
			"code": "error.roomUnavailable", "category": "availability",
			"message": "The selected room is not available."}})
	case errors.Is(err, services.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": gin.H{
			"code": "error.bookingNotFound", "message": "Booking not found."}})
	case errors.Is(err, services.ErrNoOccupancyAvailable):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": gin.H{
			"code": "error.noOccupancyAvailable", "category": "capacity",
			"message": "This room has no bookable occupancy."}})
	case errors.Is(err, services.ErrChildrenNotAllowed):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": gin.H{
			"code": "error.childrenNotAllowed", "category": "capacity",
			"message": "This room does not accommodate children."}})
	case errors.Is(err, services.ErrOccupancyNotPriced):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": gin.H{
			"code": "error.occupancyNotPriced", "category": "capacity",
			"message": "The requested occupancy has no configured rate."}})
	case errors.Is(err, services.ErrOccupancyMappingFailed):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": gin.H{
			"code": "error.occupancyMappingFailed", "category": "capacity",
			"message": "The party could not be split across this room's occupancies."}})
	case errors.Is(err, services.ErrInsufficientRooms):
		c.JSON(http.StatusConflict, gin.H{"error": gin.H{
			"code": "error.insufficientRooms", "category": "availability",
			"message": "Not enough rooms are available for the selected dates."}})
	case errors.Is(err, services.ErrDuplicateBooking):
		c.JSON(http.StatusConflict, gin.H{"error": gin.H{
			"code": "error.duplicateBooking",
			"message": "An identical booking request already exists."}})
	case errors.Is(err, services.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": gin.H{
			"code": "error.invalidStatusTransition",
			"message": "The booking cannot move to that status."}})
	default:
		// Raw DB errors stay server-side.
		log.Printf("booking error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{
			"code": "error.internal", "message": "Unable to process the booking request."}})
	}
}

// CreateBooking handles POST /api/bookings.
func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	var req services.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", "Invalid request payload: "+err.Error())
		return
	}

	result, err := ctrl.BookingSvc.CreateBooking(req)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, result)
}

// QuoteRoom handles GET /api/rooms/:id/quote: availability and pricing for
// a prospective stay, without creating anything.
func (ctrl *BookingController) QuoteRoom(c *gin.Context) {
	roomID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidRoomId", "Room id must be numeric.")
		return
	}

	guests, _ := strconv.Atoi(c.DefaultQuery("guests", "1"))
	children, _ := strconv.Atoi(c.DefaultQuery("children", "0"))

	quote, err := ctrl.BookingSvc.Quote(uint(roomID), c.Query("check_in"), c.Query("check_out"), guests, children)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, quote)
}

// GetBooking handles GET /api/bookings/:reference?email=, the guest lookup
// of a booking group.
func (ctrl *BookingController) GetBooking(c *gin.Context) {
	reference := c.Param("reference")
	email := c.Query("email")
	if strings.TrimSpace(email) == "" {
		utils.JSONError(c, http.StatusBadRequest, "error.missingEmail", "Email is required to look up a booking.")
		return
	}

	bookings, err := ctrl.BookingSvc.GetByReference(reference, email)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bookings)
}

type cancelBookingPayload struct {
	Reference   string `json:"reference" binding:"required"`
	Email       string `json:"email"`
	ManageToken string `json:"manage_token"`
}

// CancelBooking handles POST /api/bookings/cancel: guest self-service
// cancellation of a whole booking group.
func (ctrl *BookingController) CancelBooking(c *gin.Context) {
	var payload cancelBookingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", "Reference is required.")
		return
	}
	if payload.Email == "" && payload.ManageToken == "" {
		utils.JSONError(c, http.StatusBadRequest, "error.missingProof", "Email or manage token is required.")
		return
	}

	if err := ctrl.BookingSvc.CancelByGuest(payload.Reference, payload.Email, payload.ManageToken); err != nil {
		respondBookingError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"cancelled": true})
}

// ---------------------------------------------------------------------------
// Back-office handlers
// ---------------------------------------------------------------------------

// ListBookings handles GET /api/admin/bookings?status=.
func (ctrl *BookingController) ListBookings(c *gin.Context) {
	bookings, err := ctrl.BookingSvc.ListBookings(c.Query("status"))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bookings)
}

type updateStatusPayload struct {
	Status string `json:"status" binding:"required"`
}

// UpdateStatus handles POST /api/admin/bookings/:id/status.
func (ctrl *BookingController) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidBookingId", "Booking id must be numeric.")
		return
	}

	var payload updateStatusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", "Status is required.")
		return
	}

	booking, err := ctrl.BookingSvc.UpdateStatus(uint(id), strings.ToLower(strings.TrimSpace(payload.Status)))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

// SweepExpired handles POST /api/admin/bookings/sweep-expired.
func (ctrl *BookingController) SweepExpired(c *gin.Context) {
	n, err := ctrl.BookingSvc.SweepExpired()
	if err != nil {
		respondBookingError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"cancelled": n})
}
