package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"hotel-website/services"
	"hotel-website/utils"

	"github.com/gin-gonic/gin"
)

type InquiryController struct {
	InquirySvc *services.InquiryService
}

func NewInquiryController(svc *services.InquiryService) *InquiryController {
	return &InquiryController{InquirySvc: svc}
}

// SubmitInquiry (POST /api/conference-inquiries)
func (ctrl *InquiryController) SubmitInquiry(c *gin.Context) {
	var req services.SubmitInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", "Invalid request payload.")
		return
	}

	inquiry, err := ctrl.InquirySvc.Submit(req, hotelNotifyEmail())
	if err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			utils.JSONFieldErrors(c, http.StatusBadRequest, verr.Fields)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "error.internal", "Failed to submit inquiry.")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, inquiry)
}

// ListInquiries (GET /api/admin/conference-inquiries?status=)
func (ctrl *InquiryController) ListInquiries(c *gin.Context) {
	inquiries, err := ctrl.InquirySvc.List(c.Query("status"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "error.internal", "Failed to load inquiries.")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, inquiries)
}

type inquiryStatusPayload struct {
	Status string `json:"status" binding:"required"`
}

// UpdateInquiryStatus (POST /api/admin/conference-inquiries/:id/status)
func (ctrl *InquiryController) UpdateInquiryStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidId", "Inquiry id must be numeric.")
		return
	}

	var payload inquiryStatusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", "Status is required.")
		return
	}

	status := strings.ToLower(strings.TrimSpace(payload.Status))
	if err := ctrl.InquirySvc.SetStatus(uint(id), status); err != nil {
		if services.IsNotFound(err) {
			utils.JSONError(c, http.StatusNotFound, "error.notFound", "Inquiry not found.")
			return
		}
		if errors.Is(err, services.ErrInvalidTransition) {
			utils.JSONError(c, http.StatusBadRequest, "error.invalidStatus", "Unknown inquiry status.")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "error.internal", "Failed to update inquiry.")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"status": status})
}
