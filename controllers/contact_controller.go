package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"hotel-website/services"
	"hotel-website/utils"

	"github.com/gin-gonic/gin"
)

type ContactController struct {
	ContactSvc *services.ContactService
}

func NewContactController(svc *services.ContactService) *ContactController {
	return &ContactController{ContactSvc: svc}
}

// SubmitContact (POST /api/contact)
func (ctrl *ContactController) SubmitContact(c *gin.Context) {
	var req services.SubmitContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", "Invalid request payload.")
		return
	}

	msg, err := ctrl.ContactSvc.Submit(req, hotelNotifyEmail())
	if err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			utils.JSONFieldErrors(c, http.StatusBadRequest, verr.Fields)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "error.internal", "Failed to send message.")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, gin.H{"id": msg.ID})
}

// ListContactMessages (GET /api/admin/contact-messages?unread=1)
func (ctrl *ContactController) ListContactMessages(c *gin.Context) {
	messages, err := ctrl.ContactSvc.List(c.Query("unread") == "1")
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "error.internal", "Failed to load messages.")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, messages)
}

// MarkContactRead (POST /api/admin/contact-messages/:id/read)
func (ctrl *ContactController) MarkContactRead(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidId", "Message id must be numeric.")
		return
	}
	if err := ctrl.ContactSvc.MarkRead(uint(id)); err != nil {
		if services.IsNotFound(err) {
			utils.JSONError(c, http.StatusNotFound, "error.notFound", "Message not found.")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "error.internal", "Failed to update message.")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"read": true})
}

// DeleteContactMessage (DELETE /api/admin/contact-messages/:id)
func (ctrl *ContactController) DeleteContactMessage(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidId", "Message id must be numeric.")
		return
	}
	if err := ctrl.ContactSvc.Delete(uint(id)); err != nil {
		if services.IsNotFound(err) {
			utils.JSONError(c, http.StatusNotFound, "error.notFound", "Message not found.")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "error.internal", "Failed to delete message.")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": true})
}
