package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"hotel-website/services"
	"hotel-website/utils"

	"github.com/gin-gonic/gin"
)

type ReviewController struct {
	ReviewSvc *services.ReviewService
}

func NewReviewController(svc *services.ReviewService) *ReviewController {
	return &ReviewController{ReviewSvc: svc}
}

// GetReviews (GET /api/reviews) returns published reviews only.
func (ctrl *ReviewController) GetReviews(c *gin.Context) {
	reviews, err := ctrl.ReviewSvc.Approved()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "error.internal", "Failed to load reviews.")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, reviews)
}

// SubmitReview (POST /api/reviews) stores a review pending moderation.
func (ctrl *ReviewController) SubmitReview(c *gin.Context) {
	var req services.SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", "Invalid request payload.")
		return
	}

	review, err := ctrl.ReviewSvc.Submit(req)
	if err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			utils.JSONFieldErrors(c, http.StatusBadRequest, verr.Fields)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "error.internal", "Failed to submit review.")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, review)
}

// ListAllReviews (GET /api/admin/reviews) for moderation.
func (ctrl *ReviewController) ListAllReviews(c *gin.Context) {
	reviews, err := ctrl.ReviewSvc.All()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "error.internal", "Failed to load reviews.")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, reviews)
}

type approveReviewPayload struct {
	Approved bool `json:"approved"`
}

// ApproveReview (POST /api/admin/reviews/:id/approve)
func (ctrl *ReviewController) ApproveReview(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidId", "Review id must be numeric.")
		return
	}
	payload := approveReviewPayload{Approved: true}
	_ = c.ShouldBindJSON(&payload)

	if err := ctrl.ReviewSvc.SetApproved(uint(id), payload.Approved); err != nil {
		if services.IsNotFound(err) {
			utils.JSONError(c, http.StatusNotFound, "error.notFound", "Review not found.")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "error.internal", "Failed to update review.")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"approved": payload.Approved})
}

// DeleteReview (DELETE /api/admin/reviews/:id)
func (ctrl *ReviewController) DeleteReview(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidId", "Review id must be numeric.")
		return
	}
	if err := ctrl.ReviewSvc.Delete(uint(id)); err != nil {
		if services.IsNotFound(err) {
			utils.JSONError(c, http.StatusNotFound, "error.notFound", "Review not found.")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "error.internal", "Failed to delete review.")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": true})
}
