package services

import (
	"errors"
	"fmt"
	"strings"

	"hotel-website/models"

	"gorm.io/gorm"
)

type ReviewService struct {
	DB *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{DB: db}
}

// SubmitReviewRequest is one public review form submission.
type SubmitReviewRequest struct {
	GuestName string `json:"guest_name"`
	Email     string `json:"email"`
	Rating    int    `json:"rating"`
	Title     string `json:"title"`
	Body      string `json:"body"`
}

// Submit stores a review pending moderation.
func (s *ReviewService) Submit(req SubmitReviewRequest) (*models.Review, error) {
	verr := newValidationError()
	req.GuestName = strings.TrimSpace(req.GuestName)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Title = strings.TrimSpace(req.Title)
	req.Body = strings.TrimSpace(req.Body)

	if req.GuestName == "" {
		verr.add("guest_name", "name is required")
	}
	if req.Email != "" && !strings.Contains(req.Email, "@") {
		verr.add("email", "email is not valid")
	}
	if req.Rating < 1 || req.Rating > 5 {
		verr.add("rating", "rating must be between 1 and 5")
	}
	if req.Body == "" {
		verr.add("body", "review text is required")
	}
	if err := verr.orNil(); err != nil {
		return nil, err
	}

	review := models.Review{
		GuestName: req.GuestName,
		Email:     req.Email,
		Rating:    req.Rating,
		Title:     req.Title,
		Body:      req.Body,
		Approved:  false,
	}
	if err := s.DB.Create(&review).Error; err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}
	return &review, nil
}

// Approved returns published reviews, newest first.
func (s *ReviewService) Approved() ([]models.Review, error) {
	var reviews []models.Review
	if err := s.DB.Where("approved = ?", true).Order("created_at DESC").Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("failed to load reviews: %w", err)
	}
	return reviews, nil
}

// All returns every review for moderation.
func (s *ReviewService) All() ([]models.Review, error) {
	var reviews []models.Review
	if err := s.DB.Order("created_at DESC").Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("failed to load reviews: %w", err)
	}
	return reviews, nil
}

func (s *ReviewService) SetApproved(id uint, approved bool) error {
	res := s.DB.Model(&models.Review{}).Where("id = ?", id).Update("approved", approved)
	if res.Error != nil {
		return fmt.Errorf("failed to update review %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *ReviewService) Delete(id uint) error {
	res := s.DB.Delete(&models.Review{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete review %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// IsNotFound reports whether err is a missing-record error.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
