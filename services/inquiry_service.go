package services

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"hotel-website/models"
	"hotel-website/utils"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type InquiryService struct {
	DB *gorm.DB
}

func NewInquiryService(db *gorm.DB) *InquiryService {
	return &InquiryService{DB: db}
}

// SubmitInquiryRequest is one conference inquiry form submission.
type SubmitInquiryRequest struct {
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Phone     string   `json:"phone"`
	Company   string   `json:"company"`
	EventDate string   `json:"event_date"`
	Attendees int      `json:"attendees"`
	Message   string   `json:"message"`
	Equipment []string `json:"equipment"`
}

// Submit validates and stores an inquiry, then notifies the hotel inbox
// (best-effort).
func (s *InquiryService) Submit(req SubmitInquiryRequest, hotelEmail string) (*models.ConferenceInquiry, error) {
	verr := newValidationError()
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Message = strings.TrimSpace(req.Message)

	if req.Name == "" {
		verr.add("name", "name is required")
	}
	if req.Email == "" {
		verr.add("email", "email is required")
	} else if !strings.Contains(req.Email, "@") {
		verr.add("email", "email is not valid")
	}
	if req.Attendees < 1 {
		verr.add("attendees", "attendee count is required")
	}

	var eventDate *time.Time
	if strings.TrimSpace(req.EventDate) != "" {
		t, err := time.ParseInLocation(dateLayout, req.EventDate, time.UTC)
		if err != nil {
			verr.add("event_date", "event date must be YYYY-MM-DD")
		} else {
			eventDate = &t
		}
	}
	if err := verr.orNil(); err != nil {
		return nil, err
	}

	equipment, _ := json.Marshal(req.Equipment)

	inquiry := models.ConferenceInquiry{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     strings.TrimSpace(req.Phone),
		Company:   strings.TrimSpace(req.Company),
		EventDate: eventDate,
		Attendees: req.Attendees,
		Message:   req.Message,
		Equipment: datatypes.JSON(equipment),
		Status:    models.InquiryNew,
	}
	if err := s.DB.Create(&inquiry).Error; err != nil {
		return nil, fmt.Errorf("failed to create conference inquiry: %w", err)
	}

	if hotelEmail != "" {
		body := fmt.Sprintf("New conference inquiry #%d from %s <%s>\nAttendees: %d\n\n%s",
			inquiry.ID, inquiry.Name, inquiry.Email, inquiry.Attendees, inquiry.Message)
		if err := utils.SendStaffEmail(hotelEmail, "New conference inquiry", body); err != nil {
			log.Printf("warning: conference inquiry %d staff notification failed: %v", inquiry.ID, err)
		}
	}

	return &inquiry, nil
}

func (s *InquiryService) List(status string) ([]models.ConferenceInquiry, error) {
	q := s.DB.Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var inquiries []models.ConferenceInquiry
	if err := q.Find(&inquiries).Error; err != nil {
		return nil, fmt.Errorf("failed to list inquiries: %w", err)
	}
	return inquiries, nil
}

func (s *InquiryService) SetStatus(id uint, status string) error {
	switch status {
	case models.InquiryNew, models.InquiryContacted, models.InquiryClosed:
	default:
		return fmt.Errorf("%w: %s", ErrInvalidTransition, status)
	}
	res := s.DB.Model(&models.ConferenceInquiry{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("failed to update inquiry %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
