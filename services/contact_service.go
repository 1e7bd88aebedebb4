package services

import (
	"fmt"
	"log"
	"strings"

	"hotel-website/models"
	"hotel-website/utils"

	"gorm.io/gorm"
)

type ContactService struct {
	DB *gorm.DB
}

func NewContactService(db *gorm.DB) *ContactService {
	return &ContactService{DB: db}
}

type SubmitContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Submit stores a contact message and forwards it to the hotel inbox
// (best-effort).
func (s *ContactService) Submit(req SubmitContactRequest, hotelEmail string) (*models.ContactMessage, error) {
	verr := newValidationError()
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Subject = strings.TrimSpace(req.Subject)
	req.Message = strings.TrimSpace(req.Message)

	if req.Name == "" {
		verr.add("name", "name is required")
	}
	if req.Email == "" {
		verr.add("email", "email is required")
	} else if !strings.Contains(req.Email, "@") {
		verr.add("email", "email is not valid")
	}
	if req.Message == "" {
		verr.add("message", "message is required")
	}
	if err := verr.orNil(); err != nil {
		return nil, err
	}

	msg := models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := s.DB.Create(&msg).Error; err != nil {
		return nil, fmt.Errorf("failed to create contact message: %w", err)
	}

	if hotelEmail != "" {
		subject := "Contact form: " + req.Subject
		body := fmt.Sprintf("From %s <%s>\n\n%s", msg.Name, msg.Email, msg.Message)
		if err := utils.SendStaffEmail(hotelEmail, subject, body); err != nil {
			log.Printf("warning: contact message %d staff notification failed: %v", msg.ID, err)
		}
	}

	return &msg, nil
}

func (s *ContactService) List(unreadOnly bool) ([]models.ContactMessage, error) {
	q := s.DB.Order("created_at DESC")
	if unreadOnly {
		q = q.Where("`read` = ?", false)
	}
	var messages []models.ContactMessage
	if err := q.Find(&messages).Error; err != nil {
		return nil, fmt.Errorf("failed to list contact messages: %w", err)
	}
	return messages, nil
}

func (s *ContactService) MarkRead(id uint) error {
	res := s.DB.Model(&models.ContactMessage{}).Where("id = ?", id).Update("read", true)
	if res.Error != nil {
		return fmt.Errorf("failed to mark message %d read: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *ContactService) Delete(id uint) error {
	res := s.DB.Delete(&models.ContactMessage{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete message %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
