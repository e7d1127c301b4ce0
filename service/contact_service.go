package service

import (
	"context"
	"fmt"
	"portfolio/models"

	"gorm.io/gorm"
)

// ContactService stores contact form submissions
type ContactService struct {
	db *gorm.DB
}

// NewContactService constructs a contact service
func NewContactService(db *gorm.DB) *ContactService {
	return &ContactService{db: db}
}

// Create persists one submission exactly as received.
func (s *ContactService) Create(ctx context.Context, req models.ContactCreate) (*models.ContactSubmission, error) {
	submission := models.ContactSubmission{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}

	if err := s.db.WithContext(ctx).Create(&submission).Error; err != nil {
		return nil, fmt.Errorf("failed to create contact submission: %w", err)
	}

	return &submission, nil
}
