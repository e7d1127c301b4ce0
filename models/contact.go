package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContactSubmission is one message sent through the site's contact form.
// Rows are only ever created by the site.
type ContactSubmission struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Name      string    `gorm:"type:text;not null" json:"name"`
	Email     string    `gorm:"type:text;not null" json:"email"`
	Subject   string    `gorm:"type:text;not null" json:"subject"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName keeps the table name stable regardless of naming strategy
func (ContactSubmission) TableName() string {
	return "contact_submissions"
}

// BeforeCreate GORM hook - assign a UUID when missing
func (c *ContactSubmission) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// ContactCreate is the contact form payload. Absent fields stay empty strings.
type ContactCreate struct {
	Name    string `form:"name"`
	Email   string `form:"email"`
	Subject string `form:"subject"`
	Message string `form:"message"`
}
