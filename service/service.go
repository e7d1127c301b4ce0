package service

import (
	"gorm.io/gorm"
)

// Services is the global service container
type Services struct {
	Contact *ContactService
}

// GlobalServices is the global service instance
var GlobalServices *Services

// InitServices initializes all services
func InitServices(db *gorm.DB) {
	GlobalServices = &Services{
		Contact: NewContactService(db),
	}
}
