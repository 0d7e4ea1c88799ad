package model

import (
	"time"

	"github.com/google/uuid"
)

// StudentProfile links repeat attempts to one identity, keyed by phone number.
type StudentProfile struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PhoneNumber string    `json:"phone_number" gorm:"not null;uniqueIndex"`
	FullName    string    `json:"full_name" gorm:"not null"`
	Address     string    `json:"address"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
