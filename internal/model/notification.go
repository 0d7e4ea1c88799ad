package model

import (
	"time"

	"github.com/google/uuid"
)

type Notification struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Title     string    `json:"title" gorm:"not null"`
	Message   string    `json:"message" gorm:"type:text;not null"`
	IsActive  bool      `json:"is_active" gorm:"not null;default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NotificationRead marks a notification as seen by one student.
type NotificationRead struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	NotificationID   uuid.UUID `json:"notification_id" gorm:"type:uuid;not null;uniqueIndex:idx_notification_student"`
	StudentProfileID uuid.UUID `json:"student_profile_id" gorm:"type:uuid;not null;uniqueIndex:idx_notification_student"`
	CreatedAt        time.Time `json:"created_at"`
}
