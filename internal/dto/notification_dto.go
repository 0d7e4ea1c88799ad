package dto

import (
	"time"

	"github.com/google/uuid"
)

// NotificationCreateDTO is the admin payload for publishing an announcement.
type NotificationCreateDTO struct {
	Title    string `json:"title" binding:"required"`
	Message  string `json:"message" binding:"required"`
	IsActive *bool  `json:"is_active"`
}

type NotificationUpdateDTO struct {
	Title    string `json:"title" binding:"required"`
	Message  string `json:"message" binding:"required"`
	IsActive *bool  `json:"is_active"`
}

type NotificationDTO struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	IsActive  bool      `json:"is_active"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// NotificationReadDTO marks one notification read for a student.
type NotificationReadDTO struct {
	StudentProfileID uuid.UUID `json:"student_profile_id" binding:"required"`
}
