package dto

import (
	"github.com/google/uuid"
)

// StudentRegisterDTO registers a new student identity. All fields mandatory.
type StudentRegisterDTO struct {
	PhoneNumber string `json:"phone_number" binding:"required"`
	FullName    string `json:"full_name" binding:"required"`
	Address     string `json:"address" binding:"required"`
}

// StudentLoginDTO logs in an already-registered phone number.
type StudentLoginDTO struct {
	PhoneNumber string `json:"phone_number" binding:"required"`
}

type StudentProfileDTO struct {
	ID          uuid.UUID `json:"id"`
	PhoneNumber string    `json:"phone_number"`
	FullName    string    `json:"full_name"`
	Address     string    `json:"address"`
}
