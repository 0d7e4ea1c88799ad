package model

import (
	"time"

	"github.com/google/uuid"
)

// Attempt is one student's completed run through a quiz. Rows are written once
// at submission time and never updated.
type Attempt struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	QuizID           uuid.UUID  `json:"quiz_id" gorm:"type:uuid;not null;index"`
	Quiz             Quiz       `json:"quiz,omitempty" gorm:"foreignKey:QuizID"`
	UserName         string     `json:"user_name" gorm:"not null"`
	UserAddress      *string    `json:"user_address,omitempty"`
	UserPhone        *string    `json:"user_phone,omitempty"`
	StudentProfileID *uuid.UUID `json:"student_profile_id,omitempty" gorm:"type:uuid;index"`
	Score            int        `json:"score" gorm:"not null"`
	TotalMarks       int        `json:"total_marks" gorm:"not null"`
	CorrectCount     int        `json:"correct_count" gorm:"not null"`
	WrongCount       int        `json:"wrong_count" gorm:"not null"`
	TimeTakenSeconds *int       `json:"time_taken_seconds,omitempty"`
	SubmittedAt      time.Time  `json:"submitted_at" gorm:"autoCreateTime"`
	Answers          []Answer   `json:"answers,omitempty" gorm:"foreignKey:AttemptID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
