package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	QuizStatusDraft     = "draft"
	QuizStatusPublished = "published"
)

type Quiz struct {
	ID               uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Title            string         `json:"title" gorm:"not null"`
	MarksPerQuestion int            `json:"marks_per_question" gorm:"not null"`
	TotalTimeMinutes int            `json:"total_time_minutes" gorm:"not null"`
	Status           string         `json:"status" gorm:"not null;default:'draft';index"` // "draft", "published"
	AttemptsClosed   bool           `json:"attempts_closed" gorm:"not null;default:false"`
	ClassLevel       *string        `json:"class_level,omitempty"`
	TestType         *string        `json:"test_type,omitempty"`
	Subject          *string        `json:"subject,omitempty"`
	Questions        []Question     `json:"questions,omitempty" gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}
