package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Question struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	QuizID        uuid.UUID      `json:"quiz_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_question_quiz_order,where:deleted_at IS NULL"`
	QuestionText  string         `json:"question_text" gorm:"type:text;not null"`
	OptionA       string         `json:"option_a" gorm:"not null"`
	OptionB       string         `json:"option_b" gorm:"not null"`
	OptionC       string         `json:"option_c" gorm:"not null"`
	OptionD       string         `json:"option_d" gorm:"not null"`
	CorrectOption *string        `json:"correct_option,omitempty"` // "A".."D", nil until set
	QuestionOrder int            `json:"question_order" gorm:"not null;uniqueIndex:idx_question_quiz_order,where:deleted_at IS NULL"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
