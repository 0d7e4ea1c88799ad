package model

import (
	"github.com/google/uuid"
)

// Answer records one graded selection. IsCorrect is frozen at grading time;
// later edits to the question do not rescore it.
type Answer struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	AttemptID      uuid.UUID `json:"attempt_id" gorm:"type:uuid;not null;index"`
	QuestionID     uuid.UUID `json:"question_id" gorm:"type:uuid;not null;index"`
	Question       Question  `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
	SelectedOption *string   `json:"selected_option,omitempty"` // nil means unanswered
	IsCorrect      bool      `json:"is_correct" gorm:"not null"`
}
