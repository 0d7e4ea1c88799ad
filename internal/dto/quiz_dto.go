package dto

import (
	"time"

	"github.com/google/uuid"
)

// PublicQuestionDTO is a question as shown to a test-taker. The correct option
// is deliberately absent.
type PublicQuestionDTO struct {
	ID            uuid.UUID `json:"id"`
	QuestionText  string    `json:"question_text"`
	OptionA       string    `json:"option_a"`
	OptionB       string    `json:"option_b"`
	OptionC       string    `json:"option_c"`
	OptionD       string    `json:"option_d"`
	QuestionOrder int       `json:"question_order"`
}

// PublicQuizDTO is the full quiz a student loads before starting an attempt.
type PublicQuizDTO struct {
	ID               uuid.UUID           `json:"id"`
	Title            string              `json:"title"`
	MarksPerQuestion int                 `json:"marks_per_question"`
	TotalTimeMinutes int                 `json:"total_time_minutes"`
	AttemptsClosed   bool                `json:"attempts_closed"`
	ClassLevel       *string             `json:"class_level,omitempty"`
	TestType         *string             `json:"test_type,omitempty"`
	Subject          *string             `json:"subject,omitempty"`
	Questions        []PublicQuestionDTO `json:"questions"`
	CreatedAt        time.Time           `json:"created_at"`
}

// QuizSummaryDTO is one card in the public quiz listing.
type QuizSummaryDTO struct {
	ID               uuid.UUID `json:"id"`
	Title            string    `json:"title"`
	MarksPerQuestion int       `json:"marks_per_question"`
	TotalTimeMinutes int       `json:"total_time_minutes"`
	AttemptsClosed   bool      `json:"attempts_closed"`
	ClassLevel       *string   `json:"class_level,omitempty"`
	TestType         *string   `json:"test_type,omitempty"`
	Subject          *string   `json:"subject,omitempty"`
	QuestionCount    int       `json:"question_count"`
	CreatedAt        time.Time `json:"created_at"`
}

// QuizListFilter narrows the public listing by classification tags.
type QuizListFilter struct {
	ClassLevel string
	TestType   string
	Subject    string
}
