package dto

import (
	"time"

	"github.com/google/uuid"
)

// AdminQuestionDTO is one question inside an admin create/update payload.
// CorrectOption may stay nil while a quiz is in draft.
type AdminQuestionDTO struct {
	QuestionText  string  `json:"question_text" binding:"required"`
	OptionA       string  `json:"option_a" binding:"required"`
	OptionB       string  `json:"option_b" binding:"required"`
	OptionC       string  `json:"option_c" binding:"required"`
	OptionD       string  `json:"option_d" binding:"required"`
	CorrectOption *string `json:"correct_option" binding:"omitempty,oneof=A B C D"`
}

// QuizCreateDTO is the admin payload for creating a quiz with its questions.
type QuizCreateDTO struct {
	Title            string             `json:"title" binding:"required"`
	MarksPerQuestion int                `json:"marks_per_question" binding:"required,gt=0"`
	TotalTimeMinutes int                `json:"total_time_minutes" binding:"required,gt=0"`
	Status           string             `json:"status" binding:"omitempty,oneof=draft published"`
	ClassLevel       *string            `json:"class_level"`
	TestType         *string            `json:"test_type"`
	Subject          *string            `json:"subject"`
	Questions        []AdminQuestionDTO `json:"questions" binding:"omitempty,dive"`
}

// QuizUpdateDTO updates quiz metadata and optionally replaces the question
// set. A nil Questions slice leaves existing questions untouched.
type QuizUpdateDTO struct {
	Title            string             `json:"title" binding:"required"`
	MarksPerQuestion int                `json:"marks_per_question" binding:"required,gt=0"`
	TotalTimeMinutes int                `json:"total_time_minutes" binding:"required,gt=0"`
	Status           string             `json:"status" binding:"required,oneof=draft published"`
	AttemptsClosed   *bool              `json:"attempts_closed"`
	ClassLevel       *string            `json:"class_level"`
	TestType         *string            `json:"test_type"`
	Subject          *string            `json:"subject"`
	Questions        []AdminQuestionDTO `json:"questions" binding:"omitempty,dive"`
}

// AdminQuestionResponseDTO includes the correct option, admin-only.
type AdminQuestionResponseDTO struct {
	ID            uuid.UUID `json:"id"`
	QuestionText  string    `json:"question_text"`
	OptionA       string    `json:"option_a"`
	OptionB       string    `json:"option_b"`
	OptionC       string    `json:"option_c"`
	OptionD       string    `json:"option_d"`
	CorrectOption *string   `json:"correct_option"`
	QuestionOrder int       `json:"question_order"`
}

// AdminQuizDTO is the full admin view of one quiz.
type AdminQuizDTO struct {
	ID               uuid.UUID                  `json:"id"`
	Title            string                     `json:"title"`
	MarksPerQuestion int                        `json:"marks_per_question"`
	TotalTimeMinutes int                        `json:"total_time_minutes"`
	Status           string                     `json:"status"`
	AttemptsClosed   bool                       `json:"attempts_closed"`
	ClassLevel       *string                    `json:"class_level,omitempty"`
	TestType         *string                    `json:"test_type,omitempty"`
	Subject          *string                    `json:"subject,omitempty"`
	Questions        []AdminQuestionResponseDTO `json:"questions,omitempty"`
	CreatedAt        time.Time                  `json:"created_at"`
	UpdatedAt        time.Time                  `json:"updated_at"`
}

// AdminQuizSummaryDTO is one row of the admin quiz list.
type AdminQuizSummaryDTO struct {
	ID               uuid.UUID `json:"id"`
	Title            string    `json:"title"`
	MarksPerQuestion int       `json:"marks_per_question"`
	TotalTimeMinutes int       `json:"total_time_minutes"`
	Status           string    `json:"status"`
	AttemptsClosed   bool      `json:"attempts_closed"`
	ClassLevel       *string   `json:"class_level,omitempty"`
	TestType         *string   `json:"test_type,omitempty"`
	Subject          *string   `json:"subject,omitempty"`
	QuestionCount    int       `json:"question_count"`
	AttemptCount     int       `json:"attempt_count"`
	CreatedAt        time.Time `json:"created_at"`
}

// RankedAttemptDTO is one row of the admin attempts review, ranked the same
// way as the public leaderboard.
type RankedAttemptDTO struct {
	ID               uuid.UUID `json:"id"`
	UserName         string    `json:"user_name"`
	UserPhone        *string   `json:"user_phone,omitempty"`
	UserAddress      *string   `json:"user_address,omitempty"`
	Score            int       `json:"score"`
	TotalMarks       int       `json:"total_marks"`
	CorrectCount     int       `json:"correct_count"`
	WrongCount       int       `json:"wrong_count"`
	TimeTakenSeconds *int      `json:"time_taken_seconds,omitempty"`
	Rank             int       `json:"rank"`
	SubmittedAt      time.Time `json:"submitted_at"`
}

// AttemptDetailDTO is the admin drill-down into one attempt.
type AttemptDetailDTO struct {
	Attempt AttemptSummaryDTO `json:"attempt"`
	Answers []AnswerDetailDTO `json:"answers"`
}

// StatsDTO backs the admin dashboard counters.
type StatsDTO struct {
	QuizCount    int64 `json:"quiz_count"`
	AttemptCount int64 `json:"attempt_count"`
}
