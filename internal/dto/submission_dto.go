package dto

import (
	"time"

	"github.com/google/uuid"
)

// AttemptSubmitDTO is the request body for submitting a full quiz attempt.
// Answers maps question id to the selected option letter; questions left
// unanswered are simply absent from the map. The map may be empty but must be
// present. TimeTakenSeconds is client-reported and trusted as-is.
type AttemptSubmitDTO struct {
	UserName         string               `json:"user_name" binding:"required"`
	UserAddress      *string              `json:"user_address"`
	UserPhone        *string              `json:"user_phone"`
	StudentProfileID *uuid.UUID           `json:"student_profile_id"`
	Answers          map[uuid.UUID]string `json:"answers"`
	TimeTakenSeconds *int                 `json:"time_taken_seconds"`
}

// AnswerDetailDTO is one row of the per-question result breakdown.
type AnswerDetailDTO struct {
	QuestionText   string  `json:"question_text"`
	OptionA        string  `json:"option_a"`
	OptionB        string  `json:"option_b"`
	OptionC        string  `json:"option_c"`
	OptionD        string  `json:"option_d"`
	CorrectOption  *string `json:"correct_option"`
	SelectedOption *string `json:"selected_option"`
	IsCorrect      bool    `json:"is_correct"`
}

// LeaderboardEntryDTO is one ranked row of a quiz leaderboard.
type LeaderboardEntryDTO struct {
	UserName         string `json:"user_name"`
	Score            int    `json:"score"`
	TotalMarks       int    `json:"total_marks"`
	TimeTakenSeconds *int   `json:"time_taken_seconds,omitempty"`
	Rank             int    `json:"rank"`
}

// AttemptResultDTO is the composed submission result the result page renders.
type AttemptResultDTO struct {
	AttemptID        uuid.UUID             `json:"attempt_id"`
	UserName         string                `json:"user_name"`
	QuizTitle        string                `json:"quiz_title"`
	Score            int                   `json:"score"`
	TotalMarks       int                   `json:"total_marks"`
	CorrectCount     int                   `json:"correct_count"`
	WrongCount       int                   `json:"wrong_count"`
	TimeTakenSeconds *int                  `json:"time_taken_seconds"`
	Leaderboard      []LeaderboardEntryDTO `json:"leaderboard"`
	UserRank         *int                  `json:"user_rank"`
	Details          []AnswerDetailDTO     `json:"details"`
	SubmittedAt      time.Time             `json:"submitted_at"`
}

// AttemptSummaryDTO is one row in a student's attempt history.
type AttemptSummaryDTO struct {
	ID               uuid.UUID `json:"id"`
	QuizID           uuid.UUID `json:"quiz_id"`
	QuizTitle        string    `json:"quiz_title,omitempty"`
	UserName         string    `json:"user_name"`
	Score            int       `json:"score"`
	TotalMarks       int       `json:"total_marks"`
	CorrectCount     int       `json:"correct_count"`
	WrongCount       int       `json:"wrong_count"`
	TimeTakenSeconds *int      `json:"time_taken_seconds,omitempty"`
	SubmittedAt      time.Time `json:"submitted_at"`
}
