package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"quizdesk/internal/dto"
	"quizdesk/internal/repository"
)

// QuizService is the public, student-facing read side: published quizzes
// only, correct options withheld.
type QuizService interface {
	ListQuizzes(filter dto.QuizListFilter) ([]dto.QuizSummaryDTO, error)
	GetQuiz(quizID uuid.UUID) (*dto.PublicQuizDTO, error)
}

type quizService struct {
	quizRepo repository.QuizRepository
}

func NewQuizService(quizRepo repository.QuizRepository) QuizService {
	return &quizService{quizRepo: quizRepo}
}

func (s *quizService) ListQuizzes(filter dto.QuizListFilter) ([]dto.QuizSummaryDTO, error) {
	quizzes, err := s.quizRepo.FindPublished(filter)
	if err != nil {
		log.Error().Err(err).Msg("ListQuizzes: repository error")
		return nil, fmt.Errorf("fetching published quizzes: %w", err)
	}

	dtos := make([]dto.QuizSummaryDTO, 0, len(quizzes))
	for _, q := range quizzes {
		dtos = append(dtos, dto.QuizSummaryDTO{
			ID:               q.ID,
			Title:            q.Title,
			MarksPerQuestion: q.MarksPerQuestion,
			TotalTimeMinutes: q.TotalTimeMinutes,
			AttemptsClosed:   q.AttemptsClosed,
			ClassLevel:       q.ClassLevel,
			TestType:         q.TestType,
			Subject:          q.Subject,
			QuestionCount:    q.QuestionCount,
			CreatedAt:        q.CreatedAt,
		})
	}
	return dtos, nil
}

func (s *quizService) GetQuiz(quizID uuid.UUID) (*dto.PublicQuizDTO, error) {
	quiz, err := s.quizRepo.FindPublishedByIDWithQuestions(quizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuizNotFound
		}
		log.Error().Err(err).Str("quiz_id", quizID.String()).Msg("GetQuiz: repository error")
		return nil, fmt.Errorf("fetching quiz %s: %w", quizID, err)
	}

	var resp dto.PublicQuizDTO
	if err := copier.Copy(&resp, quiz); err != nil {
		return nil, fmt.Errorf("preparing quiz response: %w", err)
	}
	// copier maps Questions field-by-field; PublicQuestionDTO has no
	// CorrectOption field, so the answer key never leaks.
	return &resp, nil
}
