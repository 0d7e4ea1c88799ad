package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"quizdesk/internal/dto"
	"quizdesk/internal/model"
	"quizdesk/internal/repository"
)

// AdminQuizService covers quiz authoring, publish-gating, attempt review and
// the dashboard counters.
type AdminQuizService interface {
	ListQuizzes() ([]dto.AdminQuizSummaryDTO, error)
	CreateQuiz(req dto.QuizCreateDTO) (*dto.AdminQuizDTO, error)
	GetQuiz(quizID uuid.UUID) (*dto.AdminQuizDTO, error)
	UpdateQuiz(quizID uuid.UUID, req dto.QuizUpdateDTO) (*dto.AdminQuizDTO, error)
	DeleteQuiz(quizID uuid.UUID) error
	ListAttempts(quizID uuid.UUID) ([]dto.RankedAttemptDTO, error)
	GetAttemptDetail(attemptID uuid.UUID) (*dto.AttemptDetailDTO, error)
	GetStats() (*dto.StatsDTO, error)
}

type adminQuizService struct {
	quizRepo    repository.QuizRepository
	attemptRepo repository.AttemptRepository
}

func NewAdminQuizService(quizRepo repository.QuizRepository, attemptRepo repository.AttemptRepository) AdminQuizService {
	return &adminQuizService{quizRepo: quizRepo, attemptRepo: attemptRepo}
}

func (s *adminQuizService) ListQuizzes() ([]dto.AdminQuizSummaryDTO, error) {
	quizzes, err := s.quizRepo.FindAllWithCounts()
	if err != nil {
		log.Error().Err(err).Msg("Admin ListQuizzes: repository error")
		return nil, fmt.Errorf("fetching quizzes: %w", err)
	}

	dtos := make([]dto.AdminQuizSummaryDTO, 0, len(quizzes))
	for _, q := range quizzes {
		dtos = append(dtos, dto.AdminQuizSummaryDTO{
			ID:               q.ID,
			Title:            q.Title,
			MarksPerQuestion: q.MarksPerQuestion,
			TotalTimeMinutes: q.TotalTimeMinutes,
			Status:           q.Status,
			AttemptsClosed:   q.AttemptsClosed,
			ClassLevel:       q.ClassLevel,
			TestType:         q.TestType,
			Subject:          q.Subject,
			QuestionCount:    q.QuestionCount,
			AttemptCount:     q.AttemptCount,
			CreatedAt:        q.CreatedAt,
		})
	}
	return dtos, nil
}

// checkPublishGate enforces the rule that a quiz may only go live once every
// question has a correct option assigned.
func checkPublishGate(status string, questions []dto.AdminQuestionDTO) error {
	if status != model.QuizStatusPublished {
		return nil
	}
	for i, q := range questions {
		if q.CorrectOption == nil || *q.CorrectOption == "" {
			return fmt.Errorf("%w: question %d has no correct option set; set all answers before publishing", ErrInvalidInput, i+1)
		}
	}
	if len(questions) == 0 {
		return fmt.Errorf("%w: a quiz needs at least one question before publishing", ErrInvalidInput)
	}
	return nil
}

func questionsFromDTOs(quizID uuid.UUID, reqs []dto.AdminQuestionDTO) []model.Question {
	questions := make([]model.Question, 0, len(reqs))
	for i, q := range reqs {
		questions = append(questions, model.Question{
			QuizID:        quizID,
			QuestionText:  q.QuestionText,
			OptionA:       q.OptionA,
			OptionB:       q.OptionB,
			OptionC:       q.OptionC,
			OptionD:       q.OptionD,
			CorrectOption: q.CorrectOption,
			QuestionOrder: i,
		})
	}
	return questions
}

func (s *adminQuizService) CreateQuiz(req dto.QuizCreateDTO) (*dto.AdminQuizDTO, error) {
	status := req.Status
	if status == "" {
		status = model.QuizStatusDraft
	}
	if err := checkPublishGate(status, req.Questions); err != nil {
		return nil, err
	}

	quiz := model.Quiz{
		Title:            req.Title,
		MarksPerQuestion: req.MarksPerQuestion,
		TotalTimeMinutes: req.TotalTimeMinutes,
		Status:           status,
		ClassLevel:       req.ClassLevel,
		TestType:         req.TestType,
		Subject:          req.Subject,
		Questions:        questionsFromDTOs(uuid.Nil, req.Questions),
	}

	if err := s.quizRepo.Create(&quiz); err != nil {
		log.Error().Err(err).Str("title", req.Title).Msg("Admin CreateQuiz: failed to persist")
		return nil, fmt.Errorf("creating quiz: %w", err)
	}
	log.Info().Str("quiz_id", quiz.ID.String()).Str("status", quiz.Status).Int("questions", len(quiz.Questions)).Msg("Quiz created")

	return s.GetQuiz(quiz.ID)
}

func (s *adminQuizService) GetQuiz(quizID uuid.UUID) (*dto.AdminQuizDTO, error) {
	quiz, err := s.quizRepo.FindByIDWithQuestions(quizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuizNotFound
		}
		return nil, fmt.Errorf("fetching quiz %s: %w", quizID, err)
	}

	var resp dto.AdminQuizDTO
	if err := copier.Copy(&resp, quiz); err != nil {
		return nil, fmt.Errorf("preparing quiz response: %w", err)
	}
	return &resp, nil
}

func (s *adminQuizService) UpdateQuiz(quizID uuid.UUID, req dto.QuizUpdateDTO) (*dto.AdminQuizDTO, error) {
	quiz, err := s.quizRepo.FindByIDWithQuestions(quizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuizNotFound
		}
		return nil, fmt.Errorf("fetching quiz %s: %w", quizID, err)
	}

	// Gate on the question set that will exist after this update.
	gateQuestions := req.Questions
	if gateQuestions == nil {
		gateQuestions = make([]dto.AdminQuestionDTO, 0, len(quiz.Questions))
		for _, q := range quiz.Questions {
			gateQuestions = append(gateQuestions, dto.AdminQuestionDTO{CorrectOption: q.CorrectOption})
		}
	}
	if err := checkPublishGate(req.Status, gateQuestions); err != nil {
		return nil, err
	}

	quiz.Title = req.Title
	quiz.MarksPerQuestion = req.MarksPerQuestion
	quiz.TotalTimeMinutes = req.TotalTimeMinutes
	quiz.Status = req.Status
	if req.AttemptsClosed != nil {
		quiz.AttemptsClosed = *req.AttemptsClosed
	}
	quiz.ClassLevel = req.ClassLevel
	quiz.TestType = req.TestType
	quiz.Subject = req.Subject
	quiz.Questions = nil

	if err := s.quizRepo.Update(quiz); err != nil {
		log.Error().Err(err).Str("quiz_id", quizID.String()).Msg("Admin UpdateQuiz: failed to persist")
		return nil, fmt.Errorf("updating quiz: %w", err)
	}

	if req.Questions != nil {
		// Replacing questions does not rescore past attempts; their stored
		// is_correct flags stay as graded.
		if err := s.quizRepo.ReplaceQuestions(quizID, questionsFromDTOs(quizID, req.Questions)); err != nil {
			log.Error().Err(err).Str("quiz_id", quizID.String()).Msg("Admin UpdateQuiz: failed to replace questions")
			return nil, fmt.Errorf("replacing questions: %w", err)
		}
	}

	log.Info().Str("quiz_id", quizID.String()).Str("status", req.Status).Msg("Quiz updated")
	return s.GetQuiz(quizID)
}

func (s *adminQuizService) DeleteQuiz(quizID uuid.UUID) error {
	if _, err := s.quizRepo.FindByID(quizID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrQuizNotFound
		}
		return fmt.Errorf("fetching quiz %s: %w", quizID, err)
	}
	if err := s.quizRepo.Delete(quizID); err != nil {
		return fmt.Errorf("deleting quiz %s: %w", quizID, err)
	}
	log.Info().Str("quiz_id", quizID.String()).Msg("Quiz deleted")
	return nil
}

// ListAttempts returns every attempt for a quiz with its leaderboard rank,
// for the admin review screen.
func (s *adminQuizService) ListAttempts(quizID uuid.UUID) ([]dto.RankedAttemptDTO, error) {
	if _, err := s.quizRepo.FindByID(quizID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuizNotFound
		}
		return nil, fmt.Errorf("fetching quiz %s: %w", quizID, err)
	}

	attempts, err := s.attemptRepo.FindAllByQuizRanked(quizID)
	if err != nil {
		return nil, fmt.Errorf("fetching attempts for quiz %s: %w", quizID, err)
	}

	dtos := make([]dto.RankedAttemptDTO, 0, len(attempts))
	for i, a := range attempts {
		dtos = append(dtos, dto.RankedAttemptDTO{
			ID:               a.ID,
			UserName:         a.UserName,
			UserPhone:        a.UserPhone,
			UserAddress:      a.UserAddress,
			Score:            a.Score,
			TotalMarks:       a.TotalMarks,
			CorrectCount:     a.CorrectCount,
			WrongCount:       a.WrongCount,
			TimeTakenSeconds: a.TimeTakenSeconds,
			Rank:             i + 1,
			SubmittedAt:      a.SubmittedAt,
		})
	}
	return dtos, nil
}

func (s *adminQuizService) GetAttemptDetail(attemptID uuid.UUID) (*dto.AttemptDetailDTO, error) {
	attempt, err := s.attemptRepo.FindByIDWithAnswers(attemptID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAttemptNotFound
		}
		return nil, fmt.Errorf("fetching attempt %s: %w", attemptID, err)
	}

	questions := make([]model.Question, 0, len(attempt.Answers))
	for _, ans := range attempt.Answers {
		questions = append(questions, ans.Question)
	}
	sortQuestionsByOrder(questions)

	var summary dto.AttemptSummaryDTO
	if err := copier.Copy(&summary, attempt); err != nil {
		return nil, fmt.Errorf("preparing attempt response: %w", err)
	}
	summary.QuizTitle = attempt.Quiz.Title

	return &dto.AttemptDetailDTO{
		Attempt: summary,
		Answers: buildAnswerDetails(questions, attempt.Answers),
	}, nil
}

func (s *adminQuizService) GetStats() (*dto.StatsDTO, error) {
	quizCount, err := s.quizRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("counting quizzes: %w", err)
	}
	attemptCount, err := s.attemptRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("counting attempts: %w", err)
	}
	return &dto.StatsDTO{QuizCount: quizCount, AttemptCount: attemptCount}, nil
}
