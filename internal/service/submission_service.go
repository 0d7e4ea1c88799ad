package service

import (
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"quizdesk/internal/dto"
	"quizdesk/internal/model"
	"quizdesk/internal/repository"
)

// Leaderboard responses are truncated to the top entries; the caller's own
// rank is reported separately so it survives the truncation.
const leaderboardLimit = 20

// SubmissionService grades and persists quiz attempts and composes the
// result view with its leaderboard.
type SubmissionService interface {
	SubmitQuiz(quizID uuid.UUID, req dto.AttemptSubmitDTO) (*dto.AttemptResultDTO, error)
	GetAttemptResult(attemptID uuid.UUID) (*dto.AttemptResultDTO, error)
}

type submissionService struct {
	quizRepo    repository.QuizRepository
	attemptRepo repository.AttemptRepository
}

func NewSubmissionService(quizRepo repository.QuizRepository, attemptRepo repository.AttemptRepository) SubmissionService {
	return &submissionService{quizRepo: quizRepo, attemptRepo: attemptRepo}
}

// SubmitQuiz runs the whole submission pipeline: load the published quiz,
// enforce the closure rule, grade deterministically in question order, write
// the attempt with one answer row per question (unanswered included), then
// read back the leaderboard and locate the new attempt's rank.
func (s *submissionService) SubmitQuiz(quizID uuid.UUID, req dto.AttemptSubmitDTO) (*dto.AttemptResultDTO, error) {
	if req.UserName == "" || req.Answers == nil {
		return nil, fmt.Errorf("%w: user_name and answers are required", ErrInvalidInput)
	}
	if req.TimeTakenSeconds != nil && *req.TimeTakenSeconds < 0 {
		return nil, fmt.Errorf("%w: time_taken_seconds must be non-negative", ErrInvalidInput)
	}

	quiz, err := s.quizRepo.FindPublishedByIDWithQuestions(quizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuizNotFound
		}
		log.Error().Err(err).Str("quiz_id", quizID.String()).Msg("SubmitQuiz: failed to load quiz")
		return nil, fmt.Errorf("loading quiz %s: %w", quizID, err)
	}
	if quiz.AttemptsClosed {
		return nil, ErrAttemptsClosed
	}

	// Single grading pass over the questions in their stored order. A
	// question with no stored correct option can never be marked correct.
	correctCount := 0
	wrongCount := 0
	answers := make([]model.Answer, 0, len(quiz.Questions))
	for _, q := range quiz.Questions {
		var selected *string
		if sel, ok := req.Answers[q.ID]; ok && sel != "" {
			selection := sel
			selected = &selection
		}
		isCorrect := selected != nil && q.CorrectOption != nil && *selected == *q.CorrectOption
		if selected != nil {
			if isCorrect {
				correctCount++
			} else {
				wrongCount++
			}
		}
		answers = append(answers, model.Answer{
			QuestionID:     q.ID,
			SelectedOption: selected,
			IsCorrect:      isCorrect,
		})
	}

	score := correctCount * quiz.MarksPerQuestion
	totalMarks := len(quiz.Questions) * quiz.MarksPerQuestion

	attempt := model.Attempt{
		QuizID:           quiz.ID,
		UserName:         req.UserName,
		UserAddress:      req.UserAddress,
		UserPhone:        req.UserPhone,
		StudentProfileID: req.StudentProfileID,
		Score:            score,
		TotalMarks:       totalMarks,
		CorrectCount:     correctCount,
		WrongCount:       wrongCount,
		TimeTakenSeconds: req.TimeTakenSeconds,
		Answers:          answers,
	}
	if err := s.attemptRepo.Create(&attempt); err != nil {
		log.Error().Err(err).Str("quiz_id", quizID.String()).Msg("SubmitQuiz: failed to persist attempt")
		return nil, fmt.Errorf("persisting attempt: %w", err)
	}

	leaderboard, userRank, err := s.composeLeaderboard(quiz.ID, attempt.ID)
	if err != nil {
		log.Error().Err(err).Str("attempt_id", attempt.ID.String()).Msg("SubmitQuiz: failed to read leaderboard")
		return nil, fmt.Errorf("reading leaderboard: %w", err)
	}

	result := &dto.AttemptResultDTO{
		AttemptID:        attempt.ID,
		UserName:         attempt.UserName,
		QuizTitle:        quiz.Title,
		Score:            score,
		TotalMarks:       totalMarks,
		CorrectCount:     correctCount,
		WrongCount:       wrongCount,
		TimeTakenSeconds: attempt.TimeTakenSeconds,
		Leaderboard:      leaderboard,
		UserRank:         userRank,
		Details:          buildAnswerDetails(quiz.Questions, answers),
		SubmittedAt:      attempt.SubmittedAt,
	}

	log.Info().
		Str("attempt_id", attempt.ID.String()).
		Str("quiz_id", quiz.ID.String()).
		Int("score", score).
		Int("correct", correctCount).
		Int("wrong", wrongCount).
		Msg("Quiz attempt graded")
	return result, nil
}

// GetAttemptResult re-renders the result view for an existing attempt.
func (s *submissionService) GetAttemptResult(attemptID uuid.UUID) (*dto.AttemptResultDTO, error) {
	attempt, err := s.attemptRepo.FindByIDWithAnswers(attemptID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAttemptNotFound
		}
		return nil, fmt.Errorf("loading attempt %s: %w", attemptID, err)
	}

	leaderboard, userRank, err := s.composeLeaderboard(attempt.QuizID, attempt.ID)
	if err != nil {
		return nil, fmt.Errorf("reading leaderboard: %w", err)
	}

	// Details come from the questions frozen on the answers, not the live
	// question set: later edits must not rewrite a past result.
	questions := make([]model.Question, 0, len(attempt.Answers))
	for _, ans := range attempt.Answers {
		questions = append(questions, ans.Question)
	}
	sortQuestionsByOrder(questions)

	return &dto.AttemptResultDTO{
		AttemptID:        attempt.ID,
		UserName:         attempt.UserName,
		QuizTitle:        attempt.Quiz.Title,
		Score:            attempt.Score,
		TotalMarks:       attempt.TotalMarks,
		CorrectCount:     attempt.CorrectCount,
		WrongCount:       attempt.WrongCount,
		TimeTakenSeconds: attempt.TimeTakenSeconds,
		Leaderboard:      leaderboard,
		UserRank:         userRank,
		Details:          buildAnswerDetails(questions, attempt.Answers),
		SubmittedAt:      attempt.SubmittedAt,
	}, nil
}

// composeLeaderboard reads all attempts for the quiz in ranked order, assigns
// sequential ranks 1..N (ties stay distinct), and finds the given attempt's
// rank by its id over the full list before truncating to the response limit.
func (s *submissionService) composeLeaderboard(quizID, attemptID uuid.UUID) ([]dto.LeaderboardEntryDTO, *int, error) {
	attempts, err := s.attemptRepo.FindAllByQuizRanked(quizID)
	if err != nil {
		return nil, nil, err
	}

	var userRank *int
	entries := make([]dto.LeaderboardEntryDTO, 0, leaderboardLimit)
	for i, a := range attempts {
		rank := i + 1
		if a.ID == attemptID {
			r := rank
			userRank = &r
		}
		if rank <= leaderboardLimit {
			entries = append(entries, dto.LeaderboardEntryDTO{
				UserName:         a.UserName,
				Score:            a.Score,
				TotalMarks:       a.TotalMarks,
				TimeTakenSeconds: a.TimeTakenSeconds,
				Rank:             rank,
			})
		}
	}
	return entries, userRank, nil
}

// buildAnswerDetails pairs questions with their graded answers, in quiz
// question order.
func buildAnswerDetails(questions []model.Question, answers []model.Answer) []dto.AnswerDetailDTO {
	byQuestion := make(map[uuid.UUID]model.Answer, len(answers))
	for _, a := range answers {
		byQuestion[a.QuestionID] = a
	}

	details := make([]dto.AnswerDetailDTO, 0, len(questions))
	for _, q := range questions {
		ans := byQuestion[q.ID]
		details = append(details, dto.AnswerDetailDTO{
			QuestionText:   q.QuestionText,
			OptionA:        q.OptionA,
			OptionB:        q.OptionB,
			OptionC:        q.OptionC,
			OptionD:        q.OptionD,
			CorrectOption:  q.CorrectOption,
			SelectedOption: ans.SelectedOption,
			IsCorrect:      ans.IsCorrect,
		})
	}
	return details
}

func sortQuestionsByOrder(questions []model.Question) {
	sort.SliceStable(questions, func(i, j int) bool {
		return questions[i].QuestionOrder < questions[j].QuestionOrder
	})
}
