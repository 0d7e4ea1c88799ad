package user

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"quizdesk/internal/dto"
	"quizdesk/internal/service"
)

type QuizController struct {
	quizService       service.QuizService
	submissionService service.SubmissionService
}

func NewQuizController(quizService service.QuizService, submissionService service.SubmissionService) *QuizController {
	return &QuizController{quizService: quizService, submissionService: submissionService}
}

func respondServiceError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput), errors.Is(err, service.ErrPhoneTaken):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, service.ErrQuizNotFound),
		errors.Is(err, service.ErrAttemptNotFound),
		errors.Is(err, service.ErrStudentNotFound),
		errors.Is(err, service.ErrNotificationNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, service.ErrAttemptsClosed):
		ctx.JSON(http.StatusForbidden, dto.ErrorResponse{Message: err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Submission failed", Details: []string{err.Error()}})
	}
}

// ListQuizzes godoc
// @Summary List published quizzes
// @Description Published quizzes only, optionally filtered by class level, test type and subject.
// @Tags Quizzes
// @Produce json
// @Param class_level query string false "Class level filter"
// @Param test_type query string false "Test type filter"
// @Param subject query string false "Subject filter"
// @Success 200 {array} dto.QuizSummaryDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /quizzes [get]
func (c *QuizController) ListQuizzes(ctx *gin.Context) {
	filter := dto.QuizListFilter{
		ClassLevel: ctx.Query("class_level"),
		TestType:   ctx.Query("test_type"),
		Subject:    ctx.Query("subject"),
	}
	quizzes, err := c.quizService.ListQuizzes(filter)
	if err != nil {
		log.Error().Err(err).Msg("ListQuizzes: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve quizzes"})
		return
	}
	ctx.JSON(http.StatusOK, quizzes)
}

// GetQuiz godoc
// @Summary Get a published quiz with its questions
// @Description Correct options are not included; draft quizzes return 404.
// @Tags Quizzes
// @Produce json
// @Param quiz_id path string true "Quiz ID"
// @Success 200 {object} dto.PublicQuizDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /quizzes/{quiz_id} [get]
func (c *QuizController) GetQuiz(ctx *gin.Context) {
	quizID, err := uuid.Parse(ctx.Param("quiz_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid quiz ID format"})
		return
	}
	quiz, err := c.quizService.GetQuiz(quizID)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, quiz)
}

// SubmitAttempt godoc
// @Summary Submit answers for a quiz
// @Description Grades the submission, persists the attempt, and returns the result with a leaderboard and the caller's rank.
// @Tags Quizzes
// @Accept json
// @Produce json
// @Param quiz_id path string true "Quiz ID"
// @Param submission body dto.AttemptSubmitDTO true "Submitter info and answer map"
// @Success 200 {object} dto.AttemptResultDTO
// @Failure 400 {object} dto.ErrorResponse "Missing fields"
// @Failure 403 {object} dto.ErrorResponse "Attempts closed"
// @Failure 404 {object} dto.ErrorResponse "Quiz not found or unpublished"
// @Failure 500 {object} dto.ErrorResponse
// @Router /quizzes/{quiz_id}/attempts [post]
func (c *QuizController) SubmitAttempt(ctx *gin.Context) {
	quizID, err := uuid.Parse(ctx.Param("quiz_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid quiz ID format"})
		return
	}

	var req dto.AttemptSubmitDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("SubmitAttempt: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	if req.Answers == nil {
		// An empty map is a valid all-unanswered submission; a missing one is not.
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Missing required fields"})
		return
	}

	log.Info().Str("quiz_id", quizID.String()).Str("user_name", req.UserName).Int("answer_count", len(req.Answers)).Msg("Received quiz submission")

	result, err := c.submissionService.SubmitQuiz(quizID, req)
	if err != nil {
		log.Error().Err(err).Str("quiz_id", quizID.String()).Msg("SubmitAttempt: service error")
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// GetAttemptResult godoc
// @Summary Get the result view of an existing attempt
// @Tags Quizzes
// @Produce json
// @Param attempt_id path string true "Attempt ID"
// @Success 200 {object} dto.AttemptResultDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /attempts/{attempt_id} [get]
func (c *QuizController) GetAttemptResult(ctx *gin.Context) {
	attemptID, err := uuid.Parse(ctx.Param("attempt_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid attempt ID format"})
		return
	}
	result, err := c.submissionService.GetAttemptResult(attemptID)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}
