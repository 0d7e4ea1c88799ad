package admin

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
	adminQuizService service.AdminQuizService
	extractService   service.ExtractService
}

func NewQuizController(adminQuizService service.AdminQuizService, extractService service.ExtractService) *QuizController {
	return &QuizController{adminQuizService: adminQuizService, extractService: extractService}
}

func respondServiceError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, service.ErrQuizNotFound),
		errors.Is(err, service.ErrAttemptNotFound),
		errors.Is(err, service.ErrNotificationNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, service.ErrRateLimited):
		ctx.JSON(http.StatusTooManyRequests, dto.ErrorResponse{Message: err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Request failed", Details: []string{err.Error()}})
	}
}

// ListQuizzes godoc
// @Summary (Admin) List all quizzes with question and attempt counts
// @Tags Admin - Quizzes
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.AdminQuizSummaryDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/quizzes [get]
func (c *QuizController) ListQuizzes(ctx *gin.Context) {
	quizzes, err := c.adminQuizService.ListQuizzes()
	if err != nil {
		log.Error().Err(err).Msg("Admin ListQuizzes: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve quizzes"})
		return
	}
	ctx.JSON(http.StatusOK, quizzes)
}

// CreateQuiz godoc
// @Summary (Admin) Create a quiz with its questions
// @Description A quiz may be created as published only when every question has a correct option set.
// @Tags Admin - Quizzes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param quiz body dto.QuizCreateDTO true "Quiz data"
// @Success 201 {object} dto.AdminQuizDTO
// @Failure 400 {object} dto.ErrorResponse
// @Router /admin/quizzes [post]
func (c *QuizController) CreateQuiz(ctx *gin.Context) {
	var req dto.QuizCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin CreateQuiz: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	quiz, err := c.adminQuizService.CreateQuiz(req)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, quiz)
}

// GetQuiz godoc
// @Summary (Admin) Get a quiz with questions including correct options
// @Tags Admin - Quizzes
// @Produce json
// @Security BearerAuth
// @Param quiz_id path string true "Quiz ID"
// @Success 200 {object} dto.AdminQuizDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/quizzes/{quiz_id} [get]
func (c *QuizController) GetQuiz(ctx *gin.Context) {
	quizID, err := uuid.Parse(ctx.Param("quiz_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid quiz ID format"})
		return
	}
	quiz, err := c.adminQuizService.GetQuiz(quizID)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, quiz)
}

// UpdateQuiz godoc
// @Summary (Admin) Update a quiz and optionally replace its questions
// @Tags Admin - Quizzes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param quiz_id path string true "Quiz ID"
// @Param quiz body dto.QuizUpdateDTO true "Quiz data"
// @Success 200 {object} dto.AdminQuizDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/quizzes/{quiz_id} [put]
func (c *QuizController) UpdateQuiz(ctx *gin.Context) {
	quizID, err := uuid.Parse(ctx.Param("quiz_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid quiz ID format"})
		return
	}
	var req dto.QuizUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	quiz, err := c.adminQuizService.UpdateQuiz(quizID, req)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, quiz)
}

// DeleteQuiz godoc
// @Summary (Admin) Delete a quiz
// @Tags Admin - Quizzes
// @Security BearerAuth
// @Param quiz_id path string true "Quiz ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/quizzes/{quiz_id} [delete]
func (c *QuizController) DeleteQuiz(ctx *gin.Context) {
	quizID, err := uuid.Parse(ctx.Param("quiz_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid quiz ID format"})
		return
	}
	if err := c.adminQuizService.DeleteQuiz(quizID); err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// ListAttempts godoc
// @Summary (Admin) List a quiz's attempts with leaderboard ranks
// @Tags Admin - Quizzes
// @Produce json
// @Security BearerAuth
// @Param quiz_id path string true "Quiz ID"
// @Success 200 {array} dto.RankedAttemptDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/quizzes/{quiz_id}/attempts [get]
func (c *QuizController) ListAttempts(ctx *gin.Context) {
	quizID, err := uuid.Parse(ctx.Param("quiz_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid quiz ID format"})
		return
	}
	attempts, err := c.adminQuizService.ListAttempts(quizID)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, attempts)
}

// GetAttemptDetail godoc
// @Summary (Admin) Get one attempt with its graded answers
// @Tags Admin - Quizzes
// @Produce json
// @Security BearerAuth
// @Param attempt_id path string true "Attempt ID"
// @Success 200 {object} dto.AttemptDetailDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/attempts/{attempt_id} [get]
func (c *QuizController) GetAttemptDetail(ctx *gin.Context) {
	attemptID, err := uuid.Parse(ctx.Param("attempt_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid attempt ID format"})
		return
	}
	detail, err := c.adminQuizService.GetAttemptDetail(attemptID)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, detail)
}

// GetStats godoc
// @Summary (Admin) Dashboard counters
// @Tags Admin - Quizzes
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.StatsDTO
// @Router /admin/stats [get]
func (c *QuizController) GetStats(ctx *gin.Context) {
	stats, err := c.adminQuizService.GetStats()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to compute stats"})
		return
	}
	ctx.JSON(http.StatusOK, stats)
}

// ExtractQuiz godoc
// @Summary (Admin) Extract MCQs from an uploaded document with Gemini
// @Description Accepts a base64-encoded PDF or TXT and returns a prefillable question set.
// @Tags Admin - Quizzes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param document body dto.ExtractRequestDTO true "Base64 document"
// @Success 200 {object} dto.ExtractResultDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 429 {object} dto.ErrorResponse "Upstream rate limit"
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/extract [post]
func (c *QuizController) ExtractQuiz(ctx *gin.Context) {
	var req dto.ExtractRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "No PDF data provided"})
		return
	}

	result, err := c.extractService.ExtractQuiz(ctx.Request.Context(), req)
	if err != nil {
		log.Error().Err(err).Str("file_name", req.FileName).Msg("Admin ExtractQuiz: service error")
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}
