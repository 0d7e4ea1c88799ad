package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"quizdesk/internal/dto"
	"quizdesk/internal/service"
)

type StudentController struct {
	studentService service.StudentService
}

func NewStudentController(studentService service.StudentService) *StudentController {
	return &StudentController{studentService: studentService}
}

// Register godoc
// @Summary Register a student profile
// @Description Phone number, name and address are all mandatory; the phone number must not already be registered.
// @Tags Students
// @Accept json
// @Produce json
// @Param profile body dto.StudentRegisterDTO true "Profile data"
// @Success 201 {object} dto.StudentProfileDTO
// @Failure 400 {object} dto.ErrorResponse
// @Router /students [post]
func (c *StudentController) Register(ctx *gin.Context) {
	var req dto.StudentRegisterDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	profile, err := c.studentService.Register(req)
	if err != nil {
		log.Warn().Err(err).Msg("Student Register: service error")
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, profile)
}

// Login godoc
// @Summary Log in with a registered phone number
// @Tags Students
// @Accept json
// @Produce json
// @Param login body dto.StudentLoginDTO true "Phone number"
// @Success 200 {object} dto.StudentProfileDTO
// @Failure 404 {object} dto.ErrorResponse "Phone number not registered"
// @Router /students/login [post]
func (c *StudentController) Login(ctx *gin.Context) {
	var req dto.StudentLoginDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	profile, err := c.studentService.Login(req)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, profile)
}

// GetAttemptHistory godoc
// @Summary List a student's past attempts
// @Tags Students
// @Produce json
// @Param student_id path string true "Student profile ID"
// @Success 200 {array} dto.AttemptSummaryDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /students/{student_id}/attempts [get]
func (c *StudentController) GetAttemptHistory(ctx *gin.Context) {
	studentID, err := uuid.Parse(ctx.Param("student_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid student ID format"})
		return
	}

	attempts, err := c.studentService.GetAttemptHistory(studentID)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, attempts)
}
