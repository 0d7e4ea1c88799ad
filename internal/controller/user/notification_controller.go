package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"quizdesk/internal/dto"
	"quizdesk/internal/service"
)

type NotificationController struct {
	notificationService service.NotificationService
}

func NewNotificationController(notificationService service.NotificationService) *NotificationController {
	return &NotificationController{notificationService: notificationService}
}

// ListActive godoc
// @Summary List active announcements
// @Description Newest first. When student_profile_id is supplied, each entry carries that student's read flag.
// @Tags Notifications
// @Produce json
// @Param student_profile_id query string false "Student profile ID for read flags"
// @Success 200 {array} dto.NotificationDTO
// @Router /notifications [get]
func (c *NotificationController) ListActive(ctx *gin.Context) {
	var studentID *uuid.UUID
	if raw := ctx.Query("student_profile_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid student profile ID format"})
			return
		}
		studentID = &id
	}

	notifications, err := c.notificationService.ListActive(studentID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve notifications"})
		return
	}
	ctx.JSON(http.StatusOK, notifications)
}

// MarkRead godoc
// @Summary Mark one notification as read
// @Tags Notifications
// @Accept json
// @Param notification_id path string true "Notification ID"
// @Param body body dto.NotificationReadDTO true "Student profile"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /notifications/{notification_id}/read [post]
func (c *NotificationController) MarkRead(ctx *gin.Context) {
	notificationID, err := uuid.Parse(ctx.Param("notification_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid notification ID format"})
		return
	}
	var req dto.NotificationReadDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	if err := c.notificationService.MarkRead(notificationID, req.StudentProfileID); err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// MarkAllRead godoc
// @Summary Mark all active notifications as read for a student
// @Tags Notifications
// @Accept json
// @Param body body dto.NotificationReadDTO true "Student profile"
// @Success 204
// @Router /notifications/read-all [post]
func (c *NotificationController) MarkAllRead(ctx *gin.Context) {
	var req dto.NotificationReadDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	if err := c.notificationService.MarkAllRead(req.StudentProfileID); err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
