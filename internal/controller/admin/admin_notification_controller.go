package admin

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

// ListNotifications godoc
// @Summary (Admin) List all notifications, active or not
// @Tags Admin - Notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.NotificationDTO
// @Router /admin/notifications [get]
func (c *NotificationController) ListNotifications(ctx *gin.Context) {
	notifications, err := c.notificationService.ListAll()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve notifications"})
		return
	}
	ctx.JSON(http.StatusOK, notifications)
}

// CreateNotification godoc
// @Summary (Admin) Publish an announcement
// @Tags Admin - Notifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param notification body dto.NotificationCreateDTO true "Notification data"
// @Success 201 {object} dto.NotificationDTO
// @Failure 400 {object} dto.ErrorResponse
// @Router /admin/notifications [post]
func (c *NotificationController) CreateNotification(ctx *gin.Context) {
	var req dto.NotificationCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	notification, err := c.notificationService.Create(req)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, notification)
}

// UpdateNotification godoc
// @Summary (Admin) Update an announcement or toggle its visibility
// @Tags Admin - Notifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param notification_id path string true "Notification ID"
// @Param notification body dto.NotificationUpdateDTO true "Notification data"
// @Success 200 {object} dto.NotificationDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/notifications/{notification_id} [put]
func (c *NotificationController) UpdateNotification(ctx *gin.Context) {
	notificationID, err := uuid.Parse(ctx.Param("notification_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid notification ID format"})
		return
	}
	var req dto.NotificationUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	notification, err := c.notificationService.Update(notificationID, req)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, notification)
}

// DeleteNotification godoc
// @Summary (Admin) Delete an announcement
// @Tags Admin - Notifications
// @Security BearerAuth
// @Param notification_id path string true "Notification ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/notifications/{notification_id} [delete]
func (c *NotificationController) DeleteNotification(ctx *gin.Context) {
	notificationID, err := uuid.Parse(ctx.Param("notification_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid notification ID format"})
		return
	}
	if err := c.notificationService.Delete(notificationID); err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
