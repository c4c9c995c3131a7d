package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bisplatform/bisbackend/internal/app/models"
	"github.com/bisplatform/bisbackend/internal/app/models/dto"
	"github.com/bisplatform/bisbackend/internal/app/services"
	"github.com/bisplatform/bisbackend/internal/middleware"
)

// NotificationController handles notification feed endpoints
type NotificationController struct {
	notificationService services.NotificationService
}

// NewNotificationController creates a new NotificationController
func NewNotificationController(notificationService services.NotificationService) *NotificationController {
	return &NotificationController{notificationService: notificationService}
}

// ListByUser retrieves a user's notification feed, newest first
// @Summary List a user's notifications
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.NotificationResponse} "Notifications, possibly empty"
// @Failure 403 {object} dto.ErrorResponse "Feed belongs to another user"
// @Router /notifications/user/{id} [get]
func (c *NotificationController) ListByUser(ctx *gin.Context) {
	userID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	role, _ := middleware.CallerRole(ctx)
	callerID, _ := middleware.CallerID(ctx)
	if role != models.RoleAdmin && callerID != userID {
		detail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "Access denied").
			WithDetails("You may only read your own notifications")
		ctx.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(detail))
		return
	}

	notifications, err := c.notificationService.ListByUser(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.FromNotifications(notifications)))
}

// MarkSeen marks one of the caller's notifications as read
// @Summary Mark a notification as seen
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Notification ID"
// @Success 200 {object} dto.APIResponse "Notification marked as seen"
// @Failure 404 {object} dto.ErrorResponse "Notification not found or not yours"
// @Router /notifications/{id}/seen [put]
func (c *NotificationController) MarkSeen(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	callerID, ok := middleware.CallerID(ctx)
	if !ok {
		detail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(detail))
		return
	}

	if err := c.notificationService.MarkSeen(ctx, id, callerID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Notification marked as seen"))
}
